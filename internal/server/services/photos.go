package services

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/photocards/internal/filex"
	"github.com/google/uuid"
)

// PhotoURLPrefix is where the HTTP layer serves stored photos.
const PhotoURLPrefix = "/photos/"

var photoExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// PhotoStore keeps uploaded listing photos in a directory under random names.
type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) (*PhotoStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("photo dir: %w", err)
	}
	return &PhotoStore{dir: abs}, nil
}

func (p *PhotoStore) Dir() string {
	return p.dir
}

// Save copies r to a new file named after a fresh uuid plus the extension of
// original and returns its public path.
func (p *PhotoStore) Save(original string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if _, ok := photoExtensions[ext]; !ok {
		return "", invalid("photo must be one of .jpg .jpeg .png .gif .webp")
	}

	name := uuid.NewString() + ext
	f, err := os.OpenFile(filepath.Join(p.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("create photo: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write photo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close photo: %w", err)
	}
	return PhotoURLPrefix + name, nil
}

// Remove deletes a photo previously returned by Save. Unknown paths are
// ignored.
func (p *PhotoStore) Remove(public string) {
	name := path.Base(public)
	if !strings.HasPrefix(public, PhotoURLPrefix) || name == "." || name == "/" {
		return
	}
	_ = os.Remove(filepath.Join(p.dir, name))
}
