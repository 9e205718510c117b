package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

var (
	ErrNotEditing   = errors.New("profile is not in edit mode")
	ErrDraftForeign = errors.New("profile draft belongs to another user")
)

// Profile shows the session user and stages edits of address, bio and
// profile picture. The session is only touched after a successful save.
// A draft belongs to the user who started it and is dropped when that user
// signs out.
type Profile struct {
	client   api.Client
	sessions Sessions

	mu      sync.Mutex
	editing bool
	owner   int64
	draft   models.ProfileUpdate
	lastErr error
}

func NewProfile(client api.Client, sessions Sessions) *Profile {
	return &Profile{client: client, sessions: sessions}
}

// User is the read-only projection shown on the profile screen.
func (v *Profile) User() (models.User, bool) {
	return v.sessions.CurrentUser()
}

// BeginEdit enters edit mode seeded with the current values.
func (v *Profile) BeginEdit() error {
	user, err := requireUser(v.sessions)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.editing = true
	v.owner = user.ID
	v.draft = models.ProfileUpdateFrom(user)
	v.lastErr = nil
	return nil
}

func (v *Profile) Editing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

// Draft returns the staged values.
func (v *Profile) Draft() models.ProfileUpdate {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// Stage replaces the staged values without saving them.
func (v *Profile) Stage(upd models.ProfileUpdate) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.editing {
		return ErrNotEditing
	}
	v.draft = upd
	return nil
}

// Cancel leaves edit mode and drops the draft.
func (v *Profile) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.reset()
}

// OnSession is a session listener: a draft never survives its owner's
// session.
func (v *Profile) OnSession(user models.User, signedIn bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.editing && (!signedIn || user.ID != v.owner) {
		v.reset()
	}
}

func (v *Profile) reset() {
	v.editing = false
	v.owner = 0
	v.draft = models.ProfileUpdate{}
	v.lastErr = nil
}

// Save sends the draft. On success the returned user becomes the session
// and edit mode ends; on failure the draft stays for another attempt.
func (v *Profile) Save(ctx context.Context) (models.User, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return models.User{}, err
	}

	v.mu.Lock()
	if !v.editing {
		v.mu.Unlock()
		return models.User{}, ErrNotEditing
	}
	if v.owner != user.ID {
		v.reset()
		v.mu.Unlock()
		return models.User{}, ErrDraftForeign
	}
	draft := v.draft
	v.mu.Unlock()

	updated, err := v.client.UpdateProfile(ctx, user.ID, draft)
	if err == nil {
		err = v.sessions.SignIn(ctx, *updated)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.lastErr = err
		return models.User{}, err
	}
	v.reset()
	return *updated, nil
}

// Err is the error of the last failed save.
func (v *Profile) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

