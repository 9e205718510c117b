package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/client/session"
)

// ErrStale is returned when a call finished after its view was unmounted
// or remounted; its result has been discarded.
var ErrStale = errors.New("view is no longer active")

// LoadState is the remote-data state of a view.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Sessions is the part of the session store the controllers use.
type Sessions interface {
	CurrentUser() (models.User, bool)
	SignIn(ctx context.Context, u models.User) error
	SignOut(ctx context.Context) error
}

func requireUser(s Sessions) (models.User, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return models.User{}, session.ErrNotSignedIn
	}
	return u, nil
}

// loader tracks mount generations and the load state of one view. Its
// mutex also guards the projection of the view embedding it; clear drops
// that projection and runs under the mutex.
type loader struct {
	mu      sync.Mutex
	gen     uint64
	mounted bool
	state   LoadState
	err     error
	clear   func()
}

// Mount starts a new generation with an empty state and no data.
func (l *loader) Mount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.mounted = true
	l.state = Idle
	l.err = nil
	l.drop()
}

// Unmount makes every outstanding call stale and forgets the loaded data.
func (l *loader) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.mounted = false
	l.state = Idle
	l.err = nil
	l.drop()
}

func (l *loader) drop() {
	if l.clear != nil {
		l.clear()
	}
}

func (l *loader) Mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounted
}

func (l *loader) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err is the error of the last failed load.
func (l *loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// begin moves the view to Loading and returns the generation token.
func (l *loader) begin() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mounted {
		return 0, ErrStale
	}
	l.state = Loading
	l.err = nil
	return l.gen, nil
}

// finish applies the outcome of a load started with token. apply runs under
// the view lock and only when token is still current.
func (l *loader) finish(token uint64, err error, apply func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.gen {
		return ErrStale
	}
	if err != nil {
		l.state = Failed
		l.err = err
		return err
	}
	apply()
	l.state = Loaded
	return nil
}

// patch applies a local reconciliation (e.g. dropping a removed row)
// when the view is still on the generation it was at when the write began.
func (l *loader) patch(token uint64, apply func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.gen || !l.mounted {
		return false
	}
	apply()
	return true
}

func (l *loader) token() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}
