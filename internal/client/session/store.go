// Package session keeps the identity of the signed-in user and mirrors it
// into the local database so a restart does not force a new login.
//
// The stored user is exactly the payload of the last successful login,
// registration or profile update. It is advisory only: the store does not
// check it against the server, and edits made elsewhere are not seen until
// the next sign-in.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/photocards/internal/logging"
)

// UserSlot is the metadata key holding the serialized user.
const UserSlot = "session.user"

var ErrNotSignedIn = errors.New("not signed in")

// Listener is notified after every sign-in or sign-out.
type Listener func(user models.User, signedIn bool)

type Store struct {
	mu        sync.RWMutex
	repo      metadata.Repository
	logger    logging.Logger
	user      *models.User
	listeners []Listener
}

func NewStore(repo metadata.Repository, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{repo: repo, logger: logger.With("module", "session")}
}

// Restore loads a previously persisted session. A missing slot leaves the
// store signed out. An unreadable slot is discarded rather than failing
// start-up.
func (s *Store) Restore(ctx context.Context) error {
	data, err := s.repo.Get(ctx, UserSlot)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if data == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == 0 {
		s.logger.Warn(ctx, "discarding unreadable session slot")
		if err := s.repo.Delete(ctx, UserSlot); err != nil {
			return fmt.Errorf("discard session: %w", err)
		}
		return nil
	}

	s.user = &u
	s.logger.Debug(ctx, "session restored", "user_id", u.ID)
	return nil
}

// SignIn persists u as the active session, replacing any previous one.
// Memory is only updated once the slot has been written.
func (s *Store) SignIn(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, UserSlot, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.user = &u
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Info(ctx, "signed in", "user_id", u.ID)
	for _, l := range listeners {
		l(u, true)
	}
	return nil
}

// SignOut clears the session. The in-memory copy is dropped even when the
// slot cannot be deleted; that error is still returned.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	prev := s.user
	s.user = nil
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	err := s.repo.Delete(ctx, UserSlot)

	var u models.User
	if prev != nil {
		u = *prev
		s.logger.Info(ctx, "signed out", "user_id", u.ID)
	}
	for _, l := range listeners {
		l(u, false)
	}

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// RequireUser is CurrentUser for actions that need a session.
func (s *Store) RequireUser() (models.User, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return models.User{}, ErrNotSignedIn
	}
	return u, nil
}

// Subscribe registers l for sign-in/sign-out notifications.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}
