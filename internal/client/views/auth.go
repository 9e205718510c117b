package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// Auth drives the login and registration forms. Failures are kept as a
// form-level message and returned; they never touch the session.
type Auth struct {
	client   api.Client
	sessions Sessions

	mu      sync.Mutex
	formErr error
}

func NewAuth(client api.Client, sessions Sessions) *Auth {
	return &Auth{client: client, sessions: sessions}
}

// Login authenticates and stores the returned user as the session.
func (a *Auth) Login(ctx context.Context, cred models.Credentials) (models.User, error) {
	if err := cred.Validate(); err != nil {
		return models.User{}, a.fail(err)
	}

	u, err := a.client.Login(ctx, cred)
	if err != nil {
		return models.User{}, a.fail(err)
	}

	if err := a.sessions.SignIn(ctx, *u); err != nil {
		return models.User{}, a.fail(err)
	}
	a.fail(nil)
	return *u, nil
}

// Register creates the account and signs the new user in.
func (a *Auth) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if err := reg.Validate(); err != nil {
		return models.User{}, a.fail(err)
	}

	u, err := a.client.Register(ctx, reg)
	if err != nil {
		return models.User{}, a.fail(err)
	}

	if err := a.sessions.SignIn(ctx, *u); err != nil {
		return models.User{}, a.fail(fmt.Errorf("registered but could not sign in: %w", err))
	}
	a.fail(nil)
	return *u, nil
}

// Logout clears the session.
func (a *Auth) Logout(ctx context.Context) error {
	return a.sessions.SignOut(ctx)
}

// FormError is the message of the last failed submission, or "".
func (a *Auth) FormError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.formErr == nil {
		return ""
	}
	return a.formErr.Error()
}

func (a *Auth) fail(err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.formErr = err
	return err
}
