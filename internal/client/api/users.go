package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// userEnvelope is the {user} / {error} shape of the auth endpoints.
type userEnvelope struct {
	User  *models.User `json:"user"`
	Error string       `json:"error"`
}

func (e userEnvelope) unwrap(status int) (*models.User, error) {
	if e.Error != "" {
		return nil, &APIError{Status: status, Message: e.Error}
	}
	if e.User == nil {
		return nil, &APIError{Status: status, Message: "response carried no user"}
	}
	return e.User, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, nil, nil, "ping")
}

// Register creates an account and returns the created user.
func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	var env userEnvelope
	if err := c.doJSON(ctx, http.MethodPost, &env, reg, "users", "register"); err != nil {
		return nil, err
	}
	return env.unwrap(http.StatusOK)
}

// Login validates the credential and returns the user projection.
func (c *HTTPClient) Login(ctx context.Context, cred models.Credentials) (*models.User, error) {
	var env userEnvelope
	if err := c.doJSON(ctx, http.MethodPost, &env, cred, "users", "login"); err != nil {
		return nil, err
	}
	return env.unwrap(http.StatusOK)
}

// UpdateProfile sends bio/address/profile picture and returns the updated
// projection. Both a bare user object and a {user} envelope are accepted.
func (c *HTTPClient) UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error) {
	var raw struct {
		models.User
		Wrapped *models.User `json:"user"`
		Error   string       `json:"error"`
	}
	if err := c.doJSON(ctx, http.MethodPut, &raw, upd, "users", id(userID)); err != nil {
		return nil, err
	}
	if raw.Error != "" {
		return nil, &APIError{Status: http.StatusOK, Message: raw.Error}
	}
	if raw.Wrapped != nil {
		return raw.Wrapped, nil
	}
	u := raw.User
	return &u, nil
}
