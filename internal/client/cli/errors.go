package cli

import (
	"errors"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/client/session"
	"github.com/dmitrijs2005/photocards/internal/client/views"
)

// describe turns a command error into the one line shown to the user.
// Stale results are not worth a message and give "".
func describe(err error) string {
	var apiErr *api.APIError

	switch {
	case err == nil, errors.Is(err, views.ErrStale):
		return ""
	case errors.Is(err, session.ErrNotSignedIn):
		return "Please log in first."
	case errors.Is(err, models.ErrValidation):
		return err.Error()
	case errors.Is(err, api.ErrUnavailable):
		return "Server unavailable, try again later."
	case errors.As(err, &apiErr):
		return apiErr.Message
	}
	return err.Error()
}
