package cli

import (
	"errors"

	"github.com/foundlab/lostfound/internal/client/api"
	"github.com/foundlab/lostfound/internal/client/services"
	"github.com/foundlab/lostfound/internal/common"
)

// renderError maps a failure to the line shown to the user. Validation
// errors surface their own text; backend errors prefer the backend message;
// everything else gets a generic fallback.
func renderError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, services.ErrNotAuthenticated):
		return "You are not logged in."
	case errors.Is(err, api.ErrUnauthorized):
		return "Authentication failed."
	case errors.Is(err, api.ErrUnavailable):
		return "The server is unavailable. Please try again later."
	}

	var be *api.BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return "Something went wrong. Please try again."
}
