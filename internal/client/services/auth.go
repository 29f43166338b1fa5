// Package services contains the application services the UI layer talks to.
// This file defines the authentication service: sign-in, sign-up, logout and
// refreshing the current user's profile.
package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/foundlab/lostfound/internal/client/api"
	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/client/session"
	"github.com/foundlab/lostfound/internal/common"
	"github.com/foundlab/lostfound/internal/logging"
)

// ErrNotAuthenticated is returned by operations that need a session when the
// store is anonymous.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService turns raw credentials into a session.
//
// Contract:
//   - SignIn: validate locally, then authenticate and store the session.
//   - SignUp: register; success implies immediate login.
//   - Logout: clear the local session; no network call (bearer tokens are
//     stateless, there is no server-side revocation).
//   - RefreshUser: fetch the full profile for the session and store it.
type AuthService interface {
	SignIn(ctx context.Context, username, password string) (models.Session, error)
	SignUp(ctx context.Context, data models.SignUpRequest) (models.Session, error)
	Logout(ctx context.Context) error
	RefreshUser(ctx context.Context) (models.User, error)
}

type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

// SignIn checks the credentials locally first; an empty username or password,
// or a username shorter than the minimum, fails without a network call.
func (a *authService) SignIn(ctx context.Context, username, password string) (models.Session, error) {
	if username == "" || password == "" {
		return models.Session{}, fmt.Errorf("%w: please fill in all fields", common.ErrValidation)
	}
	if utf8.RuneCountInString(username) < common.MinUsernameLength {
		return models.Session{}, fmt.Errorf("%w: username must be at least %d characters long",
			common.ErrValidation, common.MinUsernameLength)
	}

	resp, err := a.client.SignIn(ctx, models.SignInRequest{Username: username, Password: password})
	if err != nil {
		return models.Session{}, err
	}

	return a.storeSession(ctx, resp)
}

// SignUp registers a new account. The role defaults to USER when unspecified;
// on success the session is stored exactly as for sign-in.
func (a *authService) SignUp(ctx context.Context, data models.SignUpRequest) (models.Session, error) {
	if data.Username == "" || data.Email == "" || data.Password == "" {
		return models.Session{}, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}
	if data.Role == "" {
		data.Role = models.RoleUser
	}
	if !models.ValidRole(data.Role) {
		return models.Session{}, fmt.Errorf("%w: unknown role %q", common.ErrValidation, data.Role)
	}

	resp, err := a.client.SignUp(ctx, data)
	if err != nil {
		return models.Session{}, err
	}

	return a.storeSession(ctx, resp)
}

func (a *authService) storeSession(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	user := &models.User{Username: resp.Username, Role: resp.Role}
	if err := a.store.Set(ctx, resp.Token, user); err != nil {
		return models.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	a.log.Info(ctx, "signed in", "user", resp.Username, "role", resp.Role)
	return a.store.Current(), nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// RefreshUser fetches the full profile from the backend and replaces the
// stored user, keeping the token.
func (a *authService) RefreshUser(ctx context.Context) (models.User, error) {
	sess := a.store.Current()
	if !sess.Authenticated() {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return models.User{}, err
	}

	if err := a.store.Set(ctx, sess.Token, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to store refreshed user: %w", err)
	}
	return user, nil
}
