package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/foundlab/lostfound/internal/client/guard"
	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/client/token"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword
var getChoice = GetChoice

// Login prompts for credentials and signs in. If a protected destination was
// remembered before the login prompt, it is replayed afterwards.
func (a *App) Login(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewLogin, func(ctx context.Context) error {
		username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
		if err != nil {
			return err
		}
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}

		sess, err := a.auth.SignIn(ctx, username, password)
		if err != nil {
			return err
		}

		printlnFn(fmt.Sprintf("Welcome back, %s!", sess.User.DisplayName()))
		return a.resumePending(ctx)
	})
}

// Signup registers a new account; success implies immediate login.
func (a *App) Signup(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewSignup, func(ctx context.Context) error {
		username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
		if err != nil {
			return err
		}
		email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
		if err != nil {
			return err
		}
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}

		sess, err := a.auth.SignUp(ctx, models.SignUpRequest{
			Username: username,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}

		printlnFn(fmt.Sprintf("Account created. Welcome, %s!", sess.User.DisplayName()))
		return a.resumePending(ctx)
	})
}

// Logout clears the local session. No request is sent: the backend issues
// stateless bearer tokens with no server-side revocation.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You are not logged in.")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami refreshes the profile from the backend and prints it, along with
// the token expiry when the token carries one.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.RefreshUser(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%s <%s>, role %s", user.Username, user.Email, user.Role))
	if name := user.DisplayName(); name != user.Username {
		printlnFn("Name:", name, user.LastName)
	}

	if claims, err := token.Peek(a.session.Current().Token); err == nil && !claims.ExpiresAt.IsZero() {
		if claims.Expired(time.Now()) {
			printlnFn("Token expired at", claims.ExpiresAt.Format(time.RFC3339))
		} else {
			printlnFn("Token valid until", claims.ExpiresAt.Format(time.RFC3339))
		}
	}
	return nil
}
