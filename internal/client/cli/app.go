// Package cli is the interactive terminal front end: a REPL whose commands
// map to views, each navigation passing through the route guard.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/foundlab/lostfound/internal/client/api"
	"github.com/foundlab/lostfound/internal/client/config"
	"github.com/foundlab/lostfound/internal/client/guard"
	"github.com/foundlab/lostfound/internal/client/localdb"
	"github.com/foundlab/lostfound/internal/client/services"
	"github.com/foundlab/lostfound/internal/client/session"
	"github.com/foundlab/lostfound/internal/logging"
)

type App struct {
	config    *config.Config
	session   *session.Store
	auth      services.AuthService
	items     services.ItemService
	requests  services.RequestService
	users     services.UserService
	dashboard services.DashboardService
	log       logging.Logger
	reader    *bufio.Reader

	// Destination remembered by the guard when an anonymous user hits a
	// protected view; replayed after the next successful login.
	pendingView string
	pendingFn   func(ctx context.Context) error
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	store := session.NewStore(db)
	if err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	a := &App{
		config:  c,
		session: store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}

	// The API client detects the 401 and clears the session; steering the
	// user back to the login view is this layer's job.
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, store, log,
		api.WithUnauthorizedHandler(a.onForcedLogout))

	a.auth = services.NewAuthService(apiClient, store, log)
	a.items = services.NewItemService(apiClient)
	a.requests = services.NewRequestService(apiClient)
	a.users = services.NewUserService(apiClient)
	a.dashboard = services.NewDashboardService(apiClient)

	return a, nil
}

func (a *App) onForcedLogout() {
	printlnFn("Your session has expired. Please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Authenticated()
}

func (a *App) status() string {
	sess := a.session.Current()
	if !sess.Authenticated() {
		return "anonymous"
	}
	return fmt.Sprintf("%s (%s)", sess.User.Username, sess.User.Role)
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	printlnFn("Lost & Found client (type 'help' for commands)")
	runREPL(ctx, a, a.status, scanner)
}

// navigate routes a view through the guard. The guard is consulted on every
// attempt; an anonymous visitor is sent to login with the destination
// remembered, an unauthorized role lands on the dashboard without an error.
func (a *App) navigate(ctx context.Context, view string, fn func(ctx context.Context) error) error {
	route, ok := guard.Lookup(view)
	if !ok {
		printlnFn("Unknown view:", view)
		return nil
	}

	decision := guard.Evaluate(a.session.Current(), route)
	switch decision.Action {
	case guard.ToLogin:
		a.pendingView = decision.Remember
		a.pendingFn = fn
		printlnFn("Please log in first.")
		return a.Login(ctx)
	case guard.ToDashboard:
		if !route.Public {
			a.log.Debug(ctx, "navigation denied", "view", view)
		}
		return a.Dashboard(ctx)
	}

	return fn(ctx)
}

// resumePending replays the destination remembered before login, if any.
// The guard re-evaluates it against the fresh session.
func (a *App) resumePending(ctx context.Context) error {
	if a.pendingFn == nil {
		return nil
	}
	view, fn := a.pendingView, a.pendingFn
	a.pendingView, a.pendingFn = "", nil
	return a.navigate(ctx, view, fn)
}
