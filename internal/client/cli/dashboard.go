package cli

import (
	"context"
	"fmt"

	"github.com/foundlab/lostfound/internal/client/guard"
)

// Dashboard shows the aggregate counts and the most recent items. If any of
// the underlying fetches fails, all counters fall back to zero instead of
// rendering a partial set.
func (a *App) Dashboard(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewDashboard, func(ctx context.Context) error {
		stats, recent, err := a.dashboard.Overview(ctx)
		if err != nil {
			printlnFn("Could not load dashboard data:", renderError(err))
		}

		sess := a.session.Current()
		if sess.Authenticated() {
			printlnFn(fmt.Sprintf("Welcome back, %s!", sess.User.DisplayName()))
		}

		printlnFn(fmt.Sprintf("Items: %d total, %d lost, %d found, %d claimed",
			stats.TotalItems, stats.LostItems, stats.FoundItems, stats.ClaimedItems))
		printlnFn(fmt.Sprintf("Yours: %d items, %d requests (%d pending)",
			stats.MyItems, stats.MyRequests, stats.PendingRequests))

		if len(recent) > 0 {
			printlnFn("Recently reported:")
			renderItems(recent)
		}
		return nil
	})
}
