package cli

import (
	"context"
	"fmt"

	"github.com/foundlab/lostfound/internal/client/guard"
	"github.com/foundlab/lostfound/internal/client/models"
)

// Claim files a claim request for an item.
func (a *App) Claim(ctx context.Context, itemID int64, notes string) error {
	return a.navigate(ctx, guard.ViewItems, func(ctx context.Context) error {
		req, err := a.requests.Claim(ctx, itemID, notes)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Claim request #%d filed (%s).", req.ID, req.Status))
		return nil
	})
}

func (a *App) MyRequests(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewMyRequests, func(ctx context.Context) error {
		requests, err := a.requests.Mine(ctx)
		if err != nil {
			return err
		}
		renderRequests(requests)
		return nil
	})
}

func (a *App) Requests(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewManageRequests, func(ctx context.Context) error {
		requests, err := a.requests.All(ctx)
		if err != nil {
			return err
		}
		renderRequests(requests)
		return nil
	})
}

func (a *App) Review(ctx context.Context, id int64, status models.RequestStatus, notes string) error {
	return a.navigate(ctx, guard.ViewManageRequests, func(ctx context.Context) error {
		req, err := a.requests.Review(ctx, id, status, notes)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Request #%d is now %s.", req.ID, req.Status))
		return nil
	})
}

func (a *App) RemoveRequest(ctx context.Context, id int64) error {
	return a.navigate(ctx, guard.ViewManageRequests, func(ctx context.Context) error {
		if err := a.requests.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Deleted request #%d.", id))
		return nil
	})
}
