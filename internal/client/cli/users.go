package cli

import (
	"context"
	"fmt"

	"github.com/foundlab/lostfound/internal/client/guard"
	"github.com/foundlab/lostfound/internal/client/models"
)

func (a *App) Users(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewManageUsers, func(ctx context.Context) error {
		users, err := a.users.All(ctx)
		if err != nil {
			return err
		}
		renderUsers(users)
		return nil
	})
}

func (a *App) ChangeRole(ctx context.Context, id int64, role models.Role) error {
	return a.navigate(ctx, guard.ViewManageUsers, func(ctx context.Context) error {
		user, err := a.users.ChangeRole(ctx, id, role)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("User #%d (%s) is now %s.", user.ID, user.Username, user.Role))
		return nil
	})
}

func (a *App) RemoveUser(ctx context.Context, id int64) error {
	return a.navigate(ctx, guard.ViewManageUsers, func(ctx context.Context) error {
		if err := a.users.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Deleted user #%d.", id))
		return nil
	})
}
