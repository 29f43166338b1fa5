package services

import (
	"context"
	"fmt"

	"github.com/foundlab/lostfound/internal/client/api"
	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/common"
)

// UserService is the admin-only user management surface.
type UserService interface {
	All(ctx context.Context) ([]models.User, error)
	ChangeRole(ctx context.Context, id int64, role models.Role) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	client api.Client
}

func NewUserService(client api.Client) UserService {
	return &userService{client: client}
}

func (s *userService) All(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s *userService) ChangeRole(ctx context.Context, id int64, role models.Role) (models.User, error) {
	if !models.ValidRole(role) {
		return models.User{}, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}
	return s.client.UpdateUserRole(ctx, id, role)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteUser(ctx, id)
}
