package api

import (
	"context"

	"github.com/foundlab/lostfound/internal/client/models"
)

// Client is the backend contract. One method per operation, exactly one HTTP
// request per call.
type Client interface {
	SignIn(ctx context.Context, creds models.SignInRequest) (models.AuthResponse, error)
	SignUp(ctx context.Context, data models.SignUpRequest) (models.AuthResponse, error)
	CurrentUser(ctx context.Context) (models.User, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, form models.ItemForm) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, form models.ItemForm) (models.Item, error)
	UpdateItemStatus(ctx context.Context, id int64, status models.ItemStatus) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	MyItems(ctx context.Context) ([]models.Item, error)
	SearchItems(ctx context.Context, query string) ([]models.Item, error)
	ItemsByCategory(ctx context.Context, category string) ([]models.Item, error)
	ItemsByStatus(ctx context.Context, status models.ItemStatus) ([]models.Item, error)

	ListRequests(ctx context.Context) ([]models.Request, error)
	MyRequests(ctx context.Context) ([]models.Request, error)
	CreateRequest(ctx context.Context, itemID int64, notes string) (models.Request, error)
	UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus, notes string) (models.Request, error)
	DeleteRequest(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id int64, role models.Role) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
