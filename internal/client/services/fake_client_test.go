package services

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/client/session"
	"github.com/foundlab/lostfound/internal/logging"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T, name string) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return session.NewStore(db)
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, 0)
}

// fakeClient implements api.Client for unit tests. Calls counts every
// network-facing invocation so tests can assert zero-call behavior.
type fakeClient struct {
	Calls int

	SignInResp models.AuthResponse
	SignInErr  error
	SignUpResp models.AuthResponse
	SignUpErr  error

	CurrentUserResp models.User
	CurrentUserErr  error

	ItemsResp   []models.Item
	ItemsErr    error
	MyItemsResp []models.Item
	MyItemsErr  error
	ItemResp    models.Item
	ItemErr     error

	RequestsResp   []models.Request
	RequestsErr    error
	MyRequestsResp []models.Request
	MyRequestsErr  error
	RequestResp    models.Request
	RequestErr     error

	UsersResp []models.User
	UsersErr  error
	UserResp  models.User
	UserErr   error

	DeleteErr error

	LastSignIn     models.SignInRequest
	LastSignUp     models.SignUpRequest
	LastItemStatus models.ItemStatus
	LastReqStatus  models.RequestStatus
	LastRole       models.Role
}

func (f *fakeClient) SignIn(ctx context.Context, creds models.SignInRequest) (models.AuthResponse, error) {
	f.Calls++
	f.LastSignIn = creds
	return f.SignInResp, f.SignInErr
}

func (f *fakeClient) SignUp(ctx context.Context, data models.SignUpRequest) (models.AuthResponse, error) {
	f.Calls++
	f.LastSignUp = data
	return f.SignUpResp, f.SignUpErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (models.User, error) {
	f.Calls++
	return f.CurrentUserResp, f.CurrentUserErr
}

func (f *fakeClient) ListItems(ctx context.Context) ([]models.Item, error) {
	f.Calls++
	return f.ItemsResp, f.ItemsErr
}

func (f *fakeClient) GetItem(ctx context.Context, id int64) (models.Item, error) {
	f.Calls++
	return f.ItemResp, f.ItemErr
}

func (f *fakeClient) CreateItem(ctx context.Context, form models.ItemForm) (models.Item, error) {
	f.Calls++
	return f.ItemResp, f.ItemErr
}

func (f *fakeClient) UpdateItem(ctx context.Context, id int64, form models.ItemForm) (models.Item, error) {
	f.Calls++
	return f.ItemResp, f.ItemErr
}

func (f *fakeClient) UpdateItemStatus(ctx context.Context, id int64, status models.ItemStatus) (models.Item, error) {
	f.Calls++
	f.LastItemStatus = status
	return f.ItemResp, f.ItemErr
}

func (f *fakeClient) DeleteItem(ctx context.Context, id int64) error {
	f.Calls++
	return f.DeleteErr
}

func (f *fakeClient) MyItems(ctx context.Context) ([]models.Item, error) {
	f.Calls++
	return f.MyItemsResp, f.MyItemsErr
}

func (f *fakeClient) SearchItems(ctx context.Context, query string) ([]models.Item, error) {
	f.Calls++
	return f.ItemsResp, f.ItemsErr
}

func (f *fakeClient) ItemsByCategory(ctx context.Context, category string) ([]models.Item, error) {
	f.Calls++
	return f.ItemsResp, f.ItemsErr
}

func (f *fakeClient) ItemsByStatus(ctx context.Context, status models.ItemStatus) ([]models.Item, error) {
	f.Calls++
	return f.ItemsResp, f.ItemsErr
}

func (f *fakeClient) ListRequests(ctx context.Context) ([]models.Request, error) {
	f.Calls++
	return f.RequestsResp, f.RequestsErr
}

func (f *fakeClient) MyRequests(ctx context.Context) ([]models.Request, error) {
	f.Calls++
	return f.MyRequestsResp, f.MyRequestsErr
}

func (f *fakeClient) CreateRequest(ctx context.Context, itemID int64, notes string) (models.Request, error) {
	f.Calls++
	return f.RequestResp, f.RequestErr
}

func (f *fakeClient) UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus, notes string) (models.Request, error) {
	f.Calls++
	f.LastReqStatus = status
	return f.RequestResp, f.RequestErr
}

func (f *fakeClient) DeleteRequest(ctx context.Context, id int64) error {
	f.Calls++
	return f.DeleteErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.Calls++
	return f.UsersResp, f.UsersErr
}

func (f *fakeClient) UpdateUserRole(ctx context.Context, id int64, role models.Role) (models.User, error) {
	f.Calls++
	f.LastRole = role
	return f.UserResp, f.UserErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id int64) error {
	f.Calls++
	return f.DeleteErr
}
