package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func testLogger(t *testing.T) logging.Logger {
	t.Helper()
	return logging.NewTextLogger(io.Discard, 0)
}

func newClient(t *testing.T, name string, srv *httptest.Server, opts ...Option) (*HTTPClient, *session.Store) {
	t.Helper()
	store := setupStore(t, name)
	c := NewHTTPClient(srv.URL, 3*time.Second, store, testLogger(t), opts...)
	return c, store
}

func login(t *testing.T, store *session.Store, role models.Role) {
	t.Helper()
	err := store.Set(context.Background(), "tok-123", &models.User{ID: 1, Username: "alice", Role: role})
	require.NoError(t, err)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode([]models.Item{})
	}))
	defer srv.Close()

	c, store := newClient(t, "api_bearer", srv)
	login(t, store, models.RoleUser)

	_, err := c.ListItems(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestAnonymousRequestHasNoAuthHeader(t *testing.T) {
	var gotAuth string
	hasAuth := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Token: "t", Username: "u", Role: models.RoleUser})
	}))
	defer srv.Close()

	c, _ := newClient(t, "api_anon", srv)

	_, err := c.SignIn(context.Background(), models.SignInRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.False(t, hasAuth)
}

func TestUnauthorizedClearsSessionAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	notified := false
	c, store := newClient(t, "api_401", srv, WithUnauthorizedHandler(func() { notified = true }))
	login(t, store, models.RoleAdmin)

	_, err := c.ListItems(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.False(t, store.Current().Authenticated())
	require.True(t, notified)
}

func TestUnauthorizedOnSignInAlsoClears(t *testing.T) {
	// A 401 triggers the forced logout regardless of which operation
	// produced it, the login call included.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	notified := false
	c, store := newClient(t, "api_401_signin", srv, WithUnauthorizedHandler(func() { notified = true }))
	login(t, store, models.RoleUser)

	_, err := c.SignIn(context.Background(), models.SignInRequest{Username: "bob", Password: "pw"})
	require.ErrorIs(t, err, ErrUnauthorized)
	require.False(t, store.Current().Authenticated())
	require.True(t, notified)
}

func TestBackendErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "item already claimed"})
	}))
	defer srv.Close()

	c, store := newClient(t, "api_backend_err", srv)
	login(t, store, models.RoleUser)

	_, err := c.UpdateItemStatus(context.Background(), 5, models.ItemClaimed)
	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, http.StatusConflict, be.Status)
	require.Equal(t, "item already claimed", be.Message)

	// Session stays intact for non-401 failures.
	require.True(t, store.Current().Authenticated())
}

func TestBackendErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := newClient(t, "api_backend_plain", srv)

	_, err := c.ListItems(context.Background())
	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, http.StatusInternalServerError, be.Status)
	require.Empty(t, be.Message)
}

func TestNetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c, _ := newClient(t, "api_net", srv)

	_, err := c.ListItems(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c, _ := newClient(t, "api_decode", srv)

	_, err := c.ListItems(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnavailable)
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestVerbsAndPaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.RequestURI()})
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, store := newClient(t, "api_verbs", srv)
	login(t, store, models.RoleAdmin)
	ctx := context.Background()

	_, _ = c.UpdateItemStatus(ctx, 3, models.ItemFound)
	_, _ = c.UpdateRequestStatus(ctx, 9, models.RequestApproved, "ok")
	_, _ = c.UpdateUserRole(ctx, 2, models.RoleStaff)
	_, _ = c.SearchItems(ctx, "blue bag")
	_ = c.DeleteRequest(ctx, 9)

	require.Equal(t, []call{
		{http.MethodPatch, "/api/v1/items/3/status"},
		{http.MethodPatch, "/api/v1/requests/9/status"},
		{http.MethodPut, "/api/v1/users/2/role"},
		{http.MethodGet, "/api/v1/items/search?q=blue+bag"},
		{http.MethodDelete, "/api/v1/requests/9"},
	}, calls)
}

func TestRawPayloadDecoding(t *testing.T) {
	reported := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Raw payload, no {data,message,success} envelope.
		_ = json.NewEncoder(w).Encode([]models.Item{{
			ID: 1, Title: "Umbrella", Status: models.ItemLost, DateReported: reported,
		}})
	}))
	defer srv.Close()

	c, _ := newClient(t, "api_raw", srv)

	items, err := c.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Umbrella", items[0].Title)
	require.Equal(t, models.ItemLost, items[0].Status)
	require.True(t, items[0].DateReported.Equal(reported))
}

func TestCreateRequestPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(models.Request{ID: 1, Status: models.RequestPending})
	}))
	defer srv.Close()

	c, store := newClient(t, "api_create_req", srv)
	login(t, store, models.RoleUser)

	r, err := c.CreateRequest(context.Background(), 42, "saw it on the bus")
	require.NoError(t, err)
	require.Equal(t, models.RequestPending, r.Status)
	require.Equal(t, float64(42), got["itemId"])
	require.Equal(t, "saw it on the bus", got["notes"])
}
