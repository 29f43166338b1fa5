package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/client/session"
	"github.com/foundlab/lostfound/internal/common"
	"github.com/foundlab/lostfound/internal/logging"
)

// HTTPClient talks JSON over HTTP to the backend under /api/v1.
//
// Before every request it attaches the bearer token from the session store
// (when present) and a correlation id. On any 401 response it clears the
// session store, invokes the unauthorized handler, and still returns the
// failure to the caller.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	session        *session.Store
	log            logging.Logger
	onUnauthorized func()
}

type Option func(*HTTPClient)

// WithUnauthorizedHandler registers fn to run after a forced logout.
// Navigation stays the caller's concern; the client only reports the event.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *HTTPClient) { c.onUnauthorized = fn }
}

// WithHTTPClient substitutes the underlying *http.Client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func NewHTTPClient(baseURL string, timeout time.Duration, store *session.Store, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		session: store,
		log:     log.With("component", "api"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// errorBody is probed on non-2xx responses. Both backend error shapes carry
// a message field.
type errorBody struct {
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+common.APIBasePath+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess := c.session.Current(); sess.Authenticated() {
		req.Header.Set(common.AuthorizationHeader, common.BearerScheme+sess.Token)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "response", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		c.forceLogout(ctx)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &BackendError{Status: resp.StatusCode, Message: eb.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
		}
	}

	return nil
}

// forceLogout clears the session after an authentication failure. It runs for
// every 401, regardless of which operation triggered it. The persisted state
// is cleared with a detached context so a cancelled call cannot leave a stale
// token on disk.
func (c *HTTPClient) forceLogout(ctx context.Context) {
	if err := c.session.Clear(context.WithoutCancel(ctx)); err != nil {
		c.log.Error(ctx, "failed to clear session after 401", "error", err)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func (c *HTTPClient) SignIn(ctx context.Context, creds models.SignInRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", creds, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, data models.SignUpRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", data, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, form models.ItemForm) (models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPost, "/items", form, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (c *HTTPClient) UpdateItem(ctx context.Context, id int64, form models.ItemForm) (models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), form, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (c *HTTPClient) UpdateItemStatus(ctx context.Context, id int64, status models.ItemStatus) (models.Item, error) {
	var item models.Item
	payload := map[string]models.ItemStatus{"status": status}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/items/%d/status", id), payload, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}

func (c *HTTPClient) MyItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items/my-items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) SearchItems(ctx context.Context, query string) ([]models.Item, error) {
	var items []models.Item
	path := "/items/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) ItemsByCategory(ctx context.Context, category string) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items/category/"+url.PathEscape(category), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) ItemsByStatus(ctx context.Context, status models.ItemStatus) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items/status/"+url.PathEscape(string(status)), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) ListRequests(ctx context.Context) ([]models.Request, error) {
	var reqs []models.Request
	if err := c.do(ctx, http.MethodGet, "/requests", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *HTTPClient) MyRequests(ctx context.Context) ([]models.Request, error) {
	var reqs []models.Request
	if err := c.do(ctx, http.MethodGet, "/requests/my-requests", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *HTTPClient) CreateRequest(ctx context.Context, itemID int64, notes string) (models.Request, error) {
	var r models.Request
	payload := map[string]any{"itemId": itemID}
	if notes != "" {
		payload["notes"] = notes
	}
	if err := c.do(ctx, http.MethodPost, "/requests", payload, &r); err != nil {
		return models.Request{}, err
	}
	return r, nil
}

func (c *HTTPClient) UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus, notes string) (models.Request, error) {
	var r models.Request
	payload := map[string]any{"status": status}
	if notes != "" {
		payload["notes"] = notes
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/requests/%d/status", id), payload, &r); err != nil {
		return models.Request{}, err
	}
	return r, nil
}

func (c *HTTPClient) DeleteRequest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/requests/%d", id), nil, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UpdateUserRole(ctx context.Context, id int64, role models.Role) (models.User, error) {
	var u models.User
	payload := map[string]models.Role{"role": role}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/role", id), payload, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
