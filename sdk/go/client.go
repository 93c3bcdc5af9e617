package helpdesksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client is a minimal Rocket Help HTTP API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration

	mu    sync.RWMutex
	token string
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

// Order represents the API order model.
type Order struct {
	ID          string     `json:"id"`
	Patrimony   string     `json:"patrimony"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Solution    string     `json:"solution,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionInfo is returned by GET /session.
type SessionInfo struct {
	User
	ExpiresAt time.Time `json:"expires_at"`
}

// SignInResult is returned by POST /session.
type SignInResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// APIError wraps non-2xx responses. Code and Message are filled when the body
// is the service's {code, message} error document.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	var resp SignInResult
	err := c.do(ctx, http.MethodPost, "v1/session", body, &resp)
	return resp, err
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "v1/session", nil, nil)
}

// CurrentSession returns the user behind the current token and when the
// token expires.
func (c *Client) CurrentSession(ctx context.Context) (SessionInfo, error) {
	var resp SessionInfo
	err := c.do(ctx, http.MethodGet, "v1/session", nil, &resp)
	return resp, err
}

// ListOrders returns the caller's orders, newest first. An empty status
// returns every status.
func (c *Client) ListOrders(ctx context.Context, status Status) ([]Order, error) {
	endpoint := "v1/orders"
	if status != "" {
		endpoint = fmt.Sprintf("%s?status=%s", endpoint, url.QueryEscape(string(status)))
	}
	var resp []Order
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	var resp Order
	err := c.do(ctx, http.MethodGet, "v1/orders/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) CreateOrder(ctx context.Context, patrimony, description string) (Order, error) {
	body := map[string]any{
		"patrimony":   patrimony,
		"description": description,
	}
	var resp Order
	err := c.do(ctx, http.MethodPost, "v1/orders", body, &resp)
	return resp, err
}

// CloseOrder closes an open order with the given solution.
func (c *Client) CloseOrder(ctx context.Context, id, solution string) (Order, error) {
	body := map[string]any{
		"solution": solution,
	}
	var resp Order
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("v1/orders/%s/close", url.PathEscape(id)), body, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(b)}
		var doc struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(b, &doc) == nil {
			apiErr.Code, apiErr.Message = doc.Code, doc.Message
		}
		return apiErr
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// ErrorCode returns the service error code carried by err, if any.
func ErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}
