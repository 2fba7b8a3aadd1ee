// Package remote talks to the marketplace HTTP backend. It exposes the same
// register/login/restore/logout operations as the mock account service and
// turns every HTTP or network failure into one readable *Error.
package remote

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
	"time"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/store"
	"github.com/dmitrijs2005/gatormarket/internal/logging"
)

const maxBodySize = 1 << 20

type Client struct {
	baseURL string
	http    *http.Client
	store   store.Store
	logger  logging.Logger
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration, st store.Store, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		store:   st,
		logger:  logger.With("component", "remote"),
		timeout: timeout,
	}
}

// WithHTTPClient swaps the underlying client, used to plug in httptest.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type loginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *userResponse `json:"user"`
}

// Register creates the account. It does not sign in, so the returned
// identity is always zero.
func (c *Client) Register(ctx context.Context, username, email, password string) (models.Identity, error) {
	body, err := json.Marshal(signupRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return models.Identity{}, fmt.Errorf("encode signup: %w", err)
	}

	status, resp, err := c.do(ctx, http.MethodPost, "/signup", "application/json", bytes.NewReader(body), "")
	if err != nil {
		return models.Identity{}, err
	}
	if !success(status) {
		return models.Identity{}, statusError(status, resp, "Registration failed")
	}

	c.logger.Info(ctx, "account created", "email", email)
	return models.Identity{}, nil
}

// Login exchanges credentials for a bearer token and persists it.
func (c *Client) Login(ctx context.Context, email, password string) (models.Identity, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	status, resp, err := c.do(ctx, http.MethodPost, "/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), "")
	if err != nil {
		return models.Identity{}, err
	}
	if !success(status) {
		return models.Identity{}, statusError(status, resp, "Login failed")
	}

	var lr loginResponse
	if err := json.Unmarshal(resp, &lr); err != nil || lr.AccessToken == "" {
		return models.Identity{}, &Error{Kind: KindServer, Status: status, Message: "Login failed", Err: err}
	}

	if err := c.store.Set(ctx, store.KeyAccessToken, lr.AccessToken); err != nil {
		return models.Identity{}, fmt.Errorf("persist token: %w", err)
	}

	id := models.Identity{Email: email}
	if lr.User != nil {
		if lr.User.Email != "" {
			id.Email = lr.User.Email
		}
		id.Username = lr.User.Username
		id.IsAdmin = lr.User.IsAdmin
	}
	c.logger.Info(ctx, "logged in", "email", id.Email, "admin", id.IsAdmin)
	return id, nil
}

// HasSession reports whether a token is persisted.
func (c *Client) HasSession(ctx context.Context) (bool, error) {
	tok, ok, err := c.store.Get(ctx, store.KeyAccessToken)
	if err != nil {
		return false, fmt.Errorf("read token: %w", err)
	}
	return ok && tok != "", nil
}

// Restore validates the persisted token against the identity endpoint.
// A token the server rejects is removed from the store.
func (c *Client) Restore(ctx context.Context) (models.Identity, error) {
	tok, ok, err := c.store.Get(ctx, store.KeyAccessToken)
	if err != nil {
		return models.Identity{}, fmt.Errorf("read token: %w", err)
	}
	if !ok || tok == "" {
		return models.Identity{}, ErrNoSession
	}

	status, resp, err := c.do(ctx, http.MethodGet, "/secure-data", "", nil, tok)
	if err != nil {
		return models.Identity{}, err
	}

	if !success(status) {
		if rmErr := c.store.Remove(ctx, store.KeyAccessToken); rmErr != nil {
			c.logger.Warn(ctx, "failed to drop rejected token", "error", rmErr)
		}
		e := statusError(status, resp, "Session expired, please log in again")
		e.Err = ErrSessionInvalid
		return models.Identity{}, e
	}

	var ur userResponse
	if err := json.Unmarshal(resp, &ur); err != nil || ur.Email == "" {
		return models.Identity{}, &Error{Kind: KindServer, Status: status, Message: "Unexpected server response", Err: err}
	}
	return models.Identity{Email: ur.Email, Username: ur.Username, IsAdmin: ur.IsAdmin}, nil
}

// Logout forgets the token. The backend keeps no server-side session.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Remove(ctx, store.KeyAccessToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Ping checks that the backend answers at all.
func (c *Client) Ping(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodGet, "/", "", nil, "")
	if err != nil {
		return err
	}
	if status >= 500 {
		return &Error{Kind: KindServer, Status: status, Message: "Server error"}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, token string) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, transportError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, nil, &Error{Kind: KindTransport, Message: cancelledMessage, Err: err}
		}
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return 0, nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, transportError(err)
	}

	c.logger.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}
