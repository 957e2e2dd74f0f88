package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a typed HTTP client for the credential service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to adjust
// timeouts or inject a test transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register creates a new account and returns the assigned user id.
func (c *Client) Register(ctx context.Context, username, password, email string) (string, error) {
	env, err := c.postJSON(ctx, "/register", RegisterRequest{
		Username: username,
		Password: password,
		Email:    email,
	})
	if err != nil {
		return "", err
	}

	var userID string
	if err := json.Unmarshal(env.Data, &userID); err != nil {
		return "", fmt.Errorf("authsdk: decode register data: %w", err)
	}
	return userID, nil
}

// Login authenticates and returns a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	env, err := c.postJSON(ctx, "/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var data LoginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("authsdk: decode login data: %w", err)
	}
	return data.Token, nil
}

// Protected calls the guarded route with the given token and returns the
// confirmation body.
func (c *Client) Protected(ctx context.Context, token string) (string, error) {
	return c.bearerText(ctx, http.MethodGet, "/protected", token)
}

// Logout revokes the given token. The token is rejected by every protected
// route from here on, regardless of its remaining validity window.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.bearerText(ctx, http.MethodPost, "/logout", token)
	return err
}

// Livez fetches the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/livez", nil)
	if err != nil {
		return HealthResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthResponse{}, err
	}
	defer resp.Body.Close()

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return HealthResponse{}, fmt.Errorf("authsdk: decode health response: %w", err)
	}
	return health, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*Envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("authsdk: decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) bearerText(ctx context.Context, method, path, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return string(body), nil
}
