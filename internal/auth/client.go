// Package auth exchanges credentials for bearer tokens with the
// backend. All verification happens server-side; this client only
// forwards credentials and stores nothing itself.
package auth

import (
	"context"
	"strings"

	"github.com/skh121/merobazaar-web/internal/api"
)

// User is the authenticated account identity returned at login.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Credentials bundles the bearer token with the identity it belongs to.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Client issues authentication calls against the backend.
type Client struct {
	client *api.Client
}

// NewClient constructs an auth client over the shared API client.
func NewClient(client *api.Client) *Client {
	return &Client{client: client}
}

// Login exchanges email and password for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{
		"email":    strings.TrimSpace(email),
		"password": password,
	}
	var payload Credentials
	if err := c.client.Post(ctx, "/auth/login", "", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates an account and returns credentials for it.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (*Credentials, error) {
	body := map[string]string{
		"fullName": strings.TrimSpace(fullName),
		"email":    strings.TrimSpace(email),
		"password": password,
	}
	var payload Credentials
	if err := c.client.Post(ctx, "/auth/register", "", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
