package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// SignupRequest is the body of POST /auth/signup and POST /users.
type SignupRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role,omitempty"`
	FullName string      `json:"full_name,omitempty"`
	Email    string      `json:"email,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	var resp tokenResponse
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/auth/login",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return resp.AccessToken, nil
}

// Me resolves token to its user. The token is passed explicitly because the
// session holding it may not be established yet.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me", token: token}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, in SignupRequest) (*domain.User, error) {
	r, err := c.jsonRequest(http.MethodPost, "/auth/signup", in)
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := c.do(ctx, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
