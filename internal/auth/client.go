package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid authentication credentials")
)

// User is the identity the provider resolves for a bearer token.
// No user rows are stored locally; only the id is referenced as a
// foreign key on restaurants.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier resolves a bearer token to a user. Satisfied by Client and by
// test fakes.
type Verifier interface {
	GetUser(ctx context.Context, token string) (*User, error)
}

// Client talks to the external identity provider (Supabase Auth). It
// exchanges credentials for tokens and validates bearer tokens; no token
// is ever minted or verified locally.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// IssueToken performs the password grant against the provider and returns
// the provider's token payload untouched.
func (c *Client) IssueToken(ctx context.Context, email, password string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/auth/v1/token?grant_type=password", c.baseURL)

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidCredentials
	}

	return json.RawMessage(raw), nil
}

// GetUser validates a bearer token by asking the provider for the user it
// belongs to.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}

	return &user, nil
}
