package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	clienterrors "github.com/ideahub/ideahub-client/internal/errors"
	"github.com/ideahub/ideahub-client/internal/types"
)

// Login exchanges credentials for a server-side session. On success the
// server sets a session cookie (captured by the client's cookie jar); no
// token is returned in the body.
func Login(ctx context.Context, httpClient *http.Client, baseURL, email, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(email, "email"); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(password, "password"); err != nil {
		return err
	}
	body, err := json.Marshal(types.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/v1/auth/login", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return clienterrors.NewNetworkError("login", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errorFromResponse(resp, "login")
	}
	return nil
}

// Logout asks the server to invalidate the session cookie.
func Logout(ctx context.Context, httpClient *http.Client, baseURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/v1/auth/logout", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return clienterrors.NewNetworkError("logout", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errorFromResponse(resp, "logout")
	}
	return nil
}

// GetCurrentUser returns the User bound to the current session cookie, or
// types.ErrNoSession when the server reports no identity.
func GetCurrentUser(ctx context.Context, httpClient *http.Client, baseURL string) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v1/auth/me", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError("current user", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusNotFound:
		return nil, types.ErrNoSession
	default:
		return nil, errorFromResponse(resp, "current user")
	}

	var u types.User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
