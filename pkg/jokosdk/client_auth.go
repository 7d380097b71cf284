package jokosdk

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token pair. It does not persist
// anything; use Session.Login for the stored-session flow.
func (c *Client) Login(ctx context.Context, accountID, password string) (*TokenResponse, error) {
	body, err := jsonBody(loginRequest{AccountID: accountID, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// SignUp registers a new account and returns its first token pair. The
// backend answers 200 or 201 depending on version; both count as success.
func (c *Client) SignUp(ctx context.Context, username, accountID, password string) (*TokenResponse, error) {
	body, err := jsonBody(signUpRequest{Username: username, AccountID: accountID, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/signup", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &tokens, nil
}
