package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const userPath = "/user"

type githubUser struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

func (g *Gateway) fetchUser(ctx context.Context, token string) (githubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiBaseURL+userPath, nil)
	if err != nil {
		return githubUser{}, fmt.Errorf("create user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptGitHub)
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return githubUser{}, fmt.Errorf("request user profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxOAuthResponseBytes))
		return githubUser{}, fmt.Errorf("request user profile: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user githubUser
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxOAuthResponseBytes)).Decode(&user); err != nil {
		return githubUser{}, fmt.Errorf("decode user profile: %w", err)
	}
	if user.Login == "" {
		return githubUser{}, errors.New("user profile missing login")
	}

	return user, nil
}
