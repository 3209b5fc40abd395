package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Polaris-F/cockpit-tools/internal/ports"
)

const (
	deviceCodePath      = "/login/device/code"
	tokenPath           = "/login/oauth/access_token"
	deviceCodeGrantType = "urn:ietf:params:oauth:grant-type:device_code"

	maxOAuthResponseBytes = 1 << 20
)

type deviceCodeResponse struct {
	DeviceCode              string `json:"device_code"`
	UserCode                string `json:"user_code"`
	VerificationURI         string `json:"verification_uri"`
	VerificationURIComplete string `json:"verification_uri_complete"`
	ExpiresIn               int64  `json:"expires_in"`
	Interval                int64  `json:"interval"`
}

type deviceTokenResponse struct {
	AccessToken      string `json:"access_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// devicePollError is the non-success half of a token poll: the OAuth
// error code and its optional human-readable description.
type devicePollError struct {
	code        string
	description string
}

func (e devicePollError) status() ports.DevicePollStatus {
	switch e.code {
	case "", "authorization_pending":
		return ports.DevicePollPending
	case "slow_down":
		return ports.DevicePollSlowDown
	case "expired_token":
		return ports.DevicePollExpired
	case "access_denied":
		return ports.DevicePollDenied
	default:
		return ports.DevicePollError
	}
}

func (e devicePollError) message() string {
	if e.description != "" {
		return e.description
	}
	return e.code
}

func (g *Gateway) requestDeviceCode(ctx context.Context, clientID, scope string) (ports.DeviceCodeGrant, error) {
	values := url.Values{}
	values.Set("client_id", clientID)
	values.Set("scope", scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.oauthBaseURL+deviceCodePath, strings.NewReader(values.Encode()))
	if err != nil {
		return ports.DeviceCodeGrant{}, fmt.Errorf("create device code request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return ports.DeviceCodeGrant{}, fmt.Errorf("request device code: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxOAuthResponseBytes))
		return ports.DeviceCodeGrant{}, fmt.Errorf("request device code: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload deviceCodeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxOAuthResponseBytes)).Decode(&payload); err != nil {
		return ports.DeviceCodeGrant{}, fmt.Errorf("decode device code response: %w", err)
	}
	if payload.DeviceCode == "" || payload.UserCode == "" || payload.VerificationURI == "" {
		return ports.DeviceCodeGrant{}, errors.New("device code response missing required fields")
	}

	return ports.DeviceCodeGrant{
		DeviceCode:              payload.DeviceCode,
		UserCode:                payload.UserCode,
		VerificationURI:         payload.VerificationURI,
		VerificationURIComplete: payload.VerificationURIComplete,
		ExpiresIn:               payload.ExpiresIn,
		Interval:                payload.Interval,
	}, nil
}

// pollDeviceToken performs one poll of the token endpoint. A granted
// token comes back as the first return; otherwise the OAuth error code
// describes why the grant is still outstanding or has failed. GitHub
// answers polls with HTTP 200 in both cases.
func (g *Gateway) pollDeviceToken(ctx context.Context, clientID, deviceCode string) (string, devicePollError, error) {
	values := url.Values{}
	values.Set("client_id", clientID)
	values.Set("device_code", deviceCode)
	values.Set("grant_type", deviceCodeGrantType)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.oauthBaseURL+tokenPath, strings.NewReader(values.Encode()))
	if err != nil {
		return "", devicePollError{}, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", devicePollError{}, fmt.Errorf("request token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var payload deviceTokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxOAuthResponseBytes)).Decode(&payload); err != nil {
		return "", devicePollError{}, fmt.Errorf("decode token response: %w", err)
	}

	if payload.AccessToken != "" {
		return payload.AccessToken, devicePollError{}, nil
	}

	return "", devicePollError{code: payload.Error, description: payload.ErrorDescription}, nil
}
