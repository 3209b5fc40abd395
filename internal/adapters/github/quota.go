package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
)

const (
	quotaPath        = "/copilot_internal/user"
	apiVersionHeader = "X-GitHub-Api-Version"

	// 403 body GitHub returns when the token's OAuth app has no Copilot
	// usage permission.
	integrationDeniedMessage = "Resource not accessible by integration"
)

type quotaResponse struct {
	QuotaSnapshots struct {
		PremiumInteractions *struct {
			Entitlement int64 `json:"entitlement"`
			Remaining   int64 `json:"remaining"`
		} `json:"premium_interactions"`
	} `json:"quota_snapshots"`
	CopilotPlan    string `json:"copilot_plan"`
	QuotaResetDate string `json:"quota_reset_date"`
	Message        string `json:"message"`
}

// fetchQuota reads the Copilot usage snapshot for the token. A
// user-declared monthly allowance overrides the provider entitlement
// as the displayed ceiling; used and remaining always come from the
// provider.
func (g *Gateway) fetchQuota(ctx context.Context, token string, includedOverride *int64) (domain.Quota, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiBaseURL+quotaPath, nil)
	if err != nil {
		return domain.Quota{}, fmt.Errorf("create quota request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptGitHub)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(apiVersionHeader, apiVersion)

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.Quota{}, fmt.Errorf("request quota: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxOAuthResponseBytes))
	if err != nil {
		return domain.Quota{}, fmt.Errorf("read quota response: %w", err)
	}

	var payload quotaResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.Quota{}, fmt.Errorf("decode quota response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusForbidden && payload.Message == integrationDeniedMessage {
			return domain.Quota{}, domain.ErrQuotaPermission
		}
		return domain.Quota{}, fmt.Errorf("request quota: status %d: %s", resp.StatusCode, payload.Message)
	}

	premium := payload.QuotaSnapshots.PremiumInteractions
	if premium == nil {
		return domain.Quota{}, fmt.Errorf("quota response missing premium interactions snapshot")
	}

	included := premium.Entitlement
	if includedOverride != nil {
		included = *includedOverride
	}
	used := premium.Entitlement - premium.Remaining
	if used < 0 {
		used = 0
	}
	remaining := premium.Remaining
	if remaining < 0 {
		remaining = 0
	}

	return domain.Quota{
		UsedRequests:      used,
		IncludedRequests:  &included,
		RemainingRequests: &remaining,
		Plan:              payload.CopilotPlan,
		ResetDate:         payload.QuotaResetDate,
		RawData:           raw,
	}, nil
}
