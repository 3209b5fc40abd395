package github

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
)

const (
	defaultOAuthBaseURL = "https://github.com"
	defaultAPIBaseURL   = "https://api.github.com"

	// GitHub's public client id for device-flow sign-in, used when the
	// caller does not bring their own OAuth app.
	fallbackClientID = "Iv1.b507a08c87ecfe98"
	deviceScope      = "read:user"

	userAgent      = "cockpit-tools"
	acceptGitHub   = "application/vnd.github+json"
	apiVersion     = "2022-11-28"
	requestTimeout = 30 * time.Second
)

// Gateway implements the provider boundary against the GitHub OAuth
// and Copilot APIs, with account state held in the repository.
type Gateway struct {
	repo   ports.AccountRepository
	clock  ports.Clock
	client *http.Client
	logger *slog.Logger

	oauthBaseURL string
	apiBaseURL   string
}

var _ ports.Gateway = (*Gateway)(nil)

type Option func(*Gateway)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) { g.client = client }
}

// WithBaseURLs points the gateway at alternate OAuth and API hosts.
func WithBaseURLs(oauthBaseURL, apiBaseURL string) Option {
	return func(g *Gateway) {
		g.oauthBaseURL = strings.TrimRight(oauthBaseURL, "/")
		g.apiBaseURL = strings.TrimRight(apiBaseURL, "/")
	}
}

func NewGateway(repo ports.AccountRepository, clock ports.Clock, logger *slog.Logger, opts ...Option) *Gateway {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Gateway{
		repo:         repo,
		clock:        clock,
		client:       &http.Client{Timeout: requestTimeout},
		logger:       logger,
		oauthBaseURL: defaultOAuthBaseURL,
		apiBaseURL:   defaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return g.repo.List(ctx)
}

// CurrentAccount returns nil without error when no account is current.
func (g *Gateway) CurrentAccount(ctx context.Context) (*domain.Account, error) {
	id, err := g.repo.CurrentID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}

	account, err := g.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// AddAccount resolves the token to a GitHub user, upserts the linked
// account, and refreshes its quota. A quota failure does not fail the
// add; the account is stored and returned without a snapshot.
func (g *Gateway) AddAccount(ctx context.Context, req ports.AddAccountRequest) (domain.Account, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return domain.Account{}, domain.ErrEmptyToken
	}

	user, err := g.fetchUser(ctx, token)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := g.upsertAccount(ctx, user, token, req)
	if err != nil {
		return domain.Account{}, err
	}

	if _, err := g.RefreshQuota(ctx, account.ID); err != nil {
		g.logger.Warn("refresh quota after linking account", "account", account, "error", err)
		return account, nil
	}

	return g.repo.GetByID(ctx, account.ID)
}

func (g *Gateway) PrepareDeviceCode(ctx context.Context, clientID string) (ports.DeviceCodeGrant, error) {
	return g.requestDeviceCode(ctx, resolveClientID(clientID), deviceScope)
}

// PollDeviceCode performs exactly one token poll. Waiting between
// polls is the caller's concern.
func (g *Gateway) PollDeviceCode(ctx context.Context, req ports.DevicePollRequest) (ports.DevicePollResult, error) {
	if req.DeviceCode == "" {
		return ports.DevicePollResult{}, domain.ErrNoDeviceCode
	}

	token, pollErr, err := g.pollDeviceToken(ctx, resolveClientID(req.ClientID), req.DeviceCode)
	if err != nil {
		return ports.DevicePollResult{}, err
	}

	if token != "" {
		account, err := g.AddAccount(ctx, ports.AddAccountRequest{
			Token:                   token,
			MonthlyIncludedRequests: req.MonthlyIncludedRequests,
			Plan:                    req.Plan,
		})
		if err != nil {
			return ports.DevicePollResult{}, fmt.Errorf("link authorized account: %w", err)
		}
		return ports.DevicePollResult{Status: ports.DevicePollSuccess, Account: &account}, nil
	}

	return ports.DevicePollResult{Status: pollErr.status(), Message: pollErr.message()}, nil
}

// SwitchAccount marks id current and bumps its last-used timestamp.
func (g *Gateway) SwitchAccount(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	account, err := g.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	account.LastUsed = g.clock.Now().UTC()
	if err := g.repo.Save(ctx, account); err != nil {
		return domain.Account{}, err
	}
	if err := g.repo.SetCurrentID(ctx, id); err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// DeleteAccounts removes the given accounts; ids that are already gone
// are skipped.
func (g *Gateway) DeleteAccounts(ctx context.Context, ids []domain.AccountID) error {
	for _, id := range ids {
		err := g.repo.Delete(ctx, id)
		if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
			return fmt.Errorf("delete account %s: %w", id, err)
		}
	}
	return nil
}

// RefreshQuota fetches a fresh snapshot for the account and persists
// it on success. On failure the stored snapshot is left untouched.
func (g *Gateway) RefreshQuota(ctx context.Context, id domain.AccountID) (domain.Quota, error) {
	account, err := g.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Quota{}, err
	}

	quota, err := g.fetchQuota(ctx, account.Token, account.MonthlyIncludedRequests)
	if err != nil {
		return domain.Quota{}, err
	}

	account.Quota = &quota
	if err := g.repo.Save(ctx, account); err != nil {
		return domain.Quota{}, err
	}

	return quota, nil
}

// RefreshAllQuotas refreshes every account sequentially and reports
// how many succeeded. Per-account failures are logged and skipped, not
// propagated.
func (g *Gateway) RefreshAllQuotas(ctx context.Context) (int, error) {
	accounts, err := g.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, account := range accounts {
		if _, err := g.RefreshQuota(ctx, account.ID); err != nil {
			g.logger.Warn("refresh quota", "account", account, "error", err)
			continue
		}
		refreshed++
	}

	return refreshed, nil
}

func (g *Gateway) UpdateAccountTags(ctx context.Context, id domain.AccountID, tags []string) (domain.Account, error) {
	account, err := g.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	account.Tags = tags
	if err := g.repo.Save(ctx, account); err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// upsertAccount matches existing accounts by case-insensitive username
// so re-authorizing never duplicates an account. New accounts get an
// id derived from the lowercased username; an existing account keeps
// its id, tags, and quota snapshot.
func (g *Gateway) upsertAccount(ctx context.Context, user githubUser, token string, req ports.AddAccountRequest) (domain.Account, error) {
	accounts, err := g.repo.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	now := g.clock.Now().UTC()
	for _, existing := range accounts {
		if !strings.EqualFold(existing.Username, user.Login) {
			continue
		}

		existing.Username = user.Login
		existing.Token = token
		existing.Email = user.Email
		existing.Plan = req.Plan
		existing.MonthlyIncludedRequests = req.MonthlyIncludedRequests
		existing.LastUsed = now
		if err := g.repo.Save(ctx, existing); err != nil {
			return domain.Account{}, err
		}
		return existing, nil
	}

	account := domain.Account{
		ID:                      accountIDFor(user.Login),
		Username:                user.Login,
		Email:                   user.Email,
		Plan:                    req.Plan,
		MonthlyIncludedRequests: req.MonthlyIncludedRequests,
		Token:                   token,
		CreatedAt:               now,
		LastUsed:                now,
	}
	if err := g.repo.Save(ctx, account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func accountIDFor(username string) domain.AccountID {
	sum := md5.Sum([]byte(strings.ToLower(username)))
	return domain.AccountID(fmt.Sprintf("copilot_%x", sum))
}

func resolveClientID(clientID string) string {
	trimmed := strings.TrimSpace(clientID)
	if trimmed != "" {
		return trimmed
	}
	return fallbackClientID
}
