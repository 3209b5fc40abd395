package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory AccountRepository for gateway tests.
type memRepo struct {
	mu       sync.Mutex
	accounts map[domain.AccountID]domain.Account
	order    []domain.AccountID
	current  domain.AccountID
}

var _ ports.AccountRepository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{accounts: make(map[domain.AccountID]domain.Account)}
}

func (r *memRepo) GetByID(_ context.Context, id domain.AccountID) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *memRepo) List(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		accounts = append(accounts, r.accounts[id])
	}
	return accounts, nil
}

func (r *memRepo) Save(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		r.order = append(r.order, account.ID)
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *memRepo) Delete(_ context.Context, id domain.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	kept := r.order[:0]
	for _, existing := range r.order {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	r.order = kept
	if r.current == id {
		r.current = ""
	}
	return nil
}

func (r *memRepo) CurrentID(_ context.Context) (domain.AccountID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, nil
}

func (r *memRepo) SetCurrentID(_ context.Context, id domain.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		if _, ok := r.accounts[id]; !ok {
			return domain.ErrAccountNotFound
		}
	}
	r.current = id
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

const quotaOK = `{"quota_snapshots":{"premium_interactions":{"entitlement":300,"remaining":260}},"copilot_plan":"copilot_pro","quota_reset_date":"2026-04-01"}`

func newTestGateway(t *testing.T, repo ports.AccountRepository, handler http.Handler) *Gateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGateway(repo, fixedClock{now: testNow}, nil,
		WithHTTPClient(server.Client()),
		WithBaseURLs(server.URL, server.URL))
}

func githubHandler(t *testing.T, quotaBody string, quotaStatus int) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_token", r.Header.Get("Authorization"))
		assert.Equal(t, acceptGitHub, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"Octocat","email":"octocat@github.com"}`))
	})
	mux.HandleFunc("/copilot_internal/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiVersion, r.Header.Get(apiVersionHeader))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(quotaStatus)
		_, _ = w.Write([]byte(quotaBody))
	})
	return mux
}

func TestAddAccountLinksUserAndQuota(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	gateway := newTestGateway(t, repo, githubHandler(t, quotaOK, http.StatusOK))

	account, err := gateway.AddAccount(context.Background(), ports.AddAccountRequest{Token: "gho_token"})
	require.NoError(t, err)

	assert.Equal(t, accountIDFor("Octocat"), account.ID)
	assert.Equal(t, "Octocat", account.Username)
	assert.Equal(t, "octocat@github.com", account.Email)
	assert.Equal(t, testNow, account.CreatedAt)

	require.NotNil(t, account.Quota)
	assert.Equal(t, int64(40), account.Quota.UsedRequests)
	require.NotNil(t, account.Quota.IncludedRequests)
	assert.Equal(t, int64(300), *account.Quota.IncludedRequests)
	require.NotNil(t, account.Quota.RemainingRequests)
	assert.Equal(t, int64(260), *account.Quota.RemainingRequests)
	assert.Equal(t, "copilot_pro", account.Quota.Plan)
	assert.Equal(t, "2026-04-01", account.Quota.ResetDate)
	assert.JSONEq(t, quotaOK, string(account.Quota.RawData))
}

func TestAddAccountIDDerivesFromLowercasedUsername(t *testing.T) {
	t.Parallel()

	assert.Equal(t, accountIDFor("octocat"), accountIDFor("OCTOCAT"))
	assert.Equal(t, domain.AccountID("copilot_554660db8666bd658d309ec6351872e9"), accountIDFor("Octocat"))
}

func TestAddAccountSurvivesQuotaFailure(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	gateway := newTestGateway(t, repo, githubHandler(t, `{"message":"boom"}`, http.StatusInternalServerError))

	account, err := gateway.AddAccount(context.Background(), ports.AddAccountRequest{Token: "gho_token"})
	require.NoError(t, err)

	assert.Equal(t, "Octocat", account.Username)
	assert.Nil(t, account.Quota)

	stored, err := repo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Octocat", stored.Username)
}

func TestAddAccountRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(newMemRepo(), fixedClock{now: testNow}, nil)

	_, err := gateway.AddAccount(context.Background(), ports.AddAccountRequest{Token: "   "})
	require.ErrorIs(t, err, domain.ErrEmptyToken)
}

func TestAddAccountUpsertsByCaseInsensitiveUsername(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	created := testNow.Add(-24 * time.Hour)
	require.NoError(t, repo.Save(context.Background(), domain.Account{
		ID:        "copilot_existing",
		Username:  "OCTOCAT",
		Token:     "gho_old",
		Tags:      []string{"work"},
		CreatedAt: created,
		LastUsed:  created,
	}))

	gateway := newTestGateway(t, repo, githubHandler(t, quotaOK, http.StatusOK))

	account, err := gateway.AddAccount(context.Background(), ports.AddAccountRequest{Token: "gho_token"})
	require.NoError(t, err)

	// Re-linking keeps the id, creation time, and tags; refreshes the
	// rest.
	assert.Equal(t, domain.AccountID("copilot_existing"), account.ID)
	assert.Equal(t, "Octocat", account.Username)
	assert.Equal(t, "gho_token", account.Token)
	assert.Equal(t, []string{"work"}, account.Tags)
	assert.Equal(t, created, account.CreatedAt)
	assert.Equal(t, testNow, account.LastUsed)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestPrepareDeviceCodeUsesFallbackClientID(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/login/device/code", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, fallbackClientID, r.Form.Get("client_id"))
		assert.Equal(t, deviceScope, r.Form.Get("scope"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"device_code":"device-123","user_code":"AAAA-BBBB","verification_uri":"https://github.com/login/device","expires_in":899,"interval":5}`))
	})

	gateway := newTestGateway(t, newMemRepo(), mux)

	grant, err := gateway.PrepareDeviceCode(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "device-123", grant.DeviceCode)
	assert.Equal(t, "AAAA-BBBB", grant.UserCode)
	assert.Equal(t, "https://github.com/login/device", grant.VerificationURI)
	assert.Equal(t, int64(899), grant.ExpiresIn)
	assert.Equal(t, int64(5), grant.Interval)
}

func TestPrepareDeviceCodePassesExplicitClientID(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/login/device/code", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Iv1.custom", r.Form.Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"device_code":"device-123","user_code":"AAAA-BBBB","verification_uri":"https://github.com/login/device","expires_in":899,"interval":5}`))
	})

	gateway := newTestGateway(t, newMemRepo(), mux)

	_, err := gateway.PrepareDeviceCode(context.Background(), " Iv1.custom ")
	require.NoError(t, err)
}

func TestPollDeviceCodeStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus ports.DevicePollStatus
		wantMsg    string
	}{
		{name: "pending", body: `{"error":"authorization_pending"}`, wantStatus: ports.DevicePollPending, wantMsg: "authorization_pending"},
		{name: "slow down", body: `{"error":"slow_down"}`, wantStatus: ports.DevicePollSlowDown, wantMsg: "slow_down"},
		{name: "expired", body: `{"error":"expired_token"}`, wantStatus: ports.DevicePollExpired, wantMsg: "expired_token"},
		{name: "denied", body: `{"error":"access_denied","error_description":"The user has denied access"}`, wantStatus: ports.DevicePollDenied, wantMsg: "The user has denied access"},
		{name: "unknown error", body: `{"error":"incorrect_device_code"}`, wantStatus: ports.DevicePollError, wantMsg: "incorrect_device_code"},
		{name: "empty body is pending", body: `{}`, wantStatus: ports.DevicePollPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, deviceCodeGrantType, r.Form.Get("grant_type"))
				assert.Equal(t, "device-123", r.Form.Get("device_code"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			gateway := newTestGateway(t, newMemRepo(), mux)

			result, err := gateway.PollDeviceCode(context.Background(), ports.DevicePollRequest{DeviceCode: "device-123"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantMsg, result.Message)
			assert.Nil(t, result.Account)
		})
	}
}

func TestPollDeviceCodeSuccessLinksAccount(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_token","token_type":"bearer","scope":"read:user"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"Octocat","email":null}`))
	})
	mux.HandleFunc("/copilot_internal/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(quotaOK))
	})

	gateway := newTestGateway(t, repo, mux)

	result, err := gateway.PollDeviceCode(context.Background(), ports.DevicePollRequest{DeviceCode: "device-123"})
	require.NoError(t, err)

	assert.Equal(t, ports.DevicePollSuccess, result.Status)
	require.NotNil(t, result.Account)
	assert.Equal(t, "Octocat", result.Account.Username)
	assert.Empty(t, result.Account.Email)
	require.NotNil(t, result.Account.Quota)
}

func TestPollDeviceCodeRequiresDeviceCode(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(newMemRepo(), fixedClock{now: testNow}, nil)

	_, err := gateway.PollDeviceCode(context.Background(), ports.DevicePollRequest{})
	require.ErrorIs(t, err, domain.ErrNoDeviceCode)
}

func TestSwitchAccountBumpsLastUsedAndSetsCurrent(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	earlier := testNow.Add(-48 * time.Hour)
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", LastUsed: earlier}))

	gateway := NewGateway(repo, fixedClock{now: testNow}, nil)

	account, err := gateway.SwitchAccount(context.Background(), "copilot_1")
	require.NoError(t, err)
	assert.Equal(t, testNow, account.LastUsed)

	current, err := gateway.CurrentAccount(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, domain.AccountID("copilot_1"), current.ID)
}

func TestSwitchAccountUnknownIDReturnsNotFound(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(newMemRepo(), fixedClock{now: testNow}, nil)

	_, err := gateway.SwitchAccount(context.Background(), "copilot_missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCurrentAccountNilWhenUnset(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(newMemRepo(), fixedClock{now: testNow}, nil)

	current, err := gateway.CurrentAccount(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestDeleteAccountsSkipsMissingIDs(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat"}))
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_2", Username: "hubot"}))

	gateway := NewGateway(repo, fixedClock{now: testNow}, nil)

	err := gateway.DeleteAccounts(context.Background(), []domain.AccountID{"copilot_1", "copilot_missing"})
	require.NoError(t, err)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.AccountID("copilot_2"), accounts[0].ID)
}

func TestRefreshQuotaPermissionDenied(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", Token: "gho_token"}))

	mux := http.NewServeMux()
	mux.HandleFunc("/copilot_internal/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Resource not accessible by integration"}`))
	})

	gateway := newTestGateway(t, repo, mux)

	_, err := gateway.RefreshQuota(context.Background(), "copilot_1")
	require.ErrorIs(t, err, domain.ErrQuotaPermission)

	// The stored snapshot is untouched by the failure.
	stored, err := repo.GetByID(context.Background(), "copilot_1")
	require.NoError(t, err)
	assert.Nil(t, stored.Quota)
}

func TestRefreshQuotaHonorsIncludedOverride(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	override := int64(1500)
	require.NoError(t, repo.Save(context.Background(), domain.Account{
		ID:                      "copilot_1",
		Username:                "octocat",
		Token:                   "gho_token",
		MonthlyIncludedRequests: &override,
	}))

	gateway := newTestGateway(t, repo, githubHandler(t, quotaOK, http.StatusOK))

	quota, err := gateway.RefreshQuota(context.Background(), "copilot_1")
	require.NoError(t, err)

	require.NotNil(t, quota.IncludedRequests)
	assert.Equal(t, int64(1500), *quota.IncludedRequests)
	assert.Equal(t, int64(40), quota.UsedRequests, "used still derives from the provider entitlement")
}

func TestRefreshQuotaClampsNegativeValues(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", Token: "gho_token"}))

	body := `{"quota_snapshots":{"premium_interactions":{"entitlement":100,"remaining":120}}}`
	gateway := newTestGateway(t, repo, githubHandler(t, body, http.StatusOK))

	quota, err := gateway.RefreshQuota(context.Background(), "copilot_1")
	require.NoError(t, err)
	assert.Zero(t, quota.UsedRequests)
}

func TestRefreshAllQuotasCountsSuccessesAndSkipsFailures(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", Token: "gho_good"}))
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_2", Username: "hubot", Token: "gho_bad"}))

	mux := http.NewServeMux()
	mux.HandleFunc("/copilot_internal/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") == "Bearer gho_bad" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		_, _ = w.Write([]byte(quotaOK))
	})

	gateway := newTestGateway(t, repo, mux)

	count, err := gateway.RefreshAllQuotas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	good, err := repo.GetByID(context.Background(), "copilot_1")
	require.NoError(t, err)
	assert.NotNil(t, good.Quota)

	bad, err := repo.GetByID(context.Background(), "copilot_2")
	require.NoError(t, err)
	assert.Nil(t, bad.Quota)
}

func TestUpdateAccountTagsPersists(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat"}))

	gateway := NewGateway(repo, fixedClock{now: testNow}, nil)

	account, err := gateway.UpdateAccountTags(context.Background(), "copilot_1", []string{"work", "primary"})
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "primary"}, account.Tags)

	stored, err := repo.GetByID(context.Background(), "copilot_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "primary"}, stored.Tags)
}
