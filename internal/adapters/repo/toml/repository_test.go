package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoAt(t *testing.T, accountsPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("accounts.path", accountsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func int64Ptr(v int64) *int64 { return &v }

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	first := domain.Account{
		ID:        "copilot_1",
		Username:  "octocat",
		Email:     "octocat@github.com",
		Plan:      "copilot_pro",
		Token:     "gho_first",
		Tags:      []string{"work", "primary"},
		CreatedAt: now,
		LastUsed:  now,
	}
	second := domain.Account{
		ID:        "copilot_2",
		Username:  "hubot",
		Token:     "gho_second",
		CreatedAt: now,
		LastUsed:  now,
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Account{first, second}, accounts)
}

func TestRepositorySaveUpsertsByID(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", Token: "gho_old"}))
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", Token: "gho_new"}))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "gho_new", accounts[0].Token)
}

func TestRepositoryRoundTripPersistsQuota(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	account := domain.Account{
		ID:                      "copilot_1",
		Username:                "octocat",
		Token:                   "gho_token",
		MonthlyIncludedRequests: int64Ptr(300),
		Quota: &domain.Quota{
			UsedRequests:      40,
			IncludedRequests:  int64Ptr(300),
			RemainingRequests: int64Ptr(260),
			UsageItemsCount:   3,
			Plan:              "copilot_pro",
			ResetDate:         "2026-03-01",
			RawData:           []byte(`{"quota_snapshots":{}}`),
		},
	}

	require.NoError(t, repo.Save(context.Background(), account))

	got, err := repo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Quota)
	assert.Equal(t, account.Quota, got.Quota)
	require.NotNil(t, got.MonthlyIncludedRequests)
	assert.Equal(t, int64(300), *got.MonthlyIncludedRequests)
}

func TestRepositoryCurrentPointer(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", Token: "gho_token"}))

	current, err := repo.CurrentID(context.Background())
	require.NoError(t, err)
	assert.Empty(t, current)

	require.NoError(t, repo.SetCurrentID(context.Background(), "copilot_1"))

	current, err = repo.CurrentID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("copilot_1"), current)

	require.NoError(t, repo.SetCurrentID(context.Background(), ""))
	current, err = repo.CurrentID(context.Background())
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestRepositorySetCurrentIDRejectsUnknownAccount(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	err := repo.SetCurrentID(context.Background(), "copilot_missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRepositoryDeleteClearsCurrentPointer(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat", Token: "gho_token"}))
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_2", Username: "hubot", Token: "gho_other"}))
	require.NoError(t, repo.SetCurrentID(context.Background(), "copilot_1"))

	require.NoError(t, repo.Delete(context.Background(), "copilot_1"))

	current, err := repo.CurrentID(context.Background())
	require.NoError(t, err)
	assert.Empty(t, current)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.AccountID("copilot_2"), accounts[0].ID)
}

func TestRepositoryDeleteUnknownAccountReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	err := repo.Delete(context.Background(), "copilot_missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRepositoryDanglingCurrentPointerReadsAsUnset(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(accountsPath, []byte(strings.Join([]string{
		"version = 1",
		"current_account_id = \"copilot_gone\"",
		"",
		"accounts = []",
		"",
	}, "\n")), 0o600))

	repo := newRepoAt(t, accountsPath)

	current, err := repo.CurrentID(context.Background())
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	err = repo.Save(context.Background(), domain.Account{
		ID:       "copilot_1",
		Username: "octocat",
		Token:    "gho_token",
	})
	require.NoError(t, err)

	accountsPath := filepath.Join(homeDir, ".cockpit-tools", "accounts.toml")
	info, err := os.Stat(accountsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "missing", "accounts.toml"))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)

	_, err = repo.GetByID(context.Background(), "copilot_1")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(accountsPath, []byte("accounts = ["), 0o600))

	repo := newRepoAt(t, accountsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode accounts file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newRepoAt(t, filepath.Join(t.TempDir(), "accounts.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Account{ID: "copilot_1", Username: "octocat"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllAccounts(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")

	repoA := newRepoAt(t, accountsPath)
	repoB := newRepoAt(t, accountsPath)

	const perRepoWrites = 100
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoA.Save(context.Background(), domain.Account{ID: domain.AccountID("copilot_a" + strconv.Itoa(i)), Username: "a"})
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoB.Save(context.Background(), domain.Account{ID: domain.AccountID("copilot_b" + strconv.Itoa(i)), Username: "b"})
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	accounts, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	repo := newRepoAt(t, accountsPath)

	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "copilot_1", Username: "octocat"}))

	data, err := os.ReadFile(accountsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(accountsPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"accounts = []",
		"",
	}, "\n")), 0o600))

	repo := newRepoAt(t, accountsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported accounts schema version")
}
