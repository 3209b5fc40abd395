package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
)

// Registry owns the in-memory account list and the current-account
// pointer. It is the single source of truth: every mutation goes
// through the gateway and is followed by a full re-fetch, which
// overwrites local state. The snapshot cache only seeds cold starts
// and is never authoritative.
type Registry struct {
	gateway ports.Gateway
	cache   ports.CacheStore
	logger  *slog.Logger

	mu          sync.RWMutex
	accounts    []domain.Account
	current     *domain.Account
	subscribers []chan struct{}
}

func NewRegistry(gateway ports.Gateway, cache ports.CacheStore, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Registry{
		gateway: gateway,
		cache:   cache,
		logger:  logger,
	}
}

// LoadCache seeds in-memory state from the snapshot cache. Missing or
// corrupt slots read as empty; nothing here can fail the caller.
func (r *Registry) LoadCache(ctx context.Context) {
	var accounts []domain.Account
	if data, err := r.cache.Get(ctx, ports.CacheSlotAccounts); err == nil {
		if err := json.Unmarshal(data, &accounts); err != nil {
			accounts = nil
		}
	}

	var current *domain.Account
	if data, err := r.cache.Get(ctx, ports.CacheSlotCurrent); err == nil {
		var cached domain.Account
		if err := json.Unmarshal(data, &cached); err == nil {
			current = &cached
		}
	}

	r.mu.Lock()
	r.accounts = accounts
	r.current = current
	r.mu.Unlock()
	r.notify()
}

// Refresh replaces the account list from the gateway and writes the
// snapshot cache. On failure the previous list stays visible.
func (r *Registry) Refresh(ctx context.Context) error {
	accounts, err := r.gateway.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	r.mu.Lock()
	r.accounts = accounts
	r.mu.Unlock()
	r.notify()

	r.writeCache(ctx, ports.CacheSlotAccounts, accounts)
	return nil
}

// RefreshCurrent replaces the current-account pointer from the
// gateway; same stale-cache-fallback contract as Refresh.
func (r *Registry) RefreshCurrent(ctx context.Context) error {
	current, err := r.gateway.CurrentAccount(ctx)
	if err != nil {
		return fmt.Errorf("get current account: %w", err)
	}

	r.mu.Lock()
	r.current = current
	r.mu.Unlock()
	r.notify()

	if current == nil {
		r.dropCache(ctx, ports.CacheSlotCurrent)
	} else {
		r.writeCache(ctx, ports.CacheSlotCurrent, current)
	}
	return nil
}

// Add links a new account by raw token. An empty token is rejected
// before any gateway call. The returned account is valid even when the
// follow-up list refresh fails.
func (r *Registry) Add(ctx context.Context, token string, includedRequests *int64, plan string) (domain.Account, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Account{}, domain.ErrEmptyToken
	}

	account, err := r.gateway.AddAccount(ctx, ports.AddAccountRequest{
		Token:                   token,
		MonthlyIncludedRequests: includedRequests,
		Plan:                    strings.TrimSpace(plan),
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("add account: %w", err)
	}

	if err := r.Refresh(ctx); err != nil {
		return account, err
	}
	return account, nil
}

// Switch makes id the current account. The pointer is set and cached
// immediately, before the follow-up list refresh completes.
func (r *Registry) Switch(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	account, err := r.gateway.SwitchAccount(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("switch account: %w", err)
	}

	r.mu.Lock()
	current := account
	r.current = &current
	r.mu.Unlock()
	r.notify()
	r.writeCache(ctx, ports.CacheSlotCurrent, account)

	if err := r.Refresh(ctx); err != nil {
		return account, err
	}
	return account, nil
}

func (r *Registry) Delete(ctx context.Context, id domain.AccountID) error {
	return r.DeleteMany(ctx, []domain.AccountID{id})
}

// DeleteMany removes accounts remotely, then re-fetches both the list
// and the current pointer so the pointer can never dangle at a
// deleted id.
func (r *Registry) DeleteMany(ctx context.Context, ids []domain.AccountID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := r.gateway.DeleteAccounts(ctx, ids); err != nil {
		return fmt.Errorf("delete accounts: %w", err)
	}

	return errors.Join(r.Refresh(ctx), r.RefreshCurrent(ctx))
}

// UpdateTags replaces the full tag set for id (not a merge).
func (r *Registry) UpdateTags(ctx context.Context, id domain.AccountID, tags []string) (domain.Account, error) {
	account, err := r.gateway.UpdateAccountTags(ctx, id, tags)
	if err != nil {
		return domain.Account{}, fmt.Errorf("update account tags: %w", err)
	}

	if err := r.Refresh(ctx); err != nil {
		return account, err
	}
	return account, nil
}

// Accounts returns a copy of the current list.
func (r *Registry) Accounts() []domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, len(r.accounts))
	copy(accounts, r.accounts)
	return accounts
}

// Current returns a copy of the current account, or nil.
func (r *Registry) Current() *domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil
	}
	current := *r.current
	return &current
}

// Subscribe returns a coalesced change signal: the channel receives at
// least one value after any state replacement.
func (r *Registry) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)

	r.mu.Lock()
	r.subscribers = append(r.subscribers, ch)
	r.mu.Unlock()

	return ch
}

func (r *Registry) notify() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ch := range r.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (r *Registry) writeCache(ctx context.Context, slot string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Debug("encode cache snapshot", "slot", slot, "error", err)
		return
	}
	if err := r.cache.Put(ctx, slot, data); err != nil {
		r.logger.Debug("write cache snapshot", "slot", slot, "error", err)
	}
}

func (r *Registry) dropCache(ctx context.Context, slot string) {
	if err := r.cache.Delete(ctx, slot); err != nil {
		r.logger.Debug("drop cache snapshot", "slot", slot, "error", err)
	}
}
