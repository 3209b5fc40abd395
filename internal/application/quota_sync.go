package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
)

// busyGuard is a keyed semaphore with one permit per account id.
// tryAcquire never blocks; a held key reports false so duplicate work
// is dropped instead of queued.
type busyGuard struct {
	mu   sync.Mutex
	held map[domain.AccountID]struct{}
}

func newBusyGuard() *busyGuard {
	return &busyGuard{held: make(map[domain.AccountID]struct{})}
}

func (b *busyGuard) tryAcquire(id domain.AccountID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.held[id]; ok {
		return false
	}
	b.held[id] = struct{}{}
	return true
}

func (b *busyGuard) release(id domain.AccountID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.held, id)
}

// QuotaSync refreshes quota snapshots through the gateway. Per-account
// refreshes are serialized per id; different ids may refresh
// concurrently. A failed refresh leaves the previously displayed
// snapshot intact because state only changes via the registry
// re-fetch.
type QuotaSync struct {
	gateway  ports.Gateway
	registry *Registry
	logger   *slog.Logger

	busy *busyGuard

	allMu   sync.Mutex
	allBusy bool
}

func NewQuotaSync(gateway ports.Gateway, registry *Registry, logger *slog.Logger) *QuotaSync {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &QuotaSync{
		gateway:  gateway,
		registry: registry,
		logger:   logger,
		busy:     newBusyGuard(),
	}
}

// Refresh fetches a fresh quota for id. While a refresh for the same
// id is in flight, another call is a silent no-op and reports
// started=false. The permit is released on every exit path.
func (s *QuotaSync) Refresh(ctx context.Context, id domain.AccountID) (started bool, err error) {
	if !s.busy.tryAcquire(id) {
		return false, nil
	}
	defer s.busy.release(id)

	if _, err := s.gateway.RefreshQuota(ctx, id); err != nil {
		return true, fmt.Errorf("refresh quota for %s: %w", id, err)
	}

	if err := s.registry.Refresh(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// RefreshAll runs one bulk refresh and reports how many accounts the
// provider refreshed. Concurrent bulk refreshes are rejected as a
// no-op (started=false); per-account refreshes are not blocked by a
// bulk run.
func (s *QuotaSync) RefreshAll(ctx context.Context) (count int, started bool, err error) {
	s.allMu.Lock()
	if s.allBusy {
		s.allMu.Unlock()
		return 0, false, nil
	}
	s.allBusy = true
	s.allMu.Unlock()

	defer func() {
		s.allMu.Lock()
		s.allBusy = false
		s.allMu.Unlock()
	}()

	count, err = s.gateway.RefreshAllQuotas(ctx)
	if err != nil {
		return 0, true, fmt.Errorf("refresh all quotas: %w", err)
	}

	if err := s.registry.Refresh(ctx); err != nil {
		return count, true, err
	}
	return count, true, nil
}
