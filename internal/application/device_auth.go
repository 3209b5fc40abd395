package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
)

const (
	defaultPollInterval = 5 * time.Second
	minFirstPollDelay   = 3 * time.Second
	slowDownStep        = 5 * time.Second
)

// Scheduler runs fn once after d. The returned stop function cancels a
// run that has not fired yet and is safe to call more than once.
type Scheduler func(d time.Duration, fn func()) (stop func())

func timerScheduler(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// StartOptions carries the user-declared fields that accompany every
// poll of one device session.
type StartOptions struct {
	ClientID                string
	MonthlyIncludedRequests *int64
	Plan                    string
}

// DeviceAuth drives one OAuth2 device-authorization attempt at a time:
// idle → pending → success or error, with pending self-looping through
// the poll scheduler. A generation token guards every scheduled poll
// and every in-flight result, so Cancel is race-free: a late result
// from a cancelled session is discarded, never applied.
type DeviceAuth struct {
	gateway  ports.Gateway
	cache    ports.CacheStore
	registry *Registry
	clock    ports.Clock
	schedule Scheduler
	logger   *slog.Logger

	mu          sync.Mutex
	session     domain.DeviceSession
	opts        StartOptions
	generation  uint64
	stopTimer   func()
	subscribers []chan struct{}
}

func NewDeviceAuth(gateway ports.Gateway, cache ports.CacheStore, registry *Registry, clock ports.Clock, logger *slog.Logger) *DeviceAuth {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &DeviceAuth{
		gateway:  gateway,
		cache:    cache,
		registry: registry,
		clock:    clock,
		schedule: timerScheduler,
		logger:   logger,
		session:  domain.DeviceSession{Status: domain.DeviceFlowIdle},
	}
}

// Start requests a device code and schedules the first poll after
// max(3s, provider interval). A previous session, in any state, is
// cancelled first. A non-empty client id is persisted as the default
// for later sessions; persisting is best-effort.
func (d *DeviceAuth) Start(ctx context.Context, opts StartOptions) (domain.DeviceSession, error) {
	d.Cancel()

	grant, err := d.gateway.PrepareDeviceCode(ctx, opts.ClientID)
	if err != nil {
		d.mu.Lock()
		d.session = domain.DeviceSession{Status: domain.DeviceFlowError, Message: err.Error()}
		d.mu.Unlock()
		d.notify()
		return d.Session(), fmt.Errorf("prepare device code: %w", err)
	}

	if opts.ClientID != "" {
		if err := d.cache.Put(ctx, ports.CacheSlotClientID, []byte(opts.ClientID)); err != nil {
			d.logger.Debug("persist device client id", "error", err)
		}
	}

	interval := time.Duration(grant.Interval) * time.Second
	if interval <= 0 {
		interval = defaultPollInterval
	}

	now := d.clock.Now()
	session := domain.DeviceSession{
		DeviceCode:              grant.DeviceCode,
		UserCode:                grant.UserCode,
		VerificationURI:         grant.VerificationURI,
		VerificationURIComplete: grant.VerificationURIComplete,
		ExpiresAt:               now.Add(time.Duration(grant.ExpiresIn) * time.Second),
		PollInterval:            interval,
		Status:                  domain.DeviceFlowPending,
	}

	firstDelay := interval
	if firstDelay < minFirstPollDelay {
		firstDelay = minFirstPollDelay
	}

	d.mu.Lock()
	d.session = session
	d.opts = opts
	gen := d.generation
	d.scheduleLocked(ctx, gen, firstDelay)
	d.mu.Unlock()
	d.notify()

	return session, nil
}

// Cancel stops any scheduled poll and discards the session. Idempotent
// and safe during teardown; a poll already in flight will find its
// generation stale and drop its result.
func (d *DeviceAuth) Cancel() {
	d.mu.Lock()
	d.generation++
	if d.stopTimer != nil {
		d.stopTimer()
		d.stopTimer = nil
	}
	changed := d.session.Status != domain.DeviceFlowIdle
	d.session = domain.DeviceSession{Status: domain.DeviceFlowIdle}
	d.mu.Unlock()

	if changed {
		d.notify()
	}
}

// Session returns a copy of the current session state.
func (d *DeviceAuth) Session() domain.DeviceSession {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session
}

// Subscribe returns a coalesced signal fired on every status change.
func (d *DeviceAuth) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)

	d.mu.Lock()
	d.subscribers = append(d.subscribers, ch)
	d.mu.Unlock()

	return ch
}

func (d *DeviceAuth) scheduleLocked(ctx context.Context, gen uint64, delay time.Duration) {
	if d.stopTimer != nil {
		d.stopTimer()
	}
	d.stopTimer = d.schedule(delay, func() { d.poll(ctx, gen) })
}

func (d *DeviceAuth) poll(ctx context.Context, gen uint64) {
	d.mu.Lock()
	if gen != d.generation || d.session.Status != domain.DeviceFlowPending {
		d.mu.Unlock()
		return
	}

	// Expiry is judged against the wall clock alone; slow_down backoff
	// never moves the deadline. An expired session fails without a
	// gateway call.
	if d.session.Expired(d.clock.Now()) {
		d.session.Status = domain.DeviceFlowError
		d.session.Message = domain.ErrDeviceExpired.Error()
		d.mu.Unlock()
		d.notify()
		return
	}

	req := ports.DevicePollRequest{
		DeviceCode:              d.session.DeviceCode,
		ClientID:                d.opts.ClientID,
		MonthlyIncludedRequests: d.opts.MonthlyIncludedRequests,
		Plan:                    d.opts.Plan,
	}
	d.mu.Unlock()

	result, err := d.gateway.PollDeviceCode(ctx, req)

	d.mu.Lock()
	if gen != d.generation || d.session.Status != domain.DeviceFlowPending {
		d.mu.Unlock()
		return
	}

	if err != nil {
		d.session.Status = domain.DeviceFlowError
		d.session.Message = err.Error()
		d.mu.Unlock()
		d.notify()
		return
	}

	switch result.Status {
	case ports.DevicePollSuccess:
		d.session.Status = domain.DeviceFlowSuccess
		d.session.Message = ""
		if result.Account != nil {
			d.session.AccountID = result.Account.ID
		}
		d.mu.Unlock()
		d.notify()
		d.refreshRegistry(ctx)
		return
	case ports.DevicePollSlowDown:
		// The increased interval becomes the baseline for every later
		// poll of this session.
		d.session.PollInterval += slowDownStep
		d.scheduleLocked(ctx, gen, d.session.PollInterval)
		d.mu.Unlock()
		return
	case ports.DevicePollPending:
		d.scheduleLocked(ctx, gen, d.session.PollInterval)
		d.mu.Unlock()
		return
	default:
		d.session.Status = domain.DeviceFlowError
		d.session.Message = result.Message
		if d.session.Message == "" {
			d.session.Message = fmt.Sprintf("device authorization failed: %s", result.Status)
		}
		d.mu.Unlock()
		d.notify()
		return
	}
}

func (d *DeviceAuth) refreshRegistry(ctx context.Context) {
	if d.registry == nil {
		return
	}
	if err := d.registry.Refresh(ctx); err != nil {
		d.logger.Warn("refresh accounts after device authorization", "error", err)
	}
	if err := d.registry.RefreshCurrent(ctx); err != nil {
		d.logger.Warn("refresh current account after device authorization", "error", err)
	}
}

func (d *DeviceAuth) notify() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ch := range d.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// DefaultClientID reads the persisted client-id preference; an empty
// string means none is stored.
func DefaultClientID(ctx context.Context, cache ports.CacheStore) string {
	data, err := cache.Get(ctx, ports.CacheSlotClientID)
	if err != nil {
		return ""
	}
	return string(data)
}
