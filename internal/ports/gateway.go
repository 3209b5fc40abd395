package ports

import (
	"context"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
)

// DevicePollStatus is the client-observable outcome of one token poll.
type DevicePollStatus string

const (
	DevicePollPending  DevicePollStatus = "pending"
	DevicePollSuccess  DevicePollStatus = "success"
	DevicePollSlowDown DevicePollStatus = "slow_down"
	DevicePollExpired  DevicePollStatus = "expired"
	DevicePollDenied   DevicePollStatus = "denied"
	DevicePollError    DevicePollStatus = "error"
)

type AddAccountRequest struct {
	Token                   string
	MonthlyIncludedRequests *int64
	Plan                    string
}

type DeviceCodeGrant struct {
	DeviceCode              string
	UserCode                string
	VerificationURI         string
	VerificationURIComplete string
	ExpiresIn               int64
	Interval                int64
}

type DevicePollRequest struct {
	DeviceCode              string
	ClientID                string
	MonthlyIncludedRequests *int64
	Plan                    string
}

type DevicePollResult struct {
	Status  DevicePollStatus
	Message string
	Account *domain.Account
}

// Gateway is the remote command boundary to the account and quota
// provider. All calls may block on the network and honor ctx.
type Gateway interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CurrentAccount(ctx context.Context) (*domain.Account, error)
	AddAccount(ctx context.Context, req AddAccountRequest) (domain.Account, error)
	PrepareDeviceCode(ctx context.Context, clientID string) (DeviceCodeGrant, error)
	PollDeviceCode(ctx context.Context, req DevicePollRequest) (DevicePollResult, error)
	SwitchAccount(ctx context.Context, id domain.AccountID) (domain.Account, error)
	DeleteAccounts(ctx context.Context, ids []domain.AccountID) error
	RefreshQuota(ctx context.Context, id domain.AccountID) (domain.Quota, error)
	RefreshAllQuotas(ctx context.Context) (int, error)
	UpdateAccountTags(ctx context.Context, id domain.AccountID, tags []string) (domain.Account, error)
}
