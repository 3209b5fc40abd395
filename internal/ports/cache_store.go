package ports

import "context"

// Cache slot keys. Each slot is independently readable and writable.
const (
	CacheSlotAccounts = "accounts"
	CacheSlotCurrent  = "current_account"
	CacheSlotClientID = "device_client_id"
)

// CacheStore is best-effort local persistence. Reads of missing or
// corrupt slots return ErrCacheMiss; callers treat every error as an
// empty slot and never propagate it.
type CacheStore interface {
	Get(ctx context.Context, slot string) ([]byte, error)
	Put(ctx context.Context, slot string, value []byte) error
	Delete(ctx context.Context, slot string) error
}
