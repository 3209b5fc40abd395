package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidSlots(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		slot    string
		wantErr string
	}{
		{name: "empty", slot: "", wantErr: "cache slot is empty"},
		{name: "whitespace", slot: "   ", wantErr: "cache slot is empty"},
		{name: "absolute", slot: "/absolute/path", wantErr: "invalid cache slot"},
		{name: "traversal", slot: "../escape", wantErr: "invalid cache slot"},
		{name: "nested", slot: "nested/slot", wantErr: "invalid cache slot"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.slot, []byte("value"))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	want := []byte(`{"accounts":[]}`)

	err := store.Put(context.Background(), ports.CacheSlotAccounts, want)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), ports.CacheSlotAccounts)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	slotPath := filepath.Join(root, ports.CacheSlotAccounts+slotFileExt)
	info, err := os.Stat(slotPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(slotFileMode), info.Mode().Perm())
}

func TestStoreGetMissingSlotIsCacheMiss(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), ports.CacheSlotCurrent)
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestStorePutOverwritesSlot(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Put(context.Background(), ports.CacheSlotClientID, []byte("Iv1.old")))
	require.NoError(t, store.Put(context.Background(), ports.CacheSlotClientID, []byte("Iv1.new")))

	got, err := store.Get(context.Background(), ports.CacheSlotClientID)
	require.NoError(t, err)
	assert.Equal(t, []byte("Iv1.new"), got)
}

func TestStoreDeleteIsIdempotentWhenSlotMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), ports.CacheSlotCurrent))
	require.NoError(t, store.Delete(context.Background(), ports.CacheSlotCurrent))
}

func TestStoreDeleteThenGetIsCacheMiss(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Put(context.Background(), ports.CacheSlotCurrent, []byte("{}")))
	require.NoError(t, store.Delete(context.Background(), ports.CacheSlotCurrent))

	_, err := store.Get(context.Background(), ports.CacheSlotCurrent)
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}
