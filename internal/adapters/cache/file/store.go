package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
)

const (
	storeDirMode  = 0o700
	slotFileMode  = 0o600
	slotFileExt   = ".json"
	cacheSubDir   = "cache"
	defaultParent = ".cockpit-tools"
)

// Store keeps each cache slot in its own file under root. Slots are a
// small fixed set, so there is no index; a missing file is a miss.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.CacheStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// NewDefaultStore roots the cache next to the accounts file in the
// user's home directory.
func NewDefaultStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	return NewStore(filepath.Join(homeDir, defaultParent, cacheSubDir)), nil
}

func (s *Store) Put(ctx context.Context, slot string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForSlot(slot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	if err := os.WriteFile(path, value, slotFileMode); err != nil {
		return fmt.Errorf("write cache slot %q: %w", slot, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathForSlot(slot)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("read cache slot %q: %w", slot, err)
	}

	return data, nil
}

func (s *Store) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForSlot(slot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete cache slot %q: %w", slot, err)
	}

	return nil
}

func (s *Store) pathForSlot(slot string) (string, error) {
	trimmed := strings.TrimSpace(slot)
	if trimmed == "" {
		return "", errors.New("cache slot is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." || strings.ContainsRune(cleaned, filepath.Separator) {
		return "", fmt.Errorf("invalid cache slot %q", slot)
	}

	return filepath.Join(s.root, cleaned+slotFileExt), nil
}
