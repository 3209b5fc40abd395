package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version          int             `toml:"version"`
	CurrentAccountID string          `toml:"current_account_id,omitempty"`
	Accounts         []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ID                      string       `toml:"id"`
	Username                string       `toml:"username"`
	Email                   string       `toml:"email,omitempty"`
	Plan                    string       `toml:"plan,omitempty"`
	MonthlyIncludedRequests *int64       `toml:"monthly_included_requests,omitempty"`
	Token                   string       `toml:"token"`
	Tags                    []string     `toml:"tags,omitempty"`
	CreatedAt               string       `toml:"created_at"`
	LastUsed                string       `toml:"last_used"`
	Quota                   *quotaSchema `toml:"quota,omitempty"`
}

type quotaSchema struct {
	UsedRequests      int64  `toml:"used_requests"`
	IncludedRequests  *int64 `toml:"included_requests,omitempty"`
	RemainingRequests *int64 `toml:"remaining_requests,omitempty"`
	UsageItemsCount   int    `toml:"usage_items_count,omitempty"`
	Plan              string `toml:"plan,omitempty"`
	ResetDate         string `toml:"reset_date,omitempty"`
	RawData           string `toml:"raw_data,omitempty"`
}
