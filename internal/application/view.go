package application

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
)

type SortKey string

const (
	SortLastUsed  SortKey = "last_used"
	SortUsedAsc   SortKey = "used_asc"
	SortUsedDesc  SortKey = "used_desc"
	SortRemaining SortKey = "remaining"
)

func ParseSortKey(raw string) (SortKey, error) {
	switch key := SortKey(strings.TrimSpace(raw)); key {
	case "", SortLastUsed:
		return SortLastUsed, nil
	case SortUsedAsc, SortUsedDesc, SortRemaining:
		return key, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", raw)
	}
}

// Query describes one projection of the account list. Zero value means
// no filtering and the default sort.
type Query struct {
	Search string
	Tags   []string
	Sort   SortKey
}

// Project filters and sorts accounts without mutating the input.
func Project(accounts []domain.Account, q Query) []domain.Account {
	result := filterAccounts(accounts, q.Search, q.Tags)
	sortAccounts(result, q.Sort)
	return result
}

// TagUniverse is every distinct tag across all accounts, sorted
// lexicographically for stable display.
func TagUniverse(accounts []domain.Account) []string {
	seen := make(map[string]struct{})
	for _, account := range accounts {
		for _, tag := range account.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func filterAccounts(accounts []domain.Account, search string, tags []string) []domain.Account {
	query := strings.ToLower(strings.TrimSpace(search))

	result := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if query != "" && !matchesSearch(account, query) {
			continue
		}
		if !hasAllTags(account, tags) {
			continue
		}
		result = append(result, account)
	}
	return result
}

// matchesSearch is a case-insensitive substring match on username or
// email; a missing email is a non-match, not an error.
func matchesSearch(account domain.Account, query string) bool {
	if strings.Contains(strings.ToLower(account.Username), query) {
		return true
	}
	return account.Email != "" && strings.Contains(strings.ToLower(account.Email), query)
}

// hasAllTags is intersection semantics: every selected tag must be on
// the account.
func hasAllTags(account domain.Account, tags []string) bool {
	for _, tag := range tags {
		if !account.HasTag(tag) {
			return false
		}
	}
	return true
}

func sortAccounts(accounts []domain.Account, key SortKey) {
	switch key {
	case SortUsedAsc:
		sort.SliceStable(accounts, func(i, j int) bool {
			return usedRequests(accounts[i]) < usedRequests(accounts[j])
		})
	case SortUsedDesc:
		sort.SliceStable(accounts, func(i, j int) bool {
			return usedRequests(accounts[i]) > usedRequests(accounts[j])
		})
	case SortRemaining:
		sort.SliceStable(accounts, func(i, j int) bool {
			return remainingRequests(accounts[i]) > remainingRequests(accounts[j])
		})
	default:
		sort.SliceStable(accounts, func(i, j int) bool {
			return accounts[i].LastUsed.After(accounts[j].LastUsed)
		})
	}
}

// Missing quota fields sort as zero.
func usedRequests(account domain.Account) int64 {
	if account.Quota == nil {
		return 0
	}
	return account.Quota.UsedRequests
}

func remainingRequests(account domain.Account) int64 {
	if account.Quota == nil || account.Quota.RemainingRequests == nil {
		return 0
	}
	return *account.Quota.RemainingRequests
}

// Selection is a set of account ids, independent of filter and sort
// state.
type Selection map[domain.AccountID]struct{}

func NewSelection() Selection {
	return make(Selection)
}

func (s Selection) Has(id domain.AccountID) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Toggle(id domain.AccountID) {
	if s.Has(id) {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// ToggleAll selects every currently visible account, or clears the
// selection when all of them are already selected. Accounts outside
// the visible slice are not considered.
func (s Selection) ToggleAll(visible []domain.Account) {
	if len(s) == len(visible) && s.containsAll(visible) {
		for id := range s {
			delete(s, id)
		}
		return
	}

	for id := range s {
		delete(s, id)
	}
	for _, account := range visible {
		s[account.ID] = struct{}{}
	}
}

func (s Selection) containsAll(accounts []domain.Account) bool {
	for _, account := range accounts {
		if !s.Has(account.ID) {
			return false
		}
	}
	return true
}

// IDs returns the selection in stable (lexicographic) order.
func (s Selection) IDs() []domain.AccountID {
	ids := make([]domain.AccountID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
