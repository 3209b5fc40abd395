package application

import (
	"testing"
	"time"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewFixture() []domain.Account {
	return []domain.Account{
		{
			ID:       "copilot_1",
			Username: "octocat",
			Email:    "octocat@github.com",
			Tags:     []string{"work", "primary"},
			LastUsed: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
			Quota: &domain.Quota{
				UsedRequests:      40,
				RemainingRequests: int64Ptr(260),
			},
		},
		{
			ID:       "copilot_2",
			Username: "hubot",
			Tags:     []string{"work"},
			LastUsed: time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC),
			Quota: &domain.Quota{
				UsedRequests:      120,
				RemainingRequests: int64Ptr(180),
			},
		},
		{
			ID:       "copilot_3",
			Username: "spare",
			Email:    "spare@example.com",
			Tags:     []string{"personal"},
			LastUsed: time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC),
		},
	}
}

func projectedIDs(accounts []domain.Account) []domain.AccountID {
	ids := make([]domain.AccountID, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}
	return ids
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    SortKey
		wantErr bool
	}{
		{raw: "", want: SortLastUsed},
		{raw: "last_used", want: SortLastUsed},
		{raw: " used_desc ", want: SortUsedDesc},
		{raw: "remaining", want: SortRemaining},
		{raw: "alphabetical", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSortKey(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectSorting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sort SortKey
		want []domain.AccountID
	}{
		{name: "last used, most recent first", sort: SortLastUsed, want: []domain.AccountID{"copilot_2", "copilot_1", "copilot_3"}},
		{name: "used ascending, missing quota sorts as zero", sort: SortUsedAsc, want: []domain.AccountID{"copilot_3", "copilot_1", "copilot_2"}},
		{name: "used descending", sort: SortUsedDesc, want: []domain.AccountID{"copilot_2", "copilot_1", "copilot_3"}},
		{name: "remaining descending", sort: SortRemaining, want: []domain.AccountID{"copilot_1", "copilot_2", "copilot_3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(viewFixture(), Query{Sort: tt.sort})
			assert.Equal(t, tt.want, projectedIDs(got))
		})
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	accounts := viewFixture()

	Project(accounts, Query{Sort: SortUsedDesc})

	assert.Equal(t, domain.AccountID("copilot_1"), accounts[0].ID)
	assert.Equal(t, domain.AccountID("copilot_2"), accounts[1].ID)
}

func TestProjectSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search string
		want   []domain.AccountID
	}{
		{name: "username substring", search: "hub", want: []domain.AccountID{"copilot_2"}},
		{name: "case insensitive", search: "OCTO", want: []domain.AccountID{"copilot_1"}},
		{name: "email substring", search: "example.com", want: []domain.AccountID{"copilot_3"}},
		{name: "no match", search: "nobody", want: []domain.AccountID{}},
		{name: "blank search keeps everything", search: "  ", want: []domain.AccountID{"copilot_2", "copilot_1", "copilot_3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(viewFixture(), Query{Search: tt.search})
			assert.Equal(t, tt.want, projectedIDs(got))
		})
	}
}

func TestProjectTagIntersection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tags []string
		want []domain.AccountID
	}{
		{name: "single tag", tags: []string{"work"}, want: []domain.AccountID{"copilot_2", "copilot_1"}},
		{name: "all selected tags required", tags: []string{"work", "primary"}, want: []domain.AccountID{"copilot_1"}},
		{name: "disjoint tags match nothing", tags: []string{"work", "personal"}, want: []domain.AccountID{}},
		{name: "no tags keeps everything", tags: nil, want: []domain.AccountID{"copilot_2", "copilot_1", "copilot_3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(viewFixture(), Query{Tags: tt.tags})
			assert.Equal(t, tt.want, projectedIDs(got))
		})
	}
}

func TestProjectSearchAndTagsCombine(t *testing.T) {
	t.Parallel()

	got := Project(viewFixture(), Query{Search: "octo", Tags: []string{"personal"}})
	assert.Empty(t, got)
}

func TestTagUniverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"personal", "primary", "work"}, TagUniverse(viewFixture()))
	assert.Empty(t, TagUniverse(nil))
}

func TestSelectionToggle(t *testing.T) {
	t.Parallel()

	sel := NewSelection()

	sel.Toggle("copilot_1")
	assert.True(t, sel.Has("copilot_1"))

	sel.Toggle("copilot_1")
	assert.False(t, sel.Has("copilot_1"))
}

func TestSelectionToggleAll(t *testing.T) {
	t.Parallel()

	accounts := viewFixture()
	visible := accounts[:2]
	sel := NewSelection()

	sel.ToggleAll(visible)
	assert.Equal(t, []domain.AccountID{"copilot_1", "copilot_2"}, sel.IDs())

	// All visible selected: the second toggle clears.
	sel.ToggleAll(visible)
	assert.Empty(t, sel.IDs())

	// A partial selection expands to the full visible set.
	sel.Toggle("copilot_1")
	sel.ToggleAll(visible)
	assert.Equal(t, []domain.AccountID{"copilot_1", "copilot_2"}, sel.IDs())
}

func TestSelectionSurvivesFilterChanges(t *testing.T) {
	t.Parallel()

	accounts := viewFixture()
	sel := NewSelection()
	sel.Toggle("copilot_3")

	visible := Project(accounts, Query{Tags: []string{"work"}})
	for _, account := range visible {
		assert.NotEqual(t, domain.AccountID("copilot_3"), account.ID)
	}

	// Filtering out an account does not deselect it.
	assert.True(t, sel.Has("copilot_3"))
}
