package accounts

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now       time.Time
	CurrentID domain.AccountID
}

// frameModel carries one prerendered frame; the program quits on its
// first tick and leaves the frame as the final view.
type frameModel struct {
	frame string
}

func (m frameModel) Init() tea.Cmd                         { return tea.Quit }
func (m frameModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m frameModel) View() string                          { return m.frame }

// Render draws the account list once and returns the frame.
func Render(accounts []domain.Account, opts RenderOptions) (string, error) {
	m := frameModel{frame: renderView(accounts, opts, newStyles())}

	final, err := tea.NewProgram(m, tea.WithInput(nil), tea.WithOutput(io.Discard)).Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(frameModel)
	if !ok {
		return "", fmt.Errorf("unexpected final render model type %T", final)
	}
	return rendered.View(), nil
}

func renderView(accounts []domain.Account, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Copilot Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No linked accounts. Run `cockpit login device` to add one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range accounts {
		lines = append(lines, s.section.Render(renderAccount(account, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(account domain.Account, opts RenderOptions, s styles) string {
	parts := []string{
		accountTitle(account, account.ID == opts.CurrentID, s),
		quotaLine(account, s),
	}

	if len(account.Tags) > 0 {
		parts = append(parts, s.tag.Render("tags: "+strings.Join(account.Tags, ", ")))
	}
	if !account.LastUsed.IsZero() {
		parts = append(parts, s.detail.Render("last used: "+formatLastUsed(account.LastUsed, opts.Now)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountTitle(account domain.Account, isCurrent bool, s styles) string {
	label := account.Username
	if account.Email != "" {
		label += " <" + account.Email + ">"
	}
	if plan := planLabel(account); plan != "" {
		label += " (" + plan + ")"
	}

	if isCurrent {
		return s.current.Render("* " + label)
	}
	return s.account.Render("  " + label)
}

// planLabel prefers the plan the provider reported over the one the
// user declared when linking.
func planLabel(account domain.Account) string {
	if account.Quota != nil && account.Quota.Plan != "" {
		return account.Quota.Plan
	}
	return account.Plan
}

func quotaLine(account domain.Account, s styles) string {
	quota := account.Quota
	if quota == nil {
		return s.empty.Render("  quota: n/a")
	}

	key := s.quotaKey.Render("  quota:")

	percent, bounded := quota.UsedPercent()
	if !bounded {
		// No ceiling to measure against, show raw counts only.
		meta := s.detail.Render(fmt.Sprintf("%d used", quota.UsedRequests))
		return lipgloss.JoinHorizontal(lipgloss.Top, key, " ", meta, " ", s.warning.Render("(no allowance set)"))
	}

	bar := renderProgressBar(float64(percent), 24, s)
	included := int64(0)
	if quota.IncludedRequests != nil {
		included = *quota.IncludedRequests
	}
	meta := s.detail.Render(fmt.Sprintf("%d/%d used (%d%%)", quota.UsedRequests, included, percent))

	line := lipgloss.JoinHorizontal(lipgloss.Top, key, " ", bar, " ", meta)
	if quota.ResetDate != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", s.header.Render("resets "+quota.ResetDate))
	}
	return line
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := clampPercent(usedPercent)
	filled := int(math.Round(float64(width) * used / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatLastUsed(lastUsed, now time.Time) string {
	if now.IsZero() {
		return lastUsed.Format(time.RFC3339)
	}

	elapsed := now.Sub(lastUsed)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		minutes := int(elapsed.Minutes())
		return fmt.Sprintf("%dm ago", minutes)
	case elapsed < 24*time.Hour:
		hours := int(elapsed.Hours())
		return fmt.Sprintf("%dh ago", hours)
	default:
		days := int(elapsed.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}
