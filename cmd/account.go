package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	accountsrender "github.com/Polaris-F/cockpit-tools/internal/adapters/render/accounts"
	"github.com/Polaris-F/cockpit-tools/internal/application"
	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage linked Copilot accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountAddCmd(app),
		newAccountSwitchCmd(app),
		newAccountRemoveCmd(app),
		newAccountTagsCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var (
		search string
		tags   []string
		sortBy string
		asJSON bool
		cached bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List linked accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sortKey, err := application.ParseSortKey(sortBy)
			if err != nil {
				return err
			}

			if cached {
				app.registry.LoadCache(cmd.Context())
			} else if err := refreshForList(cmd.Context(), app); err != nil {
				// The registry was seeded from the snapshot cache, so
				// the last known state stays on screen.
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: account store unavailable, showing last known state: %v\n", err)
			}

			visible := application.Project(app.registry.Accounts(), application.Query{
				Search: search,
				Tags:   tags,
				Sort:   sortKey,
			})

			var currentID domain.AccountID
			if current := app.registry.Current(); current != nil {
				currentID = current.ID
			}

			if asJSON {
				return writeAccountsJSON(cmd, visible, currentID)
			}

			output, err := app.renderAccounts(visible, accountsrender.RenderOptions{
				Now:       app.now(),
				CurrentID: currentID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by username or email substring")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Filter by tag (repeatable; all must match)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: last_used, used_asc, used_desc, remaining")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&cached, "cached", false, "Read the last snapshot instead of the account store")

	return cmd
}

func refreshForList(ctx context.Context, app *app) error {
	if err := app.registry.Refresh(ctx); err != nil {
		return err
	}
	return app.registry.RefreshCurrent(ctx)
}

// accountListItem is the JSON shape for `account list --json`. The
// token deliberately has no field here.
type accountListItem struct {
	ID        domain.AccountID `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email,omitempty"`
	Plan      string           `json:"plan,omitempty"`
	Tags      []string         `json:"tags,omitempty"`
	Current   bool             `json:"current"`
	LastUsed  string           `json:"last_used,omitempty"`
	Used      *int64           `json:"used_requests,omitempty"`
	Included  *int64           `json:"included_requests,omitempty"`
	Remaining *int64           `json:"remaining_requests,omitempty"`
	ResetDate string           `json:"quota_reset_date,omitempty"`
}

func writeAccountsJSON(cmd *cobra.Command, accounts []domain.Account, currentID domain.AccountID) error {
	items := make([]accountListItem, 0, len(accounts))
	for _, account := range accounts {
		item := accountListItem{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
			Plan:     account.Plan,
			Tags:     account.Tags,
			Current:  account.ID == currentID,
		}
		if !account.LastUsed.IsZero() {
			item.LastUsed = account.LastUsed.Format("2006-01-02T15:04:05Z07:00")
		}
		if quota := account.Quota; quota != nil {
			used := quota.UsedRequests
			item.Used = &used
			item.Included = quota.IncludedRequests
			item.Remaining = quota.RemainingRequests
			item.ResetDate = quota.ResetDate
			if quota.Plan != "" {
				item.Plan = quota.Plan
			}
		}
		items = append(items, item)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

func newAccountAddCmd(app *app) *cobra.Command {
	var (
		plan     string
		included int64
	)

	cmd := &cobra.Command{
		Use:   "add <token>",
		Short: "Link an account by personal access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var includedOverride *int64
			if cmd.Flags().Changed("included") {
				includedOverride = &included
			}

			account, err := app.registry.Add(cmd.Context(), args[0], includedOverride, plan)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Linked account %s (%s)\n", account.Username, account.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Declared Copilot plan label")
	cmd.Flags().Int64Var(&included, "included", 0, "Monthly included premium requests override")

	return cmd
}

func newAccountSwitchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id|username>",
		Short: "Make an account the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			switched, err := app.registry.Switch(cmd.Context(), account.ID)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Current account is now %s\n", switched.Username)
			return nil
		},
	}
}

func newAccountRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id|username>...",
		Aliases: []string{"rm"},
		Short:   "Remove linked accounts",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]domain.AccountID, 0, len(args))
			for _, ref := range args {
				account, err := resolveAccount(cmd.Context(), app, ref)
				if err != nil {
					return err
				}
				ids = append(ids, account.ID)
			}

			if err := app.registry.DeleteMany(cmd.Context(), ids); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d account(s)\n", len(ids))
			return nil
		},
	}
}

func newAccountTagsCmd(app *app) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "tags <id|username> [tag]...",
		Short: "Replace an account's tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			tags := args[1:]
			if clear {
				if len(tags) > 0 {
					return fmt.Errorf("--clear does not take tag arguments")
				}
				tags = nil
			}

			updated, err := app.registry.UpdateTags(cmd.Context(), account.ID, tags)
			if err != nil {
				return err
			}

			if len(updated.Tags) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared tags on %s\n", updated.Username)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tags on %s: %s\n", updated.Username, strings.Join(updated.Tags, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove every tag from the account")

	return cmd
}

// resolveAccount accepts either the opaque account id or a username
// (matched case-insensitively).
func resolveAccount(ctx context.Context, app *app, ref string) (domain.Account, error) {
	accounts, err := app.gateway.ListAccounts(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	for _, account := range accounts {
		if string(account.ID) == ref || strings.EqualFold(account.Username, ref) {
			return account, nil
		}
	}

	return domain.Account{}, fmt.Errorf("account %q: %w", ref, domain.ErrAccountNotFound)
}
