package cmd

import (
	"context"
	"errors"
	"fmt"

	accountsrender "github.com/Polaris-F/cockpit-tools/internal/adapters/render/accounts"
	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/spf13/cobra"
)

func newQuotaCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Inspect and refresh premium-request quotas",
	}

	cmd.AddCommand(newQuotaRefreshCmd(app))

	return cmd
}

func newQuotaRefreshCmd(app *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "refresh [id|username]",
		Short: "Fetch fresh quota snapshots from the provider",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) > 0 {
					return fmt.Errorf("--all does not take an account argument")
				}
				return runQuotaRefreshAll(cmd, app)
			}

			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			return runQuotaRefreshOne(cmd, app, ref)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Refresh every linked account")

	return cmd
}

func runQuotaRefreshOne(cmd *cobra.Command, app *app, ref string) error {
	account, err := resolveQuotaTarget(cmd.Context(), app, ref)
	if err != nil {
		return err
	}

	var started bool
	label := fmt.Sprintf("Refreshing quota for %s...", account.Username)
	err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		var refreshErr error
		started, refreshErr = app.quotaSync.Refresh(ctx, account.ID)
		return refreshErr
	})
	if err != nil {
		return describeQuotaError(err)
	}
	if !started {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "A refresh for %s is already running, skipped\n", account.Username)
		return nil
	}

	refreshed := app.registry.Accounts()
	for _, candidate := range refreshed {
		if candidate.ID == account.ID {
			account = candidate
			break
		}
	}

	var currentID domain.AccountID
	if current := app.registry.Current(); current != nil {
		currentID = current.ID
	}

	output, err := app.renderAccounts([]domain.Account{account}, accountsrender.RenderOptions{
		Now:       app.now(),
		CurrentID: currentID,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func runQuotaRefreshAll(cmd *cobra.Command, app *app) error {
	var (
		count   int
		started bool
	)
	err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Refreshing quotas...", func(ctx context.Context) error {
		var refreshErr error
		count, started, refreshErr = app.quotaSync.RefreshAll(ctx)
		return refreshErr
	})
	if err != nil {
		return describeQuotaError(err)
	}
	if !started {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "A full refresh is already running, skipped")
		return nil
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Refreshed %d account(s)\n", count)
	return nil
}

// describeQuotaError swaps the raw permission sentinel for something
// the user can act on.
func describeQuotaError(err error) error {
	if errors.Is(err, domain.ErrQuotaPermission) {
		return errors.New("this token cannot read Copilot usage: create a fine-grained personal access token with the \"Copilot Plan\" read-only permission and link the account again")
	}
	return err
}

// resolveQuotaTarget falls back to the current account when no
// reference is given.
func resolveQuotaTarget(ctx context.Context, app *app, ref string) (domain.Account, error) {
	if ref != "" {
		return resolveAccount(ctx, app, ref)
	}

	current, err := app.gateway.CurrentAccount(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	if current == nil {
		return domain.Account{}, fmt.Errorf("no current account: %w", domain.ErrAccountNotFound)
	}
	return *current, nil
}
