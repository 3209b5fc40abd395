package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cockpit",
		Short:         "Copilot account cockpit: manage linked accounts and premium-request quotas",
		Long:          "cockpit keeps a local registry of GitHub Copilot accounts: link them via token or device sign-in, switch the active account, tag and filter them, and track premium-request quota usage from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newLoginCmd(app),
		newQuotaCmd(app),
	)

	return rootCmd
}
