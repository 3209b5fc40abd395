package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Polaris-F/cockpit-tools/internal/application"
	"github.com/Polaris-F/cockpit-tools/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start account login flows",
	}

	cmd.AddCommand(newLoginDeviceCmd(app))

	return cmd
}

func newLoginDeviceCmd(app *app) *cobra.Command {
	var (
		clientID string
		plan     string
		included int64
	)

	cmd := &cobra.Command{
		Use:   "device",
		Short: "Link an account via GitHub device sign-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := application.StartOptions{
				ClientID: clientID,
				Plan:     plan,
			}
			if opts.ClientID == "" {
				opts.ClientID = application.DefaultClientID(cmd.Context(), app.cache)
			}
			if cmd.Flags().Changed("included") {
				opts.MonthlyIncludedRequests = &included
			}

			updates := app.deviceAuth.Subscribe()
			session, err := app.deviceAuth.Start(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "First, copy your one-time code: %s\n", session.UserCode)
			_, _ = fmt.Fprintf(out, "Then authorize this device at: %s\n\n", session.VerificationTarget())

			p := tea.NewProgram(
				newDeviceLoginModel(app.deviceAuth, updates),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
				tea.WithContext(cmd.Context()),
			)

			finalModel, err := p.Run()
			if err != nil {
				app.deviceAuth.Cancel()
				return err
			}

			result, ok := finalModel.(deviceLoginModel)
			if !ok {
				return fmt.Errorf("unexpected final login model type %T", finalModel)
			}

			return reportDeviceLogin(cmd, app, result)
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "GitHub OAuth app client ID (defaults to the last one used)")
	cmd.Flags().StringVar(&plan, "plan", "", "Declared Copilot plan label")
	cmd.Flags().Int64Var(&included, "included", 0, "Monthly included premium requests override")

	return cmd
}

func reportDeviceLogin(cmd *cobra.Command, app *app, result deviceLoginModel) error {
	if result.cancelled {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Sign-in cancelled")
		return nil
	}

	session := result.session
	switch session.Status {
	case domain.DeviceFlowSuccess:
		username := string(session.AccountID)
		for _, account := range app.registry.Accounts() {
			if account.ID == session.AccountID {
				username = account.Username
				break
			}
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Linked account %s\n", username)
		return nil
	case domain.DeviceFlowError:
		return fmt.Errorf("device sign-in failed: %s", session.Message)
	default:
		return fmt.Errorf("device sign-in ended in state %q", session.Status)
	}
}

type sessionChangedMsg struct{}

// deviceLoginModel waits for the background device-authorization flow
// to reach a terminal state, showing a spinner meanwhile. Esc or
// Ctrl+C cancels the flow.
type deviceLoginModel struct {
	deviceAuth *application.DeviceAuth
	updates    <-chan struct{}
	spinner    spinner.Model
	session    domain.DeviceSession
	cancelled  bool
}

func newDeviceLoginModel(deviceAuth *application.DeviceAuth, updates <-chan struct{}) deviceLoginModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return deviceLoginModel{
		deviceAuth: deviceAuth,
		updates:    updates,
		spinner:    s,
		session:    deviceAuth.Session(),
	}
}

func (m deviceLoginModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.updates
		return sessionChangedMsg{}
	}
}

func (m deviceLoginModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForChange())
}

func (m deviceLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sessionChangedMsg:
		m.session = m.deviceAuth.Session()
		if m.session.Status.Terminal() {
			return m, tea.Quit
		}
		return m, m.waitForChange()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.deviceAuth.Cancel()
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m deviceLoginModel) View() string {
	if m.cancelled || m.session.Status.Terminal() {
		return ""
	}

	return fmt.Sprintf("%s Waiting for authorization... (esc to cancel)", m.spinner.View())
}
