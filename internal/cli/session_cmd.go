package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// errInvalidCredentials is returned by the login command when the store
// rejects the pair.
var errInvalidCredentials = errors.New("email ou senha incorretos")

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for later runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEmail(email); err != nil {
				return err
			}
			if err := validatePassword(password); err != nil {
				return err
			}

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Entrando...")
			}
			ok := app.Auth.Login(context.Background(), email, password)
			stop()

			if !ok {
				return errInvalidCredentials
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLoginResult(true, app.Auth.Session()))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Sessão encerrada."))
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(app.Auth.Session()))
			return nil
		},
	}
}
