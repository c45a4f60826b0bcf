package cli

import (
	"Recipe-Share/domain"
	"github.com/spf13/cobra"
	"strings"
)

// prompt prints label and reads one line of input.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) passwordOrPrompt(password string) (string, error) {
	if password != "" {
		return password, nil
	}
	return a.prompt("Password")
}

func newRegisterCommand(app *App) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "register <username> <email>",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := app.passwordOrPrompt(password)
			if err != nil {
				return err
			}
			req := domain.RegisterRequest{Username: args[0], Email: args[1], Password: pw}
			if err := app.validator.Struct(req); err != nil {
				return formError(err)
			}

			res, err := app.Client.CreateAccount(ctx(cmd), req.Username, req.Email, req.Password)
			if err != nil {
				return explain(err)
			}
			if err := app.Store.SaveSession(ctx(cmd), res); err != nil {
				return err
			}
			app.printf("Welcome, %s!\n", res.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when empty)")
	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := app.passwordOrPrompt(password)
			if err != nil {
				return err
			}
			req := domain.LoginRequest{Email: args[0], Password: pw}
			if err := app.validator.Struct(req); err != nil {
				return formError(err)
			}

			res, err := app.Client.Authenticate(ctx(cmd), req.Email, req.Password)
			if err != nil {
				return explain(err)
			}
			if err := app.Store.SaveSession(ctx(cmd), res); err != nil {
				return err
			}
			app.printf("Signed in as %s\n", res.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when empty)")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Client.SetSession(nil)
			if err := app.Store.ClearSession(ctx(cmd)); err != nil {
				return err
			}
			app.printf("Signed out\n")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			viewer, err := app.viewer()
			if err != nil {
				return err
			}
			app.printf("%s\n", viewer)
			return nil
		},
	}
}
