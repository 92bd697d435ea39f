package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mariechen/ticked/internal/cli/formatter"
)

func signupForm(name, email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name),
			huh.NewInput().Title("Email").Placeholder("you@example.com").Value(email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
		),
	).WithTheme(tickedHuhTheme()).WithShowHelp(false)
}

func loginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Placeholder("you@example.com").Value(email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
		),
	).WithTheme(tickedHuhTheme()).WithShowHelp(false)
}

func newSignupCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if (name == "" || email == "" || password == "") && app.interactive() {
				if err := signupForm(&name, &email, &password).Run(); err != nil {
					return err
				}
			}

			user, token, err := app.Auth.Signup(ctx, name, email, password)
			if err != nil {
				return err
			}
			if err := app.Sessions.Save(token); err != nil {
				return err
			}

			fmt.Printf("Welcome, %s!\n", formatter.Bold(user.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if (email == "" || password == "") && app.interactive() {
				if err := loginForm(&email, &password).Run(); err != nil {
					return err
				}
			}

			user, token, err := app.Auth.Login(ctx, email, password)
			if err != nil {
				return err
			}
			if err := app.Sessions.Save(token); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s.\n", formatter.Bold(user.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.currentUser(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.Bold(user.Name), formatter.Dim("<"+user.Email+">"))
			return nil
		},
	}
}
