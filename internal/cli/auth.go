package cli

import (
	"github.com/spf13/cobra"

	"github.com/dyslexicore/dyslexicore-cli/internal/backend"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the learning platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tok, err := app.Backend.Login(ctx, email, password)
			if err != nil {
				out.PrintError(err)
				return err
			}
			app.Backend.SetToken(tok.AccessToken)

			// Fetch the profile so the stored session is self-contained
			user, err := app.Backend.Me(ctx)
			if err != nil {
				out.PrintError(err)
				return err
			}

			if err := app.Session.Login(ctx, tok.AccessToken, *user); err != nil {
				return err
			}

			out.PrintMessage("Welcome back, " + user.DisplayName() + "!")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd() *cobra.Command {
	var email, password, firstName string
	var age int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a learner account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Backend.Register(cmd.Context(), backend.RegisterRequest{
				Email:     email,
				Password:  password,
				FirstName: firstName,
				Age:       age,
			})
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.PrintMessage("Account created! Log in with 'dxcore login'.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&firstName, "name", "", "Learner's first name (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Learner's age")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			out.PrintMessage("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in learner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Session.IsAuthenticated() {
				return model.ErrNotAuthenticated
			}
			out.Print(app.Session.User())
			return nil
		},
	}
}
