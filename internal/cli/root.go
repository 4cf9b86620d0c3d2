package cli

import (
	"github.com/spf13/cobra"

	"github.com/dyslexicore/dyslexicore-cli/internal/config"
	"github.com/dyslexicore/dyslexicore-cli/internal/factory"
	"github.com/dyslexicore/dyslexicore-cli/internal/logging"
)

var (
	app    *factory.App
	out    *Output
	output string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dxcore",
		Short: "Companion CLI for the DyslexiCore learning platform",
		Long: `dxcore is the terminal companion for the DyslexiCore learning platform.

It runs the phonics mini-games, the CVC word builder, and the companion chat
locally, talks to the platform backend for accounts and assessment results,
and keeps your login between runs.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.Setup(*cfg)
			if err != nil {
				return err
			}

			app, err = factory.New(*cfg, logger)
			if err != nil {
				return err
			}

			out = NewOutput(output)

			// Restore is fail-open: a bad stored session just means we start
			// logged out
			if err := app.Session.Restore(cmd.Context()); err != nil {
				return err
			}
			app.Backend.SetToken(app.Session.Token())
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format: text, json")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newLessonCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newSupportCmd())
	rootCmd.AddCommand(newDashboardCmd())

	return rootCmd
}
