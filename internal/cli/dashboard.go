package cli

import (
	"github.com/spf13/cobra"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your current module and assessment history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Session.IsAuthenticated() {
				return model.ErrNotAuthenticated
			}

			view, err := app.Dashboard.Load(cmd.Context())
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(view)
			return nil
		},
	}
}
