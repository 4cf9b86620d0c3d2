package cli

import (
	"github.com/spf13/cobra"

	"github.com/dyslexicore/dyslexicore-cli/internal/support"
)

func newSupportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support",
		Short: "Parent support directory",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all support resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			out.Print(support.List())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <slug>",
		Short: "Read one support resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := support.Lookup(args[0])
			if err != nil {
				return err
			}
			out.Print(resource)
			return nil
		},
	})

	return cmd
}
