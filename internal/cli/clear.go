package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.olrik.dev/pdeathsig"
)

func NewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Clear the parent-death signal",
		Long:    `Clear the parent-death signal of the calling process, equivalent to "set 0"`,
		Aliases: []string{"unset"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pdeathsig.Clear(); err != nil {
				return err
			}
			slog.Info("Parent-death signal cleared")
			return nil
		},
	}
}
