package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.olrik.dev/pdeathsig"
)

func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <signal>",
		Short: "Set the parent-death signal",
		Long: `Set the parent-death signal of the calling process.

The signal may be given by name ("SIGTERM", "term") or number ("15").
Passing 0 clears the setting, same as the clear command.

Note that the setting applies to the pdsig process itself, not to the shell
that invoked it; this command mostly exists for inspection and testing. To
protect a long running child, use "pdsig run".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := parseSignalArg(args[0])
			if err != nil {
				return err
			}
			if err := pdeathsig.Set(sig); err != nil {
				return err
			}
			if sig == nil {
				slog.Info("Parent-death signal cleared")
				return nil
			}
			slog.Info(fmt.Sprintf("Parent-death signal set to %s", sig))
			return nil
		},
	}
}
