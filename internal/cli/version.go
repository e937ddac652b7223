package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.olrik.dev/pdeathsig/internal/core"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stderr, "pdsig version: %s\n", core.FormatVersion(core.Version))
		},
	}
}
