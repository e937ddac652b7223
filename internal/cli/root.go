package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.olrik.dev/pdeathsig/internal/core"
)

func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose int

	homeDir, _ := os.UserHomeDir()

	rootCmd := &cobra.Command{
		Use:           "pdsig",
		Short:         "pdsig - Parent-death signal control",
		Long:          `pdsig - Inspect and control the Linux parent-death signal of the calling process and its children`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := core.InitializeConfig(cmd); err != nil {
				return err
			}
			setupLogging(core.Config.GetInt("verbose"))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(
		&configPath, "config-path", fmt.Sprintf("%s/%s", homeDir, core.BaseDirName),
		"config path",
	)
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "more output, repeat for even more")

	rootCmd.AddCommand(
		NewGetCommand(),
		NewSetCommand(),
		NewClearCommand(),
		NewStatusCommand(),
		NewRunCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
