package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.olrik.dev/pdeathsig"
)

func NewGetCommand() *cobra.Command {
	var numeric bool

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current parent-death signal",
		Long:  `Print the parent-death signal of the calling process, or "none" when no signal is configured`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := pdeathsig.Get()
			if err != nil {
				return err
			}
			switch {
			case sig == nil && numeric:
				fmt.Println(0)
			case sig == nil:
				fmt.Println("none")
			case numeric:
				fmt.Println(sig.Int())
			default:
				fmt.Println(sig)
			}
			return nil
		},
	}
	getCmd.Flags().BoolVarP(&numeric, "numeric", "n", false, "print the signal number instead of the name")

	return getCmd
}
