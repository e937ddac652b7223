package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"
	"go.olrik.dev/pdeathsig"
)

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show parent-death signal and parent process details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := pdeathsig.Get()
			if err != nil {
				return err
			}
			if sig == nil {
				fmt.Println("Parent-death signal: none")
			} else {
				fmt.Printf("Parent-death signal: %s (%d)\n", sig, sig.Int())
			}

			ppid := os.Getppid()
			fmt.Printf("Parent pid:          %d\n", ppid)

			parent, err := process.NewProcess(int32(ppid))
			if err != nil {
				slog.Debug("Unable to inspect parent process", "ppid", ppid, "error", err)
				return nil
			}
			if name, err := parent.Name(); err == nil {
				fmt.Printf("Parent name:         %s\n", name)
			}
			if created, err := parent.CreateTime(); err == nil {
				started := time.UnixMilli(created)
				fmt.Printf("Parent started:      %s\n", started.Format(time.DateTime))
			}

			return nil
		},
	}
}
