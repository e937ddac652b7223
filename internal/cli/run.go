package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/spf13/cobra"
	"go.olrik.dev/pdeathsig"
	"go.olrik.dev/pdeathsig/internal/core"
	"golang.org/x/term"
)

func NewRunCommand() *cobra.Command {
	var signalName string
	var setsid bool
	var tty bool

	runCmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command with a parent-death signal installed",
		Long: `Run a command with a parent-death signal installed on the child.

The kernel delivers the signal to the child when the pdsig process exits, so
the child cannot outlive it. The default signal comes from run.signal in the
config file (SIGTERM out of the box).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if signalName == "" {
				signalName = core.Config.GetString("run.signal")
			}
			if !cmd.Flags().Changed("setsid") {
				setsid = core.Config.GetBool("run.setsid")
			}

			sig, err := parseSignalArg(signalName)
			if err != nil {
				return err
			}

			child := exec.Command(args[0], args[1:]...)
			child.Env = os.Environ()

			var opts []pdeathsig.CommandOption
			if setsid {
				opts = append(opts, pdeathsig.WithSetsid())
			}
			if err := pdeathsig.SetCommand(child, sig, opts...); err != nil {
				return err
			}

			slog.Debug("Spawning child",
				"command", args[0],
				"signal", fmt.Sprint(sig),
				"setsid", setsid,
				"tty", tty)

			if tty {
				return runWithTTY(child)
			}
			return runPassthrough(child)
		},
	}
	runCmd.Flags().StringVarP(&signalName, "signal", "s", "", "signal to deliver to the child (name or number)")
	runCmd.Flags().BoolVar(&setsid, "setsid", false, "start the child in a new session")
	runCmd.Flags().BoolVarP(&tty, "tty", "t", false, "allocate a pseudo-terminal for the child")

	return runCmd
}

// runPassthrough runs the child on inherited stdio and mirrors its exit code.
func runPassthrough(child *exec.Cmd) error {
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	// Forward termination signals so interactive use behaves like exec
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	if err := child.Start(); err != nil {
		return fmt.Errorf("unable to start %s: %w", child.Path, err)
	}

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	for {
		select {
		case sig := <-sigChan:
			if child.Process != nil {
				child.Process.Signal(sig)
			}
		case err := <-done:
			return exitLike(err)
		}
	}
}

// runWithTTY runs the child on a fresh pty, proxying stdio and window size.
func runWithTTY(child *exec.Cmd) error {
	ptmx, err := pty.Start(child)
	if err != nil {
		return fmt.Errorf("unable to start %s with pty: %w", child.Path, err)
	}
	defer ptmx.Close()

	// Track window size changes of the real terminal
	winchChan := make(chan os.Signal, 1)
	signal.Notify(winchChan, syscall.SIGWINCH)
	defer signal.Stop(winchChan)
	go func() {
		for range winchChan {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				slog.Debug("Unable to resize pty", "error", err)
			}
		}
	}()
	winchChan <- syscall.SIGWINCH // initial size

	// Raw mode so control characters reach the child's terminal driver
	restoreTerm := func() {}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("unable to enter raw mode: %w", err)
		}
		restoreTerm = func() { term.Restore(int(os.Stdin.Fd()), oldState) }
		defer restoreTerm()
	}

	go func() {
		io.Copy(ptmx, os.Stdin)
	}()
	io.Copy(os.Stdout, ptmx)

	err = child.Wait()
	// exitLike may call os.Exit, which skips the deferred restore
	ptmx.Close()
	restoreTerm()
	return exitLike(err)
}

// exitLike mirrors the child's exit code on the pdsig process itself.
func exitLike(err error) error {
	if err == nil {
		return nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		os.Exit(exitErr.ExitCode())
	}
	return err
}
