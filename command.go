//go:build linux

package pdeathsig

import (
	"os"
	"os/exec"
	"syscall"
)

// CommandOption adjusts how a child process is spawned by SetCommand.
type CommandOption func(*syscall.SysProcAttr)

// WithSetsid starts the child in a new session, detaching it from the
// controlling terminal. Note that after setsid the child is no longer in the
// parent's session, but the parent-death signal still fires when the direct
// parent exits.
func WithSetsid() CommandOption {
	return func(attr *syscall.SysProcAttr) {
		attr.Setsid = true
	}
}

// SetCommand arranges for cmd's child process to receive sig when the
// calling process exits. sig is validated exactly as Set validates it; nil
// or zero leaves no parent-death signal installed. The kernel applies the
// setting atomically at fork time, so there is no window where the child
// runs unprotected.
//
// SetCommand must be called before cmd is started.
func SetCommand(cmd *exec.Cmd, sig os.Signal, opts ...CommandOption) error {
	num, err := coerce(sig)
	if err != nil {
		return err
	}
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Pdeathsig = num
	for _, opt := range opts {
		opt(cmd.SysProcAttr)
	}
	return nil
}
