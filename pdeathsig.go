//go:build linux

package pdeathsig

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Get returns the parent-death signal of the calling process, or nil when no
// signal is configured.
func Get() (*Signal, error) {
	var num int32
	err := unix.Prctl(unix.PR_GET_PDEATHSIG, uintptr(unsafe.Pointer(&num)), 0, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("prctl(PR_GET_PDEATHSIG): %w", err)
	}
	if num == 0 {
		return nil, nil
	}
	return Lookup(syscall.Signal(num))
}

// Set installs sig as the parent-death signal of the calling process. A nil
// sig, a nil *Signal or a zero-valued raw signal clears the setting. Raw
// syscall.Signal values are validated before the kernel is called; a number
// the platform does not accept fails with *InvalidSignalError.
//
// The setting is cleared by the kernel on fork and on exec of setuid or
// setgid binaries; it is per-process state observed when this process's
// parent exits.
func Set(sig os.Signal) error {
	num, err := coerce(sig)
	if err != nil {
		return err
	}
	err = unix.Prctl(unix.PR_SET_PDEATHSIG, uintptr(num), 0, 0, 0)
	if err != nil {
		return fmt.Errorf("prctl(PR_SET_PDEATHSIG): %w", err)
	}
	return nil
}

// Clear removes the parent-death signal of the calling process. Equivalent
// to Set(nil).
func Clear() error {
	return Set(nil)
}

// coerce maps the accepted os.Signal shapes onto a validated signal number,
// with 0 meaning "no signal".
func coerce(sig os.Signal) (syscall.Signal, error) {
	switch s := sig.(type) {
	case nil:
		return 0, nil
	case *Signal:
		if s == nil {
			return 0, nil
		}
		return s.num, nil
	case syscall.Signal:
		if s == 0 {
			return 0, nil
		}
		if _, err := Lookup(s); err != nil {
			return 0, err
		}
		return s, nil
	default:
		return 0, fmt.Errorf("unsupported signal type %T", sig)
	}
}
