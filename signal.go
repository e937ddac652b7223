//go:build linux

// Package pdeathsig gets and sets the parent-death signal of the calling
// process, the signal the kernel delivers when the parent process exits.
// See prctl(2), PR_SET_PDEATHSIG and PR_GET_PDEATHSIG.
package pdeathsig

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"syscall"
)

// Signal is one POSIX signal identity. Signals with the same number are the
// same instance for numbers in the named table, so canonical instances can be
// compared by pointer.
type Signal struct {
	num  syscall.Signal
	name string
}

// Named signal numbers, re-exported so callers don't need to import syscall.
const (
	SIGHUP    = syscall.SIGHUP
	SIGINT    = syscall.SIGINT
	SIGQUIT   = syscall.SIGQUIT
	SIGILL    = syscall.SIGILL
	SIGTRAP   = syscall.SIGTRAP
	SIGABRT   = syscall.SIGABRT
	SIGBUS    = syscall.SIGBUS
	SIGFPE    = syscall.SIGFPE
	SIGKILL   = syscall.SIGKILL
	SIGUSR1   = syscall.SIGUSR1
	SIGSEGV   = syscall.SIGSEGV
	SIGUSR2   = syscall.SIGUSR2
	SIGPIPE   = syscall.SIGPIPE
	SIGALRM   = syscall.SIGALRM
	SIGTERM   = syscall.SIGTERM
	SIGSTKFLT = syscall.SIGSTKFLT
	SIGCHLD   = syscall.SIGCHLD
	SIGCONT   = syscall.SIGCONT
	SIGSTOP   = syscall.SIGSTOP
	SIGTSTP   = syscall.SIGTSTP
	SIGTTIN   = syscall.SIGTTIN
	SIGTTOU   = syscall.SIGTTOU
	SIGURG    = syscall.SIGURG
	SIGXCPU   = syscall.SIGXCPU
	SIGXFSZ   = syscall.SIGXFSZ
	SIGVTALRM = syscall.SIGVTALRM
	SIGPROF   = syscall.SIGPROF
	SIGWINCH  = syscall.SIGWINCH
	SIGIO     = syscall.SIGIO
	SIGPWR    = syscall.SIGPWR
	SIGSYS    = syscall.SIGSYS
)

const (
	// numNamed is the size of the canonical table: slot 0 is reserved for
	// "no signal", slots 1..31 hold the named POSIX signals.
	numNamed = 32

	// maxSignal is the highest signal number the Linux kernel accepts
	// (_NSIG - 1). Numbers 32..64 are the realtime range: kernel-valid but
	// without a name in the table.
	maxSignal = 64
)

// signalNames maps each named signal number to its canonical name.
var signalNames = [numNamed]string{
	syscall.SIGHUP:    "SIGHUP",
	syscall.SIGINT:    "SIGINT",
	syscall.SIGQUIT:   "SIGQUIT",
	syscall.SIGILL:    "SIGILL",
	syscall.SIGTRAP:   "SIGTRAP",
	syscall.SIGABRT:   "SIGABRT",
	syscall.SIGBUS:    "SIGBUS",
	syscall.SIGFPE:    "SIGFPE",
	syscall.SIGKILL:   "SIGKILL",
	syscall.SIGUSR1:   "SIGUSR1",
	syscall.SIGSEGV:   "SIGSEGV",
	syscall.SIGUSR2:   "SIGUSR2",
	syscall.SIGPIPE:   "SIGPIPE",
	syscall.SIGALRM:   "SIGALRM",
	syscall.SIGTERM:   "SIGTERM",
	syscall.SIGSTKFLT: "SIGSTKFLT",
	syscall.SIGCHLD:   "SIGCHLD",
	syscall.SIGCONT:   "SIGCONT",
	syscall.SIGSTOP:   "SIGSTOP",
	syscall.SIGTSTP:   "SIGTSTP",
	syscall.SIGTTIN:   "SIGTTIN",
	syscall.SIGTTOU:   "SIGTTOU",
	syscall.SIGURG:    "SIGURG",
	syscall.SIGXCPU:   "SIGXCPU",
	syscall.SIGXFSZ:   "SIGXFSZ",
	syscall.SIGVTALRM: "SIGVTALRM",
	syscall.SIGPROF:   "SIGPROF",
	syscall.SIGWINCH:  "SIGWINCH",
	syscall.SIGIO:     "SIGIO",
	syscall.SIGPWR:    "SIGPWR",
	syscall.SIGSYS:    "SIGSYS",
}

// catalog builds the canonical instances exactly once. Concurrent first
// lookups all observe the same completed table, or the same build error if
// the table cannot be built. A build error is sticky and never retried.
var catalog = sync.OnceValues(buildCatalog)

func buildCatalog() ([]*Signal, error) {
	table := make([]*Signal, numNamed)
	for n := 1; n < numNamed; n++ {
		name := signalNames[n]
		if name == "" {
			return nil, fmt.Errorf("signal table has no name for number %d", n)
		}
		table[n] = &Signal{num: syscall.Signal(n), name: name}
	}
	return table, nil
}

// InvalidSignalError reports a number the platform does not accept as a
// signal number.
type InvalidSignalError struct {
	Num int
}

func (e *InvalidSignalError) Error() string {
	return fmt.Sprintf("illegal signal number %d", e.Num)
}

// Lookup returns the Signal for a signal number. For the named range 1..31
// the result is the canonical instance, identical across all calls. For the
// realtime range 32..64 the result is a fresh unnamed instance. Anything
// else, including 0, fails with *InvalidSignalError.
func Lookup(num syscall.Signal) (*Signal, error) {
	if num <= 0 || num > maxSignal {
		return nil, &InvalidSignalError{Num: int(num)}
	}
	table, err := catalog()
	if err != nil {
		return nil, err
	}
	if int(num) < len(table) {
		return table[num], nil
	}
	return &Signal{num: num}, nil
}

// Named returns the canonical Signal for a name like "SIGTERM". The SIG
// prefix is optional and matching is case-insensitive.
func Named(name string) (*Signal, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(want, "SIG") {
		want = "SIG" + want
	}
	table, err := catalog()
	if err != nil {
		return nil, err
	}
	for _, sig := range table[1:] {
		if sig.name == want {
			return sig, nil
		}
	}
	return nil, fmt.Errorf("unknown signal name %q", name)
}

// Name returns the canonical uppercase name, or "" for an unnamed signal.
func (s *Signal) Name() string {
	return s.name
}

// Num returns the signal number.
func (s *Signal) Num() syscall.Signal {
	return s.num
}

// Int returns the signal number as an int.
func (s *Signal) Int() int {
	return int(s.num)
}

// String returns the canonical name, or "signal N" for an unnamed signal.
func (s *Signal) String() string {
	if s.name != "" {
		return s.name
	}
	return "signal " + strconv.Itoa(int(s.num))
}

// GoString returns a constant-style form, e.g. "pdeathsig.SIGTERM".
func (s *Signal) GoString() string {
	if s.name != "" {
		return "pdeathsig." + s.name
	}
	return fmt.Sprintf("pdeathsig.Signal(%d)", int(s.num))
}

// Signal makes *Signal satisfy os.Signal.
func (s *Signal) Signal() {}
