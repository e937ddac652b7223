package cli

import (
	"os"
	"strconv"
	"syscall"

	"go.olrik.dev/pdeathsig"
)

// parseSignalArg turns a CLI argument into a signal. Accepts a number
// ("15", "0"), a canonical name ("SIGTERM") or a short name in any case
// ("term"). The literal 0 means "no signal" and parses to nil.
func parseSignalArg(arg string) (os.Signal, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n == 0 {
			return nil, nil
		}
		return pdeathsig.Lookup(syscall.Signal(n))
	}
	return pdeathsig.Named(arg)
}
