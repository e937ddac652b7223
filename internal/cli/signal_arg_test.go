package cli

import (
	"errors"
	"syscall"
	"testing"

	"go.olrik.dev/pdeathsig"
)

func TestParseSignalArg(t *testing.T) {
	tests := []struct {
		arg  string
		want syscall.Signal
	}{
		{"15", syscall.SIGTERM},
		{"SIGTERM", syscall.SIGTERM},
		{"term", syscall.SIGTERM},
		{"KILL", syscall.SIGKILL},
		{"1", syscall.SIGHUP},
		{"34", syscall.Signal(34)},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			sig, err := parseSignalArg(tt.arg)
			if err != nil {
				t.Fatalf("parseSignalArg(%q) failed: %v", tt.arg, err)
			}
			got, ok := sig.(*pdeathsig.Signal)
			if !ok {
				t.Fatalf("parseSignalArg(%q) = %T, want *pdeathsig.Signal", tt.arg, sig)
			}
			if got.Num() != tt.want {
				t.Errorf("parseSignalArg(%q).Num() = %d, want %d", tt.arg, got.Num(), tt.want)
			}
		})
	}
}

func TestParseSignalArgZero(t *testing.T) {
	sig, err := parseSignalArg("0")
	if err != nil {
		t.Fatalf("parseSignalArg(\"0\") failed: %v", err)
	}
	if sig != nil {
		t.Errorf("parseSignalArg(\"0\") = %v, want nil", sig)
	}
}

func TestParseSignalArgInvalid(t *testing.T) {
	t.Run("out of range number", func(t *testing.T) {
		_, err := parseSignalArg("9999")
		var inv *pdeathsig.InvalidSignalError
		if !errors.As(err, &inv) {
			t.Fatalf("error = %v, want *InvalidSignalError", err)
		}
		if inv.Num != 9999 {
			t.Errorf("error names number %d, want 9999", inv.Num)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, err := parseSignalArg("SIGNOPE"); err == nil {
			t.Error("parseSignalArg(\"SIGNOPE\") succeeded, want error")
		}
	})

	t.Run("negative number", func(t *testing.T) {
		if _, err := parseSignalArg("-9"); err == nil {
			t.Error("parseSignalArg(\"-9\") succeeded, want error")
		}
	})
}
