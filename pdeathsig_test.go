//go:build linux

package pdeathsig

import (
	"errors"
	"syscall"
	"testing"
)

func TestSetGetRoundTrip(t *testing.T) {
	t.Cleanup(func() {
		if err := Clear(); err != nil {
			t.Errorf("Clear() failed during cleanup: %v", err)
		}
	})

	term, err := Lookup(SIGTERM)
	if err != nil {
		t.Fatalf("Lookup(SIGTERM) failed: %v", err)
	}
	if err := Set(term); err != nil {
		t.Fatalf("Set(SIGTERM) failed: %v", err)
	}

	got, err := Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get() = nil after Set(SIGTERM)")
	}
	if got.Int() != 15 || got.Name() != "SIGTERM" {
		t.Errorf("Get() = %v (number %d), want SIGTERM (15)", got, got.Int())
	}
	if got != term {
		t.Errorf("Get() returned a non-canonical instance %p, want %p", got, term)
	}
}

func TestSetRawNumber(t *testing.T) {
	t.Cleanup(func() { Clear() })

	if err := Set(syscall.Signal(1)); err != nil {
		t.Fatalf("Set(1) failed: %v", err)
	}
	got, err := Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got == nil || got.Name() != "SIGHUP" {
		t.Errorf("Get() = %v, want SIGHUP", got)
	}
}

func TestClearIdempotent(t *testing.T) {
	if err := Set(nil); err != nil {
		t.Fatalf("Set(nil) failed: %v", err)
	}
	if err := Set(nil); err != nil {
		t.Fatalf("second Set(nil) failed: %v", err)
	}
	got, err := Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %v after clearing, want nil", got)
	}
}

func TestSetZeroClears(t *testing.T) {
	if err := Set(SIGHUP); err != nil {
		t.Fatalf("Set(SIGHUP) failed: %v", err)
	}
	if err := Set(syscall.Signal(0)); err != nil {
		t.Fatalf("Set(0) failed: %v", err)
	}
	got, err := Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %v after Set(0), want nil", got)
	}
}

func TestSetInvalid(t *testing.T) {
	tests := []struct {
		name string
		num  int
	}{
		{"too large", 9999},
		{"negative", -3},
		{"just past NSIG", 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set(syscall.Signal(tt.num))
			var inv *InvalidSignalError
			if !errors.As(err, &inv) {
				t.Fatalf("Set(%d) error = %v, want *InvalidSignalError", tt.num, err)
			}
			if inv.Num != tt.num {
				t.Errorf("error names number %d, want %d", inv.Num, tt.num)
			}
		})
	}
}

type fakeSignal struct{}

func (fakeSignal) Signal()        {}
func (fakeSignal) String() string { return "fake" }

func TestSetUnsupportedType(t *testing.T) {
	if err := Set(fakeSignal{}); err == nil {
		t.Error("Set(fakeSignal{}) succeeded, want error")
	}
}

func TestSetNilTypedPointer(t *testing.T) {
	// A typed nil *Signal inside the interface clears, same as untyped nil.
	if err := Set(SIGHUP); err != nil {
		t.Fatalf("Set(SIGHUP) failed: %v", err)
	}
	var sig *Signal
	if err := Set(sig); err != nil {
		t.Fatalf("Set((*Signal)(nil)) failed: %v", err)
	}
	got, err := Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %v, want nil", got)
	}
}
