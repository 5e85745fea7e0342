package asvsim

import (
	"errors"
	"strings"
	"testing"
)

func TestSimErrorIsMatchesKindOnly(t *testing.T) {
	err := invalidParameter("NewRegularWave", "amplitude must be >= 0")
	if !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected errors.Is to match on ErrInvalidParameterErr")
	}
	if errors.Is(err, ErrOutOfRangeErr) {
		t.Fatal("errors.Is should not match a different kind")
	}
}

func TestSimErrorMessageContainsOpAndMsg(t *testing.T) {
	err := outOfRange("SpectrumCell", "direction index 9 out of range")
	msg := err.Error()
	if !strings.Contains(msg, "SpectrumCell") || !strings.Contains(msg, "direction index 9 out of range") {
		t.Fatalf("error message %q should contain both Op and Msg", msg)
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		ErrInvalidParameter: "InvalidParameter",
		ErrInvalidState:     "InvalidState",
		ErrOutOfRange:       "OutOfRange",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("ErrorKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
