package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/ayoisaiah/tempus/internal/apperr"
)

var errSample = &apperr.Error{Message: "%s duration must be positive"}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errSample.Fmt("work")

	if err.Error() != "work duration must be positive" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	if !errors.Is(err, errSample) {
		t.Error("expected formatted error to match its sentinel")
	}
}

func TestWrap(t *testing.T) {
	err := (&apperr.Error{Message: "reading state"}).Wrap(io.ErrUnexpectedEOF)

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected wrapped cause to be reachable")
	}

	if err.Error() != "reading state: unexpected EOF" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
