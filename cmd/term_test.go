package cmd

import (
	"errors"
	"testing"

	"github.com/cli/go-gh/v2/pkg/term"
)

func TestTermSize_ForcedWidthUsesTTYHeight(t *testing.T) {
	t.Setenv("GH_FORCE_TTY", "200")

	cols, rows, err := termSize(term.FromEnv(), func() (int, int, error) { return 120, 40, nil })
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cols != 200 || rows != 40 {
		t.Fatalf("size mismatch: got %dx%d, want 200x40", cols, rows)
	}

	if err := checkTerminal(func() (int, int, error) { return cols, rows, nil }); err != nil {
		t.Fatalf("expected terminal to fit, got %v", err)
	}
}

func TestTermSize_ForcedWidthWithoutTTY(t *testing.T) {
	t.Setenv("GH_FORCE_TTY", "200")

	want := errors.New("inappropriate ioctl for device")
	_, _, err := termSize(term.FromEnv(), func() (int, int, error) { return 0, 0, want })
	if !errors.Is(err, want) {
		t.Fatalf("expected tty error %v, got %v", want, err)
	}
	if !IsTerminalTooSmall(checkTerminal(func() (int, int, error) { return -1, -1, err })) {
		t.Fatalf("expected size failure to abort startup")
	}
}

func TestTermSize_ForcedSmallWidthStillTooSmall(t *testing.T) {
	t.Setenv("GH_FORCE_TTY", "30")

	cols, rows, err := termSize(term.FromEnv(), func() (int, int, error) { return 120, 40, nil })
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !IsTerminalTooSmall(checkTerminal(func() (int, int, error) { return cols, rows, nil })) {
		t.Fatalf("expected %dx%d to be too small", cols, rows)
	}
}
