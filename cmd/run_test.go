package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fchimpan/gh-kusa-snake/internal/game"
)

func fitTerm() (int, int, error) { return 80, 24, nil }

func TestRun_Success(t *testing.T) {
	t.Parallel()

	var calledTUI bool
	var stdout bytes.Buffer
	deps := Deps{
		RunTUI: func(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error) {
			calledTUI = true
			if seed != 123 {
				t.Fatalf("seed mismatch: got %d", seed)
			}
			return game.Result{Score: 30, Length: 6, Ticks: 90, Reason: game.EndSelf}, nil
		},
		TermSize: fitTerm,
		Stdout:   &stdout,
		Logger:   zerolog.Nop(),
	}

	if err := run(context.Background(), deps, 123); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !calledTUI {
		t.Fatalf("RunTUI not called")
	}
	out := stdout.String()
	for _, want := range []string{"G A M E   O V E R", "final score: 30", "snake ran into itself"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRun_BoardFullReportsWin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	deps := Deps{
		RunTUI: func(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error) {
			return game.Result{Score: 6810, Reason: game.EndBoardFull}, nil
		},
		TermSize: fitTerm,
		Stdout:   &stdout,
	}

	if err := run(context.Background(), deps, 1); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(stdout.String(), "Y O U   W I N") {
		t.Fatalf("expected win banner:\n%s", stdout.String())
	}
}

func TestRun_TerminalTooSmall(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		cols, rows int
	}{
		{"narrow", game.Width + game.TermMarginCols - 1, 40},
		{"short", 200, game.Height + game.TermMarginRows - 1},
	}
	for _, tc := range cases {
		deps := Deps{
			RunTUI: func(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error) {
				t.Fatalf("%s: RunTUI should not be called", tc.name)
				return game.Result{}, nil
			},
			TermSize: func() (int, int, error) { return tc.cols, tc.rows, nil },
			Stdout:   &bytes.Buffer{},
		}

		err := run(context.Background(), deps, 1)
		if !IsTerminalTooSmall(err) {
			t.Fatalf("%s: expected TerminalTooSmallError, got %v", tc.name, err)
		}
		var tse *TerminalTooSmallError
		if !errors.As(err, &tse) || tse.Cols != tc.cols || tse.Rows != tc.rows {
			t.Fatalf("%s: size not reported: %+v", tc.name, tse)
		}
	}
}

func TestRun_ExactFit(t *testing.T) {
	t.Parallel()

	deps := Deps{
		RunTUI: func(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error) {
			return game.Result{}, nil
		},
		TermSize: func() (int, int, error) {
			return game.Width + game.TermMarginCols, game.Height + game.TermMarginRows, nil
		},
		Stdout: &bytes.Buffer{},
	}

	if err := run(context.Background(), deps, 1); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRun_TermSizeError(t *testing.T) {
	t.Parallel()

	want := errors.New("not a tty")
	deps := Deps{
		RunTUI: func(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error) {
			t.Fatalf("RunTUI should not be called")
			return game.Result{}, nil
		},
		TermSize: func() (int, int, error) { return 0, 0, want },
		Stdout:   &bytes.Buffer{},
	}

	err := run(context.Background(), deps, 1)
	if !IsTerminalTooSmall(err) {
		t.Fatalf("expected TerminalTooSmallError, got %v", err)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected wrapped error %v, got %v", want, err)
	}
}

func TestRun_TUIError(t *testing.T) {
	t.Parallel()

	want := errors.New("tty gone")
	var stdout bytes.Buffer
	deps := Deps{
		RunTUI: func(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error) {
			return game.Result{}, want
		},
		TermSize: fitTerm,
		Stdout:   &stdout,
	}

	err := run(context.Background(), deps, 1)
	if !errors.Is(err, want) {
		t.Fatalf("expected wrapped error %v, got %v", want, err)
	}
	if IsTerminalTooSmall(err) {
		t.Fatalf("TUI failure should not look like a size error")
	}
	if stdout.Len() != 0 {
		t.Fatalf("no report expected on failure, got %q", stdout.String())
	}
}

func TestRun_MissingDeps(t *testing.T) {
	t.Parallel()

	if err := run(context.Background(), Deps{}, 1); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}
