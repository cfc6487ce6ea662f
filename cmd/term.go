package cmd

import (
	"errors"
	"os"

	"github.com/cli/go-gh/v2/pkg/term"
	xterm "golang.org/x/term"
)

// defaultTermSize reports the size of the terminal attached to stdout.
func defaultTermSize() (int, int, error) {
	return termSize(term.FromEnv(), stdoutSize)
}

func stdoutSize() (int, int, error) {
	return xterm.GetSize(int(os.Stdout.Fd()))
}

// termSize asks go-gh for the size first. GH_FORCE_TTY can pin the width and
// leave the height unknown; the real tty then supplies what go-gh could not.
func termSize(t term.Term, tty func() (int, int, error)) (int, int, error) {
	if !t.IsTerminalOutput() {
		return -1, -1, errors.New("stdout is not a terminal")
	}
	cols, rows, err := t.Size()
	if err == nil && cols > 0 && rows > 0 {
		return cols, rows, nil
	}

	ttyCols, ttyRows, ttyErr := tty()
	if ttyErr != nil {
		if err != nil {
			return -1, -1, err
		}
		return -1, -1, ttyErr
	}
	if err != nil || cols <= 0 {
		cols = ttyCols
	}
	return cols, ttyRows, nil
}
