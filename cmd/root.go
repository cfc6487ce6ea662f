package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fchimpan/gh-kusa-snake/internal/game"
)

type Deps struct {
	RunTUI   func(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error)
	TermSize func() (cols, rows int, err error)
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   zerolog.Logger
}

func DefaultDeps() Deps {
	return Deps{
		RunTUI:   defaultRunTUI,
		TermSize: defaultTermSize,
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   zerolog.Nop(),
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	c := &cobra.Command{
		Use:          "snake",
		Short:        "Play snake in your terminal",
		Long:         "Steer the snake with W/A/S/D, eat the $ to grow, and avoid the walls and your own tail. X quits.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := uint64(deps.Now().UnixNano())
			if err := run(cmd.Context(), deps, seed); err != nil {
				if IsTerminalTooSmall(err) {
					fmt.Fprintln(deps.Stderr, "hint: enlarge the terminal window and try again")
				}
				return err
			}
			return nil
		},
	}

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
