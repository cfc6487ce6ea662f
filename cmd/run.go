package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/gh-kusa-snake/internal/game"
)

func run(ctx context.Context, deps Deps, seed uint64) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.TermSize == nil {
		return fmt.Errorf("deps.TermSize is nil")
	}
	if deps.Stdout == nil {
		return fmt.Errorf("deps.Stdout is nil")
	}

	if err := checkTerminal(deps.TermSize); err != nil {
		deps.Logger.Warn().Err(err).Msg("terminal check failed")
		return err
	}

	deps.Logger.Info().Uint64("seed", seed).Msg("starting game")
	res, err := deps.RunTUI(ctx, seed, deps.Logger)
	if err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}

	printReport(deps.Stdout, res)
	return nil
}

// checkTerminal makes sure the board plus its side text fits before any game
// state exists.
func checkTerminal(size func() (int, int, error)) error {
	needCols := game.Width + game.TermMarginCols
	needRows := game.Height + game.TermMarginRows

	cols, rows, err := size()
	if err != nil {
		return &TerminalTooSmallError{NeedCols: needCols, NeedRows: needRows, Cols: -1, Rows: -1, cause: err}
	}
	if cols < needCols || rows < needRows {
		return &TerminalTooSmallError{NeedCols: needCols, NeedRows: needRows, Cols: cols, Rows: rows}
	}
	return nil
}

var (
	reportBorder = lipgloss.Border{
		Top: "*", Bottom: "*", Left: "*", Right: "*",
		TopLeft: "*", TopRight: "*", BottomLeft: "*", BottomRight: "*",
	}
	styleReport = lipgloss.NewStyle().
			Border(reportBorder).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(0, 3).
			Align(lipgloss.Center)
	styleReportTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72"))
	styleReportScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleReportDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
)

func printReport(w io.Writer, res game.Result) {
	title := "G A M E   O V E R !"
	if res.Reason == game.EndBoardFull {
		title = "Y O U   W I N !"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		styleReportTitle.Render(title),
		"",
		styleReportScore.Render(fmt.Sprintf("final score: %d", res.Score)),
		styleReportDim.Render(fmt.Sprintf("length %d  |  %d ticks  |  snake %s", res.Length, res.Ticks, res.Reason)),
	)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleReport.Render(body))
}
