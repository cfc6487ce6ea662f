package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/fchimpan/gh-kusa-snake/internal/game"
	"github.com/fchimpan/gh-kusa-snake/internal/tui"
)

func defaultRunTUI(ctx context.Context, seed uint64, log zerolog.Logger) (game.Result, error) {
	m := tui.NewModel(seed, log)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return game.Result{}, err
	}
	return m.Result(), nil
}
