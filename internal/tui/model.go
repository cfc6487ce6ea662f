package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/fchimpan/gh-kusa-snake/internal/game"
	"github.com/fchimpan/gh-kusa-snake/internal/render"
	"github.com/fchimpan/gh-kusa-snake/internal/screen"
)

type phase int

const (
	phaseSplash phase = iota
	phasePlaying
	phaseOver
)

// minTickDelay keeps a slow tick from scheduling the next one in the past.
const minTickDelay = time.Millisecond

type Model struct {
	seed uint64
	log  zerolog.Logger

	phase  phase
	state  *game.State
	keys   screen.KeySlot
	canvas *screen.Canvas

	// overlay is the splash or game-over text block; it prints unstyled.
	overlay render.Rect

	w int
	h int
}

func NewModel(seed uint64, log zerolog.Logger) *Model {
	m := &Model{
		seed:   seed,
		log:    log,
		canvas: screen.NewCanvas(render.Rows, render.Cols),
	}
	m.overlay = render.Splash(m.canvas)
	return m
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d < minTickDelay {
		d = minTickDelay
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// nextDelay is the sleep that keeps ticks TickDelay apart after spending
// elapsed on drawing and logic.
func nextDelay(elapsed time.Duration) time.Duration {
	d := game.TickDelay() - elapsed
	if d < minTickDelay {
		return minTickDelay
	}
	return d
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if m.phase != phasePlaying {
			return m, nil
		}
		return m.tick()
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseSplash:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.start()
		return m, tickCmd(minTickDelay)
	case phasePlaying:
		if msg.Type == tea.KeyCtrlC {
			m.state.Input("x", true)
			return m.finish()
		}
		m.keys.Put(msg.String())
		return m, nil
	default:
		return m, tea.Quit
	}
}

func (m *Model) start() {
	m.state = game.NewState(m.seed)
	m.phase = phasePlaying
	m.overlay = render.Rect{}
	m.log.Info().
		Uint64("seed", m.seed).
		Int("width", game.Width).
		Int("height", game.Height).
		Msg("game started")
}

// tick runs one Draw, Input, Logic round and schedules the next one.
func (m *Model) tick() (tea.Model, tea.Cmd) {
	began := time.Now()

	render.Draw(m.canvas, m.state)
	m.state.Input(m.keys.Take())

	score := m.state.Score
	m.state.Logic()
	if m.state.Score != score {
		m.log.Debug().
			Int("score", m.state.Score).
			Int("length", len(m.state.Snake)).
			Int("tick", m.state.Ticks).
			Msg("food eaten")
	}

	if m.state.GameOver {
		return m.finish()
	}
	return m, tickCmd(nextDelay(time.Since(began)))
}

func (m *Model) finish() (tea.Model, tea.Cmd) {
	m.phase = phaseOver
	m.keys.Take()

	m.log.Info().
		Stringer("reason", m.state.Reason).
		Int("score", m.state.Score).
		Int("length", len(m.state.Snake)).
		Int("ticks", m.state.Ticks).
		Msg("game over")

	render.Draw(m.canvas, m.state)
	m.overlay = render.GameOver(m.canvas, m.state)
	return m, nil
}

// Result summarises the game. Quitting from the splash screen reports an
// empty game ended by the player.
func (m *Model) Result() game.Result {
	if m.state == nil {
		return game.Result{Reason: game.EndQuit}
	}
	return m.state.Result()
}

func (m *Model) View() string {
	frame := m.canvas.Render(m.styleCell)
	if m.w <= 0 || m.h <= 0 {
		return frame
	}
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, strings.TrimSuffix(frame, "\n"))
}

// ===== Render helpers (cached styles) =====

var (
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleHead   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleBody   = lipgloss.NewStyle().Foreground(lipgloss.Color("#40c463"))
	styleFood   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))

	borderCell = styleBorder.Render(string(render.GlyphBorder))
	headCell   = styleHead.Render(string(render.GlyphHead))
	bodyCell   = styleBody.Render(string(render.GlyphBody))
	foodCell   = styleFood.Render(string(render.GlyphFood))
)

// styleCell colours board glyphs; the score, help text and overlay print as is.
func (m *Model) styleCell(row, col int, r rune) string {
	if col >= game.Width || m.overlay.Contains(row, col) {
		return string(r)
	}
	switch r {
	case render.GlyphBorder:
		return borderCell
	case render.GlyphHead:
		return headCell
	case render.GlyphBody:
		return bodyCell
	case render.GlyphFood:
		return foodCell
	default:
		return string(r)
	}
}
