package game

import (
	"math/rand/v2"
)

type Cell struct {
	X int
	Y int
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the direction that would reverse the snake onto itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta is the unit vector the head moves by in one tick.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// EndReason records what ended a game. It is EndNone while the game runs.
type EndReason int

const (
	EndNone EndReason = iota
	EndWall
	EndSelf
	EndQuit
	EndBoardFull
)

func (r EndReason) String() string {
	switch r {
	case EndWall:
		return "hit the wall"
	case EndSelf:
		return "ran into itself"
	case EndQuit:
		return "quit"
	case EndBoardFull:
		return "filled the board"
	default:
		return "running"
	}
}

// State is the whole game: snake, food, score and the end-of-game flag.
// Logic, Input and GenerateFood mutate it in place.
type State struct {
	Snake     []Cell // head at index 0
	Food      Cell
	Score     int
	Direction Direction
	GameOver  bool
	Reason    EndReason
	Ticks     int

	rng *rand.Rand
}

// Result is the summary handed back to the caller once a game ends.
type Result struct {
	Score  int
	Length int
	Ticks  int
	Reason EndReason
}

// NewState returns a freshly set up game. The seed alone decides every food
// placement, so equal seeds and inputs replay the same game.
func NewState(seed uint64) *State {
	s := &State{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.Setup()
	return s
}

// Setup puts the snake in a horizontal line centred on the board, heading
// right, and places the first food.
func (s *State) Setup() {
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(1, 1^0x9e3779b97f4a7c15))
	}

	cx := Width / 2
	cy := Height / 2
	if cap(s.Snake) < InitialLength {
		s.Snake = make([]Cell, InitialLength, 4*InitialLength)
	}
	s.Snake = s.Snake[:InitialLength]
	for i := range s.Snake {
		s.Snake[i] = Cell{X: cx - i, Y: cy}
	}

	s.Direction = Right
	s.Score = 0
	s.GameOver = false
	s.Reason = EndNone
	s.Ticks = 0

	s.GenerateFood()
}

func (s *State) Head() Cell {
	return s.Snake[0]
}

func (s *State) Result() Result {
	return Result{
		Score:  s.Score,
		Length: len(s.Snake),
		Ticks:  s.Ticks,
		Reason: s.Reason,
	}
}

// Occupies reports whether any snake segment sits on c.
func (s *State) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

func (s *State) end(r EndReason) {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.Reason = r
}
