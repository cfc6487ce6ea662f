package game

import "time"

// Board and pacing constants. They are fixed at build time; the game has no
// runtime rule configuration.
const (
	Width         = 40
	Height        = 20
	InitialLength = 3

	// TickDelayMicros is the target duration of one tick.
	TickDelayMicros = 100000

	FoodReward = 10

	// Extra room the terminal needs beyond the board for the score and help text.
	TermMarginCols = 20
	TermMarginRows = 4
)

// Capacity is the hard cap on snake length.
const Capacity = Width * Height

// InteriorCells is the number of cells strictly inside the border.
const InteriorCells = (Width - 2) * (Height - 2)

// TickDelay is TickDelayMicros as a time.Duration.
func TickDelay() time.Duration {
	return TickDelayMicros * time.Microsecond
}
