package game

// maxFoodAttempts bounds rejection sampling before falling back to picking
// from the enumerated free cells. Both paths are uniform over free cells.
const maxFoodAttempts = 64

// GenerateFood places food on a random free interior cell. It returns false,
// leaving Food untouched, when the snake covers the whole interior.
func (s *State) GenerateFood() bool {
	for range maxFoodAttempts {
		c := Cell{
			X: 1 + s.rng.IntN(Width-2),
			Y: 1 + s.rng.IntN(Height-2),
		}
		if !s.Occupies(c) {
			s.Food = c
			return true
		}
	}

	free := s.freeInterior()
	if len(free) == 0 {
		return false
	}
	s.Food = free[s.rng.IntN(len(free))]
	return true
}

func (s *State) freeInterior() []Cell {
	var taken [Height][Width]bool
	for _, seg := range s.Snake {
		if seg.X >= 0 && seg.X < Width && seg.Y >= 0 && seg.Y < Height {
			taken[seg.Y][seg.X] = true
		}
	}

	free := make([]Cell, 0, InteriorCells)
	for y := 1; y < Height-1; y++ {
		for x := 1; x < Width-1; x++ {
			if !taken[y][x] {
				free = append(free, Cell{X: x, Y: y})
			}
		}
	}
	return free
}
