package game

// Logic advances the simulation by one tick. It does nothing once the game is
// over.
func (s *State) Logic() {
	if s.GameOver {
		return
	}

	// Body follows the head: each segment takes its predecessor's position.
	for i := len(s.Snake) - 1; i > 0; i-- {
		s.Snake[i] = s.Snake[i-1]
	}

	dx, dy := s.Direction.Delta()
	s.Snake[0].X += dx
	s.Snake[0].Y += dy
	s.Ticks++

	head := s.Snake[0]

	// A head on or past the border is not comparable with body cells, so walls
	// are checked first.
	if head.X <= 0 || head.X >= Width-1 || head.Y <= 0 || head.Y >= Height-1 {
		s.end(EndWall)
		return
	}

	for i := 1; i < len(s.Snake); i++ {
		if s.Snake[i] == head {
			s.end(EndSelf)
			return
		}
	}

	if head == s.Food {
		s.Score += FoodReward

		// The new segment duplicates the tail, which has not moved yet this
		// tick, so the snake appears to grow from the tail.
		if len(s.Snake) < Capacity {
			s.Snake = append(s.Snake, s.Snake[len(s.Snake)-1])
		}

		if !s.GenerateFood() {
			s.end(EndBoardFull)
		}
	}
}
