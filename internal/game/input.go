package game

// Input applies at most one key read for this tick. ok is false when no key
// was pending. Unknown keys are ignored.
func (s *State) Input(key string, ok bool) {
	if !ok || s.GameOver {
		return
	}

	switch key {
	case "w", "W":
		s.steer(Up)
	case "s", "S":
		s.steer(Down)
	case "a", "A":
		s.steer(Left)
	case "d", "D":
		s.steer(Right)
	case "x", "X":
		s.end(EndQuit)
	}
}

// steer changes direction unless the request would reverse the snake.
func (s *State) steer(d Direction) {
	if d == s.Direction.Opposite() {
		return
	}
	s.Direction = d
}
