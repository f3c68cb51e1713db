package game

// Control names one held movement key. Two controls per side paddle, two
// more for the bottom paddle in three-player matches.
type Control string

const (
	LeftUp      Control = "left_up"
	LeftDown    Control = "left_down"
	RightUp     Control = "right_up"
	RightDown   Control = "right_down"
	BottomLeft  Control = "bottom_left"
	BottomRight Control = "bottom_right"
)

// Keys tracks which controls are currently held. Each session owns its
// own table; key events may arrive at any time relative to a tick, so the
// session applies the table once per tick while running.
type Keys struct {
	held map[Control]bool
}

func NewKeys() *Keys {
	return &Keys{held: make(map[Control]bool)}
}

// Set records a control as held or released. No debouncing: a held
// control moves its paddle every tick until released.
func (k *Keys) Set(c Control, held bool) {
	if held {
		k.held[c] = true
	} else {
		delete(k.held, c)
	}
}

func (k *Keys) Held(c Control) bool {
	return k.held[c]
}

// Reset releases every control.
func (k *Keys) Reset() {
	clear(k.held)
}

// Apply moves each paddle one step per held control, clamped to the
// canvas. Simultaneously held controls all apply in the same tick,
// without priority ordering.
func (k *Keys) Apply(g Geometry, s *State) {
	if k.held[LeftUp] {
		s.LeftY -= g.PaddleStep
	}
	if k.held[LeftDown] {
		s.LeftY += g.PaddleStep
	}
	if k.held[RightUp] {
		s.RightY -= g.PaddleStep
	}
	if k.held[RightDown] {
		s.RightY += g.PaddleStep
	}
	s.LeftY = clamp(s.LeftY, 0, g.Height-g.PaddleHeight)
	s.RightY = clamp(s.RightY, 0, g.Height-g.PaddleHeight)

	if !s.Multiplayer {
		return
	}
	if k.held[BottomLeft] {
		s.BottomX -= g.PaddleStep
	}
	if k.held[BottomRight] {
		s.BottomX += g.PaddleStep
	}
	s.BottomX = clamp(s.BottomX, 0, g.Width-g.BottomPaddleWidth)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
