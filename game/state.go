package game

// Side identifies a paddle, and therefore a seat at the table.
type Side string

const (
	SideNone   Side = ""
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
)

type Ball struct {
	X, Y   float64
	DX, DY float64
}

// Score counts points per paddle side. A side scores when the ball fully
// exits the opposing boundary.
type Score struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Bottom int `json:"bottom,omitempty"`
}

// Get returns the count for one side.
func (s Score) Get(side Side) int {
	switch side {
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	case SideBottom:
		return s.Bottom
	}
	return 0
}

func (s *Score) add(side Side) {
	switch side {
	case SideLeft:
		s.Left++
	case SideRight:
		s.Right++
	case SideBottom:
		s.Bottom++
	}
}

func (s *Score) set(side Side, n int) {
	switch side {
	case SideLeft:
		s.Left = n
	case SideRight:
		s.Right = n
	case SideBottom:
		s.Bottom = n
	}
}

// State is the full simulation state of one match. LeftY and RightY are
// the top edges of the side paddles; BottomX is the left edge of the
// bottom paddle. Token is fixed for the lifetime of the match and lets
// stale asynchronous callbacks be recognized and dropped.
type State struct {
	LeftY   float64
	RightY  float64
	BottomX float64

	Ball  Ball
	Score Score

	Token       string
	Multiplayer bool
}

// NewState centers the paddles and the ball. The ball does not move until
// ResetBall assigns it a direction.
func NewState(g Geometry, token string, multiplayer bool) *State {
	return &State{
		LeftY:       (g.Height - g.PaddleHeight) / 2,
		RightY:      (g.Height - g.PaddleHeight) / 2,
		BottomX:     (g.Width - g.BottomPaddleWidth) / 2,
		Ball:        Ball{X: g.Width / 2, Y: g.Height / 2},
		Token:       token,
		Multiplayer: multiplayer,
	}
}

// Sides returns the seats present in this match, in broadcast order.
func (s *State) Sides() []Side {
	if s.Multiplayer {
		return []Side{SideLeft, SideRight, SideBottom}
	}
	return []Side{SideLeft, SideRight}
}
