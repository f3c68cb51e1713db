package game

import "math/rand"

// Advance moves the ball one tick.
func Advance(s *State) {
	s.Ball.X += s.Ball.DX
	s.Ball.Y += s.Ball.DY
}

// ResolveCollisions reflects the ball off walls and paddles. The axes are
// checked independently, so a corner hit may reflect both in one tick.
func ResolveCollisions(g Geometry, s *State) {
	b := &s.Ball

	// Top wall always reflects.
	if b.Y <= 0 {
		b.DY = abs(b.DY)
	}

	// The bottom edge reflects unless a bottom paddle is in play and the
	// ball misses it, in which case the ball is allowed to exit.
	if b.Y+g.BallSize >= g.Height {
		if !s.Multiplayer || overlaps(b.X, b.X+g.BallSize, s.BottomX, s.BottomX+g.BottomPaddleWidth) {
			b.DY = -abs(b.DY)
		}
	}

	if b.X <= g.PaddleWidth && overlaps(b.Y, b.Y+g.BallSize, s.LeftY, s.LeftY+g.PaddleHeight) {
		b.DX = abs(b.DX)
	}

	if b.X+g.BallSize >= g.Width-g.PaddleWidth && overlaps(b.Y, b.Y+g.BallSize, s.RightY, s.RightY+g.PaddleHeight) {
		b.DX = -abs(b.DX)
	}
}

// CheckScoring reports which side scores, if the ball has fully exited a
// scoring boundary. Exiting past the right paddle credits the left player
// and vice versa; exiting the bottom edge credits the bottom player.
func CheckScoring(g Geometry, s *State) (Side, bool) {
	switch {
	case s.Ball.X >= g.Width:
		return SideLeft, true
	case s.Ball.X <= 0:
		return SideRight, true
	case s.Multiplayer && s.Ball.Y >= g.Height:
		return SideBottom, true
	}
	return SideNone, false
}

// ResetBall recenters the ball and serves it with an independent random
// sign per axis, so all four directions are equally likely.
func ResetBall(g Geometry, s *State, rng *rand.Rand) {
	s.Ball.X = g.Width / 2
	s.Ball.Y = g.Height / 2
	s.Ball.DX = g.BallSpeed
	s.Ball.DY = g.BallSpeed
	if rng.Intn(2) == 0 {
		s.Ball.DX = -s.Ball.DX
	}
	if rng.Intn(2) == 0 {
		s.Ball.DY = -s.Ball.DY
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func overlaps(aMin, aMax, bMin, bMax float64) bool {
	return aMax >= bMin && aMin <= bMax
}
