package game

import "testing"

func TestHeldKeyMovesEveryTick(t *testing.T) {
	g, s := testState(false)
	k := NewKeys()
	start := s.LeftY

	k.Set(LeftDown, true)
	k.Apply(g, s)
	k.Apply(g, s)

	if want := start + 2*g.PaddleStep; s.LeftY != want {
		t.Fatalf("left paddle at %f after 2 ticks, want %f", s.LeftY, want)
	}

	k.Set(LeftDown, false)
	before := s.LeftY
	k.Apply(g, s)
	if s.LeftY != before {
		t.Fatalf("released key still moved paddle: %f -> %f", before, s.LeftY)
	}
}

func TestSimultaneousKeysApplySameTick(t *testing.T) {
	g, s := testState(true)
	k := NewKeys()
	leftStart, rightStart, bottomStart := s.LeftY, s.RightY, s.BottomX

	k.Set(LeftUp, true)
	k.Set(RightDown, true)
	k.Set(BottomRight, true)
	k.Apply(g, s)

	if s.LeftY != leftStart-g.PaddleStep {
		t.Fatalf("left paddle at %f, want %f", s.LeftY, leftStart-g.PaddleStep)
	}
	if s.RightY != rightStart+g.PaddleStep {
		t.Fatalf("right paddle at %f, want %f", s.RightY, rightStart+g.PaddleStep)
	}
	if s.BottomX != bottomStart+g.PaddleStep {
		t.Fatalf("bottom paddle at %f, want %f", s.BottomX, bottomStart+g.PaddleStep)
	}
}

// Opposing keys held together cancel out after clamping.
func TestOpposingKeysCancel(t *testing.T) {
	g, s := testState(false)
	k := NewKeys()
	start := s.LeftY

	k.Set(LeftUp, true)
	k.Set(LeftDown, true)
	k.Apply(g, s)

	if s.LeftY != start {
		t.Fatalf("left paddle at %f with opposing keys, want %f", s.LeftY, start)
	}
}

func TestPaddlesClampToCanvas(t *testing.T) {
	g, s := testState(true)
	k := NewKeys()

	k.Set(LeftUp, true)
	k.Set(BottomLeft, true)
	for i := 0; i < 50; i++ {
		k.Apply(g, s)
	}
	if s.LeftY != 0 {
		t.Fatalf("left paddle at %f, want clamped to 0", s.LeftY)
	}
	if s.BottomX != 0 {
		t.Fatalf("bottom paddle at %f, want clamped to 0", s.BottomX)
	}

	k.Reset()
	k.Set(LeftDown, true)
	k.Set(BottomRight, true)
	for i := 0; i < 50; i++ {
		k.Apply(g, s)
	}
	if want := g.Height - g.PaddleHeight; s.LeftY != want {
		t.Fatalf("left paddle at %f, want clamped to %f", s.LeftY, want)
	}
	if want := g.Width - g.BottomPaddleWidth; s.BottomX != want {
		t.Fatalf("bottom paddle at %f, want clamped to %f", s.BottomX, want)
	}
}

func TestBottomKeysIgnoredInTwoPlayer(t *testing.T) {
	g, s := testState(false)
	k := NewKeys()
	start := s.BottomX

	k.Set(BottomLeft, true)
	k.Apply(g, s)

	if s.BottomX != start {
		t.Fatalf("bottom paddle moved in two-player mode: %f -> %f", start, s.BottomX)
	}
}
