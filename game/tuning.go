package game

// Geometry describes the logical canvas and the fixed movement rules.
// Everything operates in canvas units; the client scales for display.
type Geometry struct {
	Width  float64
	Height float64

	PaddleWidth  float64
	PaddleHeight float64

	// Bottom paddle exists only in three-player matches.
	BottomPaddleWidth  float64
	BottomPaddleHeight float64

	BallSize   float64
	BallSpeed  float64
	PaddleStep float64

	WinThreshold int
}

// DefaultGeometry returns the standard 800x600 table.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:              800,
		Height:             600,
		PaddleWidth:        10,
		PaddleHeight:       117,
		BottomPaddleWidth:  117,
		BottomPaddleHeight: 10,
		BallSize:           10,
		BallSpeed:          5,
		PaddleStep:         40,
		WinThreshold:       5,
	}
}
