package game

import "math/rand"

// Status is the lifecycle of one match session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// Result is emitted exactly once when a match completes.
type Result struct {
	Seats  map[Side]Player
	Winner Player
	Side   Side
	Score  Score
	Token  string
}

// Session drives one match: it owns the simulation state, the key table,
// and the win-threshold check. The caller schedules Tick once per frame
// while the session's token is still current; a session whose token has
// been superseded is simply never ticked again.
type Session struct {
	geo   Geometry
	state *State
	keys  *Keys
	rng   *rand.Rand
	seats map[Side]Player

	status    Status
	completed bool

	// OnComplete fires at most once, synchronously from Tick.
	OnComplete func(Result)
}

// NewSession seats the given players. A bottom seat switches the match
// into three-player mode.
func NewSession(g Geometry, token string, seats map[Side]Player, rng *rand.Rand) *Session {
	_, multiplayer := seats[SideBottom]
	return &Session{
		geo:   g,
		state: NewState(g, token, multiplayer),
		keys:  NewKeys(),
		rng:   rng,
		seats: seats,
	}
}

func (s *Session) Status() Status { return s.status }
func (s *Session) Token() string  { return s.state.Token }
func (s *Session) State() *State  { return s.state }

// SetKey records a key event. Events may arrive at any time; they only
// take effect on the next running tick.
func (s *Session) SetKey(c Control, held bool) {
	s.keys.Set(c, held)
}

// Start serves the first ball, or resumes a paused match. Completed
// sessions ignore it.
func (s *Session) Start() {
	switch s.status {
	case StatusIdle:
		ResetBall(s.geo, s.state, s.rng)
		s.status = StatusRunning
	case StatusPaused:
		s.status = StatusRunning
	}
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() {
	switch s.status {
	case StatusRunning:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusRunning
	}
}

// Tick advances the simulation one frame. Outside RUNNING it is a no-op,
// which also covers late ticks scheduled before a completion.
func (s *Session) Tick() {
	if s.status != StatusRunning {
		return
	}

	s.keys.Apply(s.geo, s.state)
	Advance(s.state)
	ResolveCollisions(s.geo, s.state)

	side, scored := CheckScoring(s.geo, s.state)
	if !scored {
		return
	}

	s.state.Score.add(side)
	ResetBall(s.geo, s.state, s.rng)

	if s.state.Score.Get(side) < s.geo.WinThreshold {
		return
	}
	if s.completed {
		return
	}
	s.completed = true
	s.status = StatusCompleted
	s.finish(side)
}

// finish coerces the final score and emits the single Result. The winner
// is pinned to the threshold; each loser is pinned to the minimum of its
// own raw score and the winner's raw score, so a same-tick double cross
// can never present two apparent winners.
func (s *Session) finish(winner Side) {
	raw := s.state.Score
	final := raw
	final.set(winner, s.geo.WinThreshold)
	for _, side := range s.state.Sides() {
		if side == winner {
			continue
		}
		final.set(side, min(raw.Get(side), raw.Get(winner)))
	}
	s.state.Score = final

	if s.OnComplete == nil {
		return
	}
	s.OnComplete(Result{
		Seats:  s.seats,
		Winner: s.seats[winner],
		Side:   winner,
		Score:  final,
		Token:  s.state.Token,
	})
}
