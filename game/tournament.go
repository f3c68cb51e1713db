package game

import (
	"math/rand"
	"sort"
)

// Player is one tournament entrant. Wins is the only mutable field.
// BoundAccountID links the seat to the authenticated local player; guest
// entrants leave it empty.
type Player struct {
	ID             string `json:"id"`
	Alias          string `json:"alias"`
	Wins           int    `json:"wins"`
	BoundAccountID string `json:"bound_account_id,omitempty"`
}

// Pairing is the next match to play. Bye names the player sitting this
// round out, if the roster size is odd. Final marks the deciding match.
type Pairing struct {
	A, B  *Player
	Bye   *Player
	Final bool
}

// Outcome reports what the director decided after a completed match.
type Outcome struct {
	Next       *Pairing
	Champion   *Player
	FinalRound bool
	Finished   bool
}

// Director runs one tournament: it decides pairings, keeps the win book,
// detects the final, and declares the champion. It is driven synchronously
// from each match's completion callback, so results are processed strictly
// in completion order. State lives only for one client session.
type Director struct {
	players   []*Player
	completed []Result
	rng       *rand.Rand
	token     string

	roundCounter  int
	finalists     [2]*Player
	champion      *Player
	isFinalRound  bool
	awaitingFinal bool
}

// NewDirector seats the roster. The rng drives the opening shuffle and
// the played-count tie-break; tests inject a seeded source.
func NewDirector(token string, rng *rand.Rand, players ...*Player) *Director {
	return &Director{
		players: players,
		rng:     rng,
		token:   token,
	}
}

func (d *Director) Token() string       { return d.token }
func (d *Director) Players() []*Player  { return d.players }
func (d *Director) Champion() *Player   { return d.champion }
func (d *Director) Round() int          { return d.roundCounter }
func (d *Director) FinalRound() bool    { return d.isFinalRound }
func (d *Director) Completed() []Result { return d.completed }

// Finalists returns the two players contesting the final, once selected.
func (d *Director) Finalists() (a, b *Player, ok bool) {
	if d.finalists[0] == nil {
		return nil, nil, false
	}
	return d.finalists[0], d.finalists[1], true
}

// InitialPairing schedules the opening match. With no leader yet, the
// roster is shuffled uniformly and paired sequentially; an odd roster
// leaves the last player a bye.
func (d *Director) InitialPairing() Outcome {
	if d.champion != nil {
		return Outcome{Champion: d.champion, Finished: true}
	}
	if !d.hasLeader() {
		shuffled := make([]*Player, len(d.players))
		copy(shuffled, d.players)
		d.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if len(shuffled) < 2 {
			return Outcome{Finished: true}
		}
		p := &Pairing{A: shuffled[0], B: shuffled[1]}
		if len(shuffled)%2 == 1 {
			p.Bye = shuffled[len(shuffled)-1]
		}
		d.roundCounter++
		return Outcome{Next: p}
	}
	return d.schedule()
}

// Advance consumes one completed match: it books the win, then decides
// the next pairing, the final, or the champion. Results carrying a stale
// token are ignored outright, as are any results after the champion is
// declared.
func (d *Director) Advance(res Result) Outcome {
	if res.Token != d.token {
		return Outcome{Champion: d.champion, FinalRound: d.isFinalRound, Finished: d.champion != nil}
	}
	if d.champion != nil {
		return Outcome{Champion: d.champion, Finished: true}
	}

	winner := d.byID(res.Winner.ID)
	if winner == nil {
		return Outcome{FinalRound: d.isFinalRound}
	}
	winner.Wins++
	d.completed = append(d.completed, res)

	// The designated final decides the tournament.
	if d.awaitingFinal {
		d.awaitingFinal = false
		d.champion = winner
		return Outcome{Champion: d.champion, FinalRound: true, Finished: true}
	}

	return d.schedule()
}

// schedule picks the next match per the progression rules: two leaders
// force the final; a sole leader with nobody left to pair is champion;
// otherwise the two least-played sub-threshold players meet, with an
// exact tie broken by a coin-flip swap of the pair.
func (d *Director) schedule() Outcome {
	leaders := d.leaders()

	if len(leaders) >= 2 {
		sort.SliceStable(leaders, func(i, j int) bool {
			return leaders[i].Wins > leaders[j].Wins
		})
		d.isFinalRound = true
		d.awaitingFinal = true
		d.finalists = [2]*Player{leaders[0], leaders[1]}
		d.roundCounter++
		return Outcome{
			Next:       &Pairing{A: leaders[0], B: leaders[1], Final: true},
			FinalRound: true,
		}
	}

	eligible := d.eligible()
	if len(eligible) < 2 {
		if len(leaders) == 1 {
			d.champion = leaders[0]
			return Outcome{Champion: d.champion, Finished: true}
		}
		return Outcome{Finished: true}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		pi, pj := d.played(eligible[i]), d.played(eligible[j])
		if pi != pj {
			return pi < pj
		}
		return eligible[i].Wins < eligible[j].Wins
	})
	a, b := eligible[0], eligible[1]
	if d.played(a) == d.played(b) && d.rng.Intn(2) == 1 {
		a, b = b, a
	}
	p := &Pairing{A: a, B: b}
	if rest := len(d.players) - 2; rest > 0 && len(d.players)%2 == 1 {
		for _, pl := range d.players {
			if pl != a && pl != b {
				p.Bye = pl
				break
			}
		}
	}
	d.roundCounter++
	return Outcome{Next: p}
}

// EndTournament clears all tournament state and adopts a fresh token,
// stranding every callback still carrying the old one.
func (d *Director) EndTournament(newToken string) {
	for _, p := range d.players {
		p.Wins = 0
	}
	d.players = nil
	d.completed = nil
	d.roundCounter = 0
	d.finalists = [2]*Player{}
	d.champion = nil
	d.isFinalRound = false
	d.awaitingFinal = false
	d.token = newToken
}

func (d *Director) byID(id string) *Player {
	for _, p := range d.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (d *Director) hasLeader() bool {
	return len(d.leaders()) > 0
}

func (d *Director) leaders() []*Player {
	var out []*Player
	for _, p := range d.players {
		if p.Wins >= 2 {
			out = append(out, p)
		}
	}
	return out
}

func (d *Director) eligible() []*Player {
	var out []*Player
	for _, p := range d.players {
		if p.Wins < 2 {
			out = append(out, p)
		}
	}
	return out
}

func (d *Director) played(p *Player) int {
	n := 0
	for _, res := range d.completed {
		for _, seat := range res.Seats {
			if seat.ID == p.ID {
				n++
				break
			}
		}
	}
	return n
}
