package main

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/lowermill/paddlebox/game"
)

func rosterRequest(mode string) clientRequest {
	return clientRequest{
		client: &Client{send: make(chan any, 8), playerID: "cookie-1"},
		msg: ClientMessage{
			Type:   "roster",
			Mode:   mode,
			Alias:  "Ada",
			Guests: []string{"Grace", "Joan"},
		},
	}
}

func TestNewGameIDFormat(t *testing.T) {
	gm := newGameManager(0)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := gm.newGameID()
		if len(id) != 8 {
			t.Fatalf("expected 8-char id, got %q", id)
		}
		for _, r := range id {
			if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", r) {
				t.Fatalf("unexpected rune %q in id %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestRosterQuickMatchSeatsSession(t *testing.T) {
	h := newHub(&Config{}, nil, "test")

	h.handleMessage(rosterRequest(modeQuick2))

	if h.session == nil {
		t.Fatal("expected a seated session")
	}
	if h.session.Token() != h.token {
		t.Fatal("session must carry the current epoch token")
	}
	if h.session.State().Multiplayer {
		t.Fatal("quick2 must not be multiplayer")
	}
	if h.director != nil {
		t.Fatal("quick match must not create a director")
	}
	if h.local == nil || h.local.BoundAccountID != "cookie-1" {
		t.Fatalf("local seat must bind to the requesting cookie, got %+v", h.local)
	}
}

func TestRosterQuickThreeSeatsBottomPaddle(t *testing.T) {
	h := newHub(&Config{}, nil, "test")

	h.handleMessage(rosterRequest(modeQuick3))

	if h.session == nil || !h.session.State().Multiplayer {
		t.Fatal("quick3 must seat a bottom paddle")
	}
}

func TestRosterTournamentSchedulesPairing(t *testing.T) {
	h := newHub(&Config{}, nil, "test")

	h.handleMessage(rosterRequest(modeTournament))

	if h.director == nil {
		t.Fatal("expected a director")
	}
	if h.pending == nil {
		t.Fatal("expected an initial pairing")
	}
	if h.byeAlias == "" {
		t.Fatal("three players must leave one bye")
	}
	if h.session != nil {
		t.Fatal("no match starts before next_match")
	}

	h.handleMessage(clientRequest{
		client: &Client{send: make(chan any, 8)},
		msg:    ClientMessage{Type: "next_match"},
	})

	if h.session == nil {
		t.Fatal("next_match must seat the pending pairing")
	}
	if h.pending != nil {
		t.Fatal("pending pairing must be consumed")
	}
}

func TestEndTournamentMintsFreshEpoch(t *testing.T) {
	h := newHub(&Config{}, nil, "test")

	h.handleMessage(rosterRequest(modeTournament))
	h.startPending()

	old := h.session
	oldToken := h.token

	h.endTournament()

	if h.token == oldToken {
		t.Fatal("ending a tournament must mint a fresh token")
	}
	if h.session != nil || h.director != nil || h.pending != nil {
		t.Fatal("tournament state must be cleared")
	}
	if old.Token() == h.token {
		t.Fatal("the superseded session must not match the new epoch")
	}
}

func TestStaleResultIsDropped(t *testing.T) {
	rec := newFakeRecorder()
	h := newHub(&Config{matchAPI: "http://unused"}, rec, "test")

	h.handleMessage(rosterRequest(modeQuick2))
	s := h.session

	// Supersede the epoch while the old session still exists.
	h.endTournament()

	// Drive the superseded session to completion; its callback must see
	// the token mismatch and drop the result without submitting.
	s.Start()
	st := s.State()
	st.Score.Left = 4
	st.Ball.X = h.geo.Width + 1
	s.Tick()

	if s.Status() != game.StatusCompleted {
		t.Fatal("expected the old session to complete")
	}
	if got := rec.createCount(); got != 0 {
		t.Fatalf("stale result must not be recorded, got %d creates", got)
	}
}

func TestRosterBroadcastsSessionInfo(t *testing.T) {
	h := newHub(&Config{}, nil, "test")

	c := &Client{send: make(chan any, 8), playerID: "cookie-1"}
	h.clients[c] = true

	h.handleMessage(clientRequest{client: c, msg: ClientMessage{
		Type: "roster", Mode: modeQuick2, Alias: "Ada", Guests: []string{"Grace"},
	}})

	select {
	case msg := <-c.send:
		info, ok := msg.(SessionInfoMessage)
		if !ok {
			t.Fatalf("expected session_info first, got %T", msg)
		}
		if info.Mode != modeQuick2 || info.Width != 800 || info.WinThreshold != 5 {
			t.Fatalf("unexpected session info: %+v", info)
		}
	default:
		t.Fatal("expected a broadcast after roster")
	}
}

func TestRosterRejectsUnknownMode(t *testing.T) {
	h := newHub(&Config{}, nil, "test")

	c := &Client{send: make(chan any, 8), playerID: "cookie-1"}
	h.handleMessage(clientRequest{client: c, msg: ClientMessage{
		Type: "roster", Mode: "bingo", Alias: "Ada",
	}})

	if h.session != nil || h.mode != "" {
		t.Fatal("unknown mode must not seat anything")
	}

	select {
	case msg := <-c.send:
		notice, ok := msg.(SimpleMessage)
		if !ok || notice.Type != "error" {
			t.Fatalf("expected error notice, got %#v", msg)
		}
	default:
		t.Fatal("expected an error notice")
	}
}

func TestSubmitGuardAllowsOneInFlight(t *testing.T) {
	rec := newFakeRecorder()
	rec.block = make(chan struct{})
	h := newHub(&Config{}, rec, "test")
	h.mode = modeQuick2

	res := game.Result{
		Seats: map[game.Side]game.Player{
			game.SideLeft:  {Alias: "Ada"},
			game.SideRight: {Alias: "Grace"},
		},
		Winner: game.Player{Alias: "Ada"},
		Side:   game.SideLeft,
		Score:  game.Score{Left: 5, Right: 2},
		Token:  h.token,
	}

	h.submitResult(res)
	<-rec.started
	h.submitResult(res)

	close(rec.block)
	rec.wait()

	if got := rec.createCount(); got != 1 {
		t.Fatalf("expected one submission, got %d", got)
	}
}

type fakeRecorder struct {
	mu      sync.Mutex
	creates int
	updates int

	block   chan struct{}
	started chan struct{}
	done    chan struct{}
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		started: make(chan struct{}, 8),
		done:    make(chan struct{}, 8),
	}
}

func (f *fakeRecorder) CreateMatch(ctx context.Context, opponent, gameType string) (string, error) {
	f.mu.Lock()
	f.creates++
	f.mu.Unlock()

	f.started <- struct{}{}
	if f.block != nil {
		<-f.block
	}
	return "m-1", nil
}

func (f *fakeRecorder) UpdateMatchResult(ctx context.Context, matchID string, scoreA, scoreB int) error {
	f.mu.Lock()
	f.updates++
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeRecorder) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates
}

func (f *fakeRecorder) wait() {
	<-f.done
}
