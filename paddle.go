// Paddlebox Paddle-Ball
//
// Two or three players share one keyboard and one canvas: left and right
// paddles guard the sides, and in three-player mode a bottom paddle guards
// the floor. First side to five points wins the match. Tournament night
// seats the local player plus two named guests and plays a round-robin
// with byes until two players hold two wins each, then a single final
// decides the champion.
//
// Features:
// - WebSockets per game ID: /paddle/:gameid and /paddle/:gameid/ws
// - One hub goroutine per game ID owns all simulation and tournament state
// - Fixed 60 Hz simulation tick, 30 Hz state broadcast
// - Players identified by cookie (playerID); the cookie is the account
//   the tournament's local seat binds to
// - Quick match (2 or 3 paddles) or full tournament from the same hub
// - Session epochs: ending a tournament mints a fresh token, and anything
//   still carrying the old token is silently dropped
// - Finished matches are recorded with an external match service when
//   --match-api is set; failures are logged, never retried
// - Games auto-reaped after configurable idle timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"log"
	mrand "math/rand"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/lowermill/paddlebox/game"
)

const (
	simTickHz   = 60
	broadcastHz = 30

	modeQuick2     = "quick2"
	modeQuick3     = "quick3"
	modeTournament = "tournament"
)

// Messages coming from clients
type ClientMessage struct {
	Type    string   `json:"type"`              // "roster", "start", "pause", "key", "next_match", "end_tournament"
	Mode    string   `json:"mode,omitempty"`    // roster: quick2 / quick3 / tournament
	Alias   string   `json:"alias,omitempty"`   // roster: local player's display name
	Guests  []string `json:"guests,omitempty"`  // roster: guest aliases
	Control string   `json:"control,omitempty"` // key
	Held    *bool    `json:"held,omitempty"`    // key
}

// SessionInfoMessage is sent on connect and whenever the table is reset,
// so the client knows what to draw and which phase it is in.
type SessionInfoMessage struct {
	Type         string  `json:"type"` // "session_info"
	Mode         string  `json:"mode,omitempty"`
	Status       string  `json:"status"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	PaddleWidth  float64 `json:"paddle_width"`
	PaddleHeight float64 `json:"paddle_height"`
	BottomWidth  float64 `json:"bottom_width"`
	BottomHeight float64 `json:"bottom_height"`
	BallSize     float64 `json:"ball_size"`
	WinThreshold int     `json:"win_threshold"`
}

// StateMessage is the per-tick simulation snapshot.
type StateMessage struct {
	Type        string     `json:"type"` // "state"
	Status      string     `json:"status"`
	LeftY       float64    `json:"left_y"`
	RightY      float64    `json:"right_y"`
	BottomX     float64    `json:"bottom_x,omitempty"`
	BallX       float64    `json:"ball_x"`
	BallY       float64    `json:"ball_y"`
	Score       game.Score `json:"score"`
	Multiplayer bool       `json:"multiplayer"`
}

// MatchOverMessage announces one finished match.
type MatchOverMessage struct {
	Type   string     `json:"type"` // "match_over"
	Winner string     `json:"winner"`
	Side   game.Side  `json:"side"`
	Score  game.Score `json:"score"`
}

// StandingsEntry is one row of the tournament table.
type StandingsEntry struct {
	Alias string `json:"alias"`
	Wins  int    `json:"wins"`
}

// NextMatchInfo describes the scheduled pairing.
type NextMatchInfo struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Bye   string `json:"bye,omitempty"`
	Final bool   `json:"final,omitempty"`
}

// StandingsMessage broadcasts the tournament table and the next pairing.
type StandingsMessage struct {
	Type       string           `json:"type"` // "standings"
	Players    []StandingsEntry `json:"players"`
	Round      int              `json:"round"`
	FinalRound bool             `json:"final_round"`
	Champion   string           `json:"champion,omitempty"`
	NextMatch  *NextMatchInfo   `json:"next_match,omitempty"`
}

// SimpleMessage carries error notices and other one-line notifications.
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type clientRequest struct {
	client *Client
	msg    ClientMessage
}

// Hub owns one table: the current match session, the key table, and the
// tournament director. All of it is mutated only from the run goroutine,
// driven by client messages and the simulation ticker. The reaper reads
// lastActive under mu.
type Hub struct {
	id      string
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	msgs     chan clientRequest
	quit     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time

	cfg *Config
	rec MatchRecorder
	geo game.Geometry
	rng *mrand.Rand

	// Current session epoch. Everything asynchronous carries a copy and
	// is dropped if it no longer matches.
	token string

	mode       string
	local      *game.Player
	guests     []*game.Player
	director   *game.Director
	session    *game.Session
	pending    *game.Pairing
	byeAlias   string
	submitting atomic.Bool
}

func newHub(cfg *Config, rec MatchRecorder, gameID string) *Hub {
	now := time.Now()
	return &Hub{
		id:         gameID,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		msgs:       make(chan clientRequest),
		quit:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
		cfg:        cfg,
		rec:        rec,
		geo:        game.DefaultGeometry(),
		rng:        mrand.New(mrand.NewSource(now.UnixNano())),
		token:      uuid.NewString(),
	}
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		close(h.quit)
	})
}

func (h *Hub) run() {
	ticker := time.NewTicker(time.Second / simTickHz)
	defer ticker.Stop()

	broadcastEvery := simTickHz / broadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	tickCount := 0

	for {
		select {
		case <-h.quit:
			return

		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = time.Now()
			h.clients[c] = true
			h.mu.Unlock()

			c.send <- h.sessionInfo()
			if h.director != nil {
				c.send <- h.standings()
			}

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case req := <-h.msgs:
			h.mu.Lock()
			h.lastActive = time.Now()
			h.mu.Unlock()
			h.handleMessage(req)

		case <-ticker.C:
			if h.session == nil {
				continue
			}
			// A superseded session is never ticked again; dropping it
			// here is the loop's self-termination for that match.
			if h.session.Token() != h.token {
				h.session = nil
				continue
			}
			h.session.Tick()
			tickCount++
			if tickCount%broadcastEvery == 0 {
				h.broadcastState()
			}
		}
	}
}

func (h *Hub) handleMessage(req clientRequest) {
	msg := req.msg

	switch msg.Type {
	case "roster":
		h.handleRoster(req)
	case "start":
		if h.session != nil && h.session.Token() == h.token {
			h.session.Start()
			h.broadcastState()
		}
	case "pause":
		if h.session != nil && h.session.Token() == h.token {
			h.session.TogglePause()
			h.broadcastState()
		}
	case "key":
		if h.session != nil && msg.Held != nil && h.session.Token() == h.token {
			h.session.SetKey(game.Control(msg.Control), *msg.Held)
		}
	case "next_match":
		h.startPending()
	case "end_tournament":
		h.endTournament()
	default:
		// ignore unknown types
	}
}

// handleRoster seats the table. The local seat binds to the requesting
// cookie; guests are names on the same keyboard.
func (h *Hub) handleRoster(req clientRequest) {
	msg := req.msg

	alias := strings.TrimSpace(msg.Alias)
	if alias == "" {
		alias = "Player 1"
	}

	switch msg.Mode {
	case modeQuick2, modeQuick3, modeTournament:
	default:
		select {
		case req.client.send <- SimpleMessage{Type: "error", Message: "unknown mode"}:
		default:
		}
		return
	}

	wantGuests := 1
	if msg.Mode == modeQuick3 || msg.Mode == modeTournament {
		wantGuests = 2
	}

	guests := make([]*game.Player, 0, wantGuests)
	for i := 0; i < wantGuests; i++ {
		guestAlias := ""
		if i < len(msg.Guests) {
			guestAlias = strings.TrimSpace(msg.Guests[i])
		}
		if guestAlias == "" {
			guestAlias = "Guest " + string(rune('1'+i))
		}
		guests = append(guests, &game.Player{
			ID:    "g" + string(rune('1'+i)),
			Alias: guestAlias,
		})
	}

	// A new roster is a full reset: fresh epoch, everything stale dies.
	h.token = uuid.NewString()
	h.mode = msg.Mode
	h.session = nil
	h.pending = nil
	h.byeAlias = ""
	h.director = nil
	h.local = &game.Player{
		ID:             "p1",
		Alias:          alias,
		BoundAccountID: req.client.playerID,
	}
	h.guests = guests

	logf(h.cfg, "GAMES: Roster %q set for %s (%s)", alias, h.id, h.mode)

	switch h.mode {
	case modeQuick2:
		h.seatSession(map[game.Side]game.Player{
			game.SideLeft:  *h.local,
			game.SideRight: *guests[0],
		})
	case modeQuick3:
		h.seatSession(map[game.Side]game.Player{
			game.SideLeft:   *h.local,
			game.SideRight:  *guests[0],
			game.SideBottom: *guests[1],
		})
	case modeTournament:
		h.director = game.NewDirector(h.token, h.rng, h.local, guests[0], guests[1])
		h.applyOutcome(h.director.InitialPairing())
	}

	h.broadcastAll(h.sessionInfo())
	if h.director != nil {
		h.broadcastAll(h.standings())
	}
	h.broadcastState()
}

// seatSession builds a fresh match bound to the current epoch.
func (h *Hub) seatSession(seats map[game.Side]game.Player) {
	token := h.token
	s := game.NewSession(h.geo, token, seats, h.rng)
	s.OnComplete = func(res game.Result) {
		// OnComplete fires synchronously from Tick in the run goroutine.
		if res.Token != h.token {
			return
		}
		h.handleResult(res)
	}
	h.session = s
}

// applyOutcome reacts to a director decision: queue the next pairing, or
// finish the tournament.
func (h *Hub) applyOutcome(out game.Outcome) {
	h.pending = out.Next
	h.byeAlias = ""
	if out.Next != nil && out.Next.Bye != nil {
		h.byeAlias = out.Next.Bye.Alias
	}
	if out.Champion != nil {
		logf(h.cfg, "GAMES: Champion %q declared in %s", out.Champion.Alias, h.id)
	}
}

// startPending seats the scheduled pairing as the next match.
func (h *Hub) startPending() {
	if h.director == nil || h.pending == nil {
		return
	}
	p := h.pending
	h.pending = nil
	h.seatSession(map[game.Side]game.Player{
		game.SideLeft:  *p.A,
		game.SideRight: *p.B,
	})
	h.broadcastAll(h.sessionInfo())
	h.broadcastState()
}

// handleResult books a finished match, schedules what follows, and kicks
// off the fire-and-forget submission.
func (h *Hub) handleResult(res game.Result) {
	winner := res.Winner.Alias
	h.broadcastAll(MatchOverMessage{
		Type:   "match_over",
		Winner: winner,
		Side:   res.Side,
		Score:  res.Score,
	})
	logf(h.cfg, "GAMES: %q won a match in %s (%d-%d)", winner, h.id, res.Score.Left, res.Score.Right)

	h.submitResult(res)

	if h.director == nil {
		return
	}
	h.applyOutcome(h.director.Advance(res))
	h.broadcastAll(h.standings())
}

// submitResult records the match with the external service, if one is
// configured. The in-flight guard prevents a double submission; it is
// cleared when the attempt ends, successful or not. The next match may
// start while this is still running.
func (h *Hub) submitResult(res game.Result) {
	if h.rec == nil {
		return
	}
	if !h.submitting.CompareAndSwap(false, true) {
		return
	}

	opponent := res.Seats[game.SideRight].Alias
	if res.Side == game.SideRight {
		opponent = res.Seats[game.SideLeft].Alias
	}
	mode := h.mode
	scoreA, scoreB := res.Score.Left, res.Score.Right

	go func() {
		defer h.submitting.Store(false)
		recordMatch(h.cfg, h.rec, opponent, mode, scoreA, scoreB)
	}()
}

// endTournament clears all tournament state and mints a fresh epoch,
// stranding every callback scheduled under the old one.
func (h *Hub) endTournament() {
	h.token = uuid.NewString()
	if h.director != nil {
		h.director.EndTournament(h.token)
	}
	h.director = nil
	h.session = nil
	h.pending = nil
	h.byeAlias = ""
	h.mode = ""
	h.local = nil
	h.guests = nil

	logf(h.cfg, "GAMES: Tournament ended in %s", h.id)

	h.broadcastAll(h.sessionInfo())
}

func (h *Hub) sessionInfo() SessionInfoMessage {
	status := game.StatusIdle.String()
	if h.session != nil {
		status = h.session.Status().String()
	}
	return SessionInfoMessage{
		Type:         "session_info",
		Mode:         h.mode,
		Status:       status,
		Width:        h.geo.Width,
		Height:       h.geo.Height,
		PaddleWidth:  h.geo.PaddleWidth,
		PaddleHeight: h.geo.PaddleHeight,
		BottomWidth:  h.geo.BottomPaddleWidth,
		BottomHeight: h.geo.BottomPaddleHeight,
		BallSize:     h.geo.BallSize,
		WinThreshold: h.geo.WinThreshold,
	}
}

func (h *Hub) standings() StandingsMessage {
	msg := StandingsMessage{
		Type:       "standings",
		Round:      h.director.Round(),
		FinalRound: h.director.FinalRound(),
	}
	for _, p := range h.director.Players() {
		msg.Players = append(msg.Players, StandingsEntry{Alias: p.Alias, Wins: p.Wins})
	}
	if champ := h.director.Champion(); champ != nil {
		msg.Champion = champ.Alias
	}
	if h.pending != nil {
		msg.NextMatch = &NextMatchInfo{
			A:     h.pending.A.Alias,
			B:     h.pending.B.Alias,
			Bye:   h.byeAlias,
			Final: h.pending.Final,
		}
	}
	return msg
}

func (h *Hub) broadcastState() {
	if h.session == nil {
		return
	}
	st := h.session.State()
	h.broadcastAll(StateMessage{
		Type:        "state",
		Status:      h.session.Status().String(),
		LeftY:       st.LeftY,
		RightY:      st.RightY,
		BottomX:     st.BottomX,
		BallX:       st.Ball.X,
		BallY:       st.Ball.Y,
		Score:       st.Score,
		Multiplayer: st.Multiplayer,
	})
}

func (h *Hub) broadcastAll(msg any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// closeAll disconnects all clients of this hub (used by reaper).
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "paddlebox_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated table.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	idleTimeout time.Duration
}

func newGameManager(idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, rec MatchRecorder, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(cfg, rec, gameID)
	gm.hubs[gameID] = hub
	go hub.run()
	return hub
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-gm.idleTimeout)

		gm.mu.Lock()
		for id, hub := range gm.hubs {
			hub.mu.RLock()
			last := hub.lastActive
			hub.mu.RUnlock()

			if last.Before(cutoff) {
				delete(gm.hubs, id)
				hub.stop()
				go hub.closeAll()
			}
		}
		gm.mu.Unlock()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, rec MatchRecorder, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		hub := gm.getHub(cfg, rec, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "roster", "start", "pause", "key", "next_match", "end_tournament":
			h.msgs <- clientRequest{
				client: c,
				msg:    msg,
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed paddle/index.html
var indexHTML []byte

//go:embed paddle/app.css
var paddleboxCSS []byte

//go:embed paddle/app.js
var paddleboxJS []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(indexHTML)
	}
}

func getCssHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(paddleboxCSS)
	}
}

func getJsHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(paddleboxJS)
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerPaddleGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerPaddleGame(cfg *Config, path string, mux *httprouter.Router) {
	gm := newGameManager(cfg.sessionTimeout)
	rec := newMatchRecorder(cfg)

	// Root path → redirect to new random game
	mux.GET(cfg.prefix+path, redirectNewGame(cfg, cfg.prefix+path, gm))

	// Per-game client view (HTML)
	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg))

	// Shared assets (no gameid in route)
	mux.GET(cfg.prefix+"/assets/paddle/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/paddle/app.js", getJsHandler(cfg))

	// Per-game websocket
	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, rec, gm))

	// Per-game QR code
	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)
}
