package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MatchRecorder persists finished matches with an external match service.
// Both calls are fire-and-forget from the caller's point of view: a
// recorded match is a best-effort side effect, never a gameplay
// precondition.
type MatchRecorder interface {
	CreateMatch(ctx context.Context, opponent, gameType string) (string, error)
	UpdateMatchResult(ctx context.Context, matchID string, scoreA, scoreB int) error
}

type httpRecorder struct {
	base   string
	client *http.Client
}

// newMatchRecorder returns nil when no match API is configured; callers
// treat a nil recorder as "recording disabled".
func newMatchRecorder(cfg *Config) MatchRecorder {
	if cfg.matchAPI == "" {
		return nil
	}
	return &httpRecorder{
		base: strings.TrimSuffix(cfg.matchAPI, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type createMatchRequest struct {
	RequestID string `json:"request_id"`
	Opponent  string `json:"opponent"`
	GameType  string `json:"game_type"`
}

type createMatchResponse struct {
	ID string `json:"id"`
}

type updateMatchRequest struct {
	ScoreA int `json:"score_a"`
	ScoreB int `json:"score_b"`
}

// CreateMatch registers a new match and returns its id. The request id
// lets the service collapse a duplicate submission arriving twice within
// a short window.
func (h *httpRecorder) CreateMatch(ctx context.Context, opponent, gameType string) (string, error) {
	body, err := json.Marshal(createMatchRequest{
		RequestID: uuid.NewString(),
		Opponent:  opponent,
		GameType:  gameType,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.base+"/matches", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create match: unexpected status %d", resp.StatusCode)
	}

	var out createMatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("create match: empty id in response")
	}
	return out.ID, nil
}

// UpdateMatchResult stores the final score for a previously created match.
func (h *httpRecorder) UpdateMatchResult(ctx context.Context, matchID string, scoreA, scoreB int) error {
	body, err := json.Marshal(updateMatchRequest{ScoreA: scoreA, ScoreB: scoreB})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, h.base+"/matches/"+matchID+"/result", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("update match %s: unexpected status %d", matchID, resp.StatusCode)
	}
	return nil
}

// recordMatch runs one submission end to end. Failures are logged and
// swallowed: the tournament never waits on persistence, and no retry is
// attempted.
func recordMatch(cfg *Config, rec MatchRecorder, opponent, gameType string, scoreA, scoreB int) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	id, err := rec.CreateMatch(ctx, opponent, gameType)
	if err != nil {
		logf(cfg, "SUBMIT: create match failed: %v", err)
		return
	}
	if err := rec.UpdateMatchResult(ctx, id, scoreA, scoreB); err != nil {
		logf(cfg, "SUBMIT: update match %s failed: %v", id, err)
		return
	}
	logf(cfg, "SUBMIT: Recorded match %s (%s) %d-%d", id, gameType, scoreA, scoreB)
}
