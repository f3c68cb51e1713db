package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestRecorderDisabledWithoutEndpoint(t *testing.T) {
	if rec := newMatchRecorder(&Config{}); rec != nil {
		t.Fatalf("expected nil recorder without --match-api, got %T", rec)
	}
}

func TestRecorderCreatesAndUpdates(t *testing.T) {
	var gotCreate createMatchRequest
	var gotUpdate updateMatchRequest
	var updatePath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/matches":
			if err := json.NewDecoder(r.Body).Decode(&gotCreate); err != nil {
				t.Errorf("decode create: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(createMatchResponse{ID: "m-42"})
		case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/result"):
			updatePath = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&gotUpdate); err != nil {
				t.Errorf("decode update: %v", err)
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := &Config{matchAPI: srv.URL}
	rec := newMatchRecorder(cfg)
	if rec == nil {
		t.Fatal("expected recorder")
	}

	recordMatch(cfg, rec, "Grace", "quick2", 5, 3)

	if gotCreate.Opponent != "Grace" || gotCreate.GameType != "quick2" {
		t.Fatalf("create payload: %+v", gotCreate)
	}
	if gotCreate.RequestID == "" {
		t.Fatal("expected non-empty request_id")
	}
	if updatePath != "/matches/m-42/result" {
		t.Fatalf("update path: %q", updatePath)
	}
	if gotUpdate.ScoreA != 5 || gotUpdate.ScoreB != 3 {
		t.Fatalf("update payload: %+v", gotUpdate)
	}
}

func TestRecordMatchFailureIsNotRetried(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := &Config{matchAPI: srv.URL}
	rec := newMatchRecorder(cfg)

	recordMatch(cfg, rec, "Grace", "tournament", 5, 1)

	if got := hits.Load(); got != 1 {
		t.Fatalf("expected exactly one attempt, got %d", got)
	}
}

func TestCreateMatchRejectsEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(createMatchResponse{})
	}))
	defer srv.Close()

	rec := newMatchRecorder(&Config{matchAPI: srv.URL})

	if _, err := rec.CreateMatch(context.Background(), "Joan", "quick3"); err == nil {
		t.Fatal("expected error for empty match id")
	}
}
