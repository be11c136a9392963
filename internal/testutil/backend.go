package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/games"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/owners"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/players"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
)

// FakeAPIPrefix is where the fake mounts its routes, matching the real service.
const FakeAPIPrefix = "/api"

// RecordedRequest is one request seen by the fake backend.
type RecordedRequest struct {
	Method      string
	Path        string // relative to FakeAPIPrefix
	ContentType string
	Body        []byte
}

// FakeBackend is an in-memory stand-in for the gridiron service with failure injection.
type FakeBackend struct {
	mu        sync.Mutex
	server    *httptest.Server
	health    string
	version   string
	owners    []owners.Owner
	teams     []teams.Team
	players   []players.Player
	nextID    map[string]int
	failures  map[string]int
	requests  []RecordedRequest
	simResult *games.SimulationResult
}

// NewFakeBackend starts a fake backend that is closed when the test ends.
func NewFakeBackend(t testing.TB) *FakeBackend {
	t.Helper()
	f := &FakeBackend{
		health:   "ok",
		version:  "0.2.0",
		nextID:   map[string]int{"owner": 1, "team": 1, "player": 1},
		failures: make(map[string]int),
	}
	f.server = httptest.NewServer(f.routes())
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the base URL including the API prefix.
func (f *FakeBackend) URL() string {
	return f.server.URL + FakeAPIPrefix
}

// Close shuts the server down early, e.g. to simulate a network failure.
func (f *FakeBackend) Close() {
	f.server.Close()
}

// Fail makes every request to method+path answer with status until cleared.
func (f *FakeBackend) Fail(method, path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = status
}

// ClearFailures removes all injected failures.
func (f *FakeBackend) ClearFailures() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = make(map[string]int)
}

// SetSimulationResult fixes the next simulation outcomes.
func (f *FakeBackend) SetSimulationResult(res games.SimulationResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.simResult = &res
}

// SeedOwner adds an owner directly and returns it.
func (f *FakeBackend) SeedOwner(name string) owners.Owner {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := owners.Owner{ID: f.takeID("owner"), Name: name}
	f.owners = append(f.owners, o)
	return o
}

// SeedTeam adds a team directly and returns it.
func (f *FakeBackend) SeedTeam(name string, ownerID *int) teams.Team {
	f.mu.Lock()
	defer f.mu.Unlock()
	tm := teams.Team{ID: f.takeID("team"), Name: name, OwnerID: ownerID}
	f.teams = append(f.teams, tm)
	return tm
}

// SeedPlayer adds a player directly and returns it.
func (f *FakeBackend) SeedPlayer(name, position string, teamID *int) players.Player {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := players.Player{ID: f.takeID("player"), Name: name, Position: position, TeamID: teamID}
	f.players = append(f.players, p)
	return p
}

// Requests returns a copy of every request seen so far.
func (f *FakeBackend) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// RequestCount counts requests matching method and path.
func (f *FakeBackend) RequestCount(method, path string) int {
	count := 0
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			count++
		}
	}
	return count
}

func (f *FakeBackend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(f.record)
	r.Route(FakeAPIPrefix, func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			writeFakeJSON(w, http.StatusOK, map[string]string{"status": f.health})
		})
		r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			writeFakeJSON(w, http.StatusOK, map[string]string{"version": f.version})
		})
		r.Get("/owners", func(w http.ResponseWriter, _ *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			writeFakeJSON(w, http.StatusOK, append([]owners.Owner{}, f.owners...))
		})
		r.Get("/teams", func(w http.ResponseWriter, _ *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			writeFakeJSON(w, http.StatusOK, append([]teams.Team{}, f.teams...))
		})
		r.Get("/players", func(w http.ResponseWriter, _ *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			writeFakeJSON(w, http.StatusOK, append([]players.Player{}, f.players...))
		})
		r.Post("/owners", f.createOwner)
		r.Post("/teams", f.createTeam)
		r.Post("/players", f.createPlayer)
		r.Post("/simulate-game/{gameID}", f.simulateGame)
	})
	return r
}

// record captures the request and applies injected failures before routing.
func (f *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		path := strings.TrimPrefix(r.URL.Path, FakeAPIPrefix)
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method:      r.Method,
			Path:        path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		status, failing := f.failures[r.Method+" "+path]
		f.mu.Unlock()

		if failing {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeBackend) createOwner(w http.ResponseWriter, r *http.Request) {
	var in owners.Create
	if !decodeFakeBody(w, r, &in) || !requireName(w, in.Name) {
		return
	}
	writeFakeJSON(w, http.StatusOK, f.SeedOwner(in.Name))
}

func (f *FakeBackend) createTeam(w http.ResponseWriter, r *http.Request) {
	var in teams.Create
	if !decodeFakeBody(w, r, &in) || !requireName(w, in.Name) {
		return
	}
	writeFakeJSON(w, http.StatusOK, f.SeedTeam(in.Name, in.OwnerID))
}

func (f *FakeBackend) createPlayer(w http.ResponseWriter, r *http.Request) {
	var in players.Create
	if !decodeFakeBody(w, r, &in) || !requireName(w, in.Name) {
		return
	}
	if in.Position == "" {
		writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "position required"})
		return
	}
	writeFakeJSON(w, http.StatusOK, f.SeedPlayer(in.Name, in.Position, in.TeamID))
}

func (f *FakeBackend) simulateGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil || id < 1 {
		writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "game id must be >= 1"})
		return
	}

	f.mu.Lock()
	res := games.SimulationResult{GameID: id, Home: 21, Away: 17, Winner: games.WinnerHome}
	if f.simResult != nil {
		res = *f.simResult
		res.GameID = id
	}
	f.mu.Unlock()

	writeFakeJSON(w, http.StatusOK, res)
}

// caller must hold f.mu
func (f *FakeBackend) takeID(kind string) int {
	id := f.nextID[kind]
	f.nextID[kind] = id + 1
	return id
}

func decodeFakeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": fmt.Sprintf("invalid body: %v", err)})
		return false
	}
	return true
}

func requireName(w http.ResponseWriter, name string) bool {
	if name == "" {
		writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "name required"})
		return false
	}
	return true
}

func writeFakeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
