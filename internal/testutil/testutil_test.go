package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/games"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/players"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
)

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected buffered log output, got %q", buf.String())
	}
}

func TestServerStubs(t *testing.T) {
	w := &StubWatcher{Err: errors.New("stop")}
	w.Start(context.Background())
	if err := w.Stop(context.Background()); !errors.Is(err, w.Err) {
		t.Fatalf("expected stop error")
	}
	if w.StartCalls != 1 || w.StopCalls != 1 {
		t.Fatalf("unexpected call counts %+v", w)
	}
	if w.Status() != w.StatusVal {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down"), AddrVal: ":1"}
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	if sh.Addr() != ":1" || sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("unexpected stub server state %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{})}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error")
	}
	_ = e.Shutdown(context.Background())
	if e.ShutdownCalls != 1 || e.Handler() == nil {
		t.Fatalf("unexpected err server state %+v", e)
	}
}

func getJSON(t *testing.T, url string, dest any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if dest != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, dest any) int {
	t.Helper()
	var resp *http.Response
	var err error
	if body == "" {
		resp, err = http.Post(url, "", nil)
	} else {
		resp, err = http.Post(url, "application/json", strings.NewReader(body))
	}
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	if dest != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestFakeBackendServesSeededData(t *testing.T) {
	fb := NewFakeBackend(t)
	team := fb.SeedTeam("Hawks", nil)
	fb.SeedPlayer("Sam", "QB", &team.ID)

	var gotTeams []teams.Team
	if status := getJSON(t, fb.URL()+"/teams", &gotTeams); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(gotTeams) != 1 || gotTeams[0].Name != "Hawks" || gotTeams[0].ID != 1 {
		t.Fatalf("unexpected teams %+v", gotTeams)
	}

	var gotPlayers []players.Player
	getJSON(t, fb.URL()+"/players", &gotPlayers)
	if len(gotPlayers) != 1 || gotPlayers[0].TeamID == nil || *gotPlayers[0].TeamID != team.ID {
		t.Fatalf("unexpected players %+v", gotPlayers)
	}

	var health map[string]string
	getJSON(t, fb.URL()+"/health", &health)
	if health["status"] != "ok" {
		t.Fatalf("unexpected health %+v", health)
	}
}

func TestFakeBackendCreatesWithIncrementingIDs(t *testing.T) {
	fb := NewFakeBackend(t)

	var first, second teams.Team
	postJSON(t, fb.URL()+"/teams", `{"name":"A"}`, &first)
	postJSON(t, fb.URL()+"/teams", `{"name":"B"}`, &second)
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	if status := postJSON(t, fb.URL()+"/players", `{"name":"","position":"QB"}`, nil); status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing name, got %d", status)
	}

	reqs := fb.Requests()
	if len(reqs) != 3 || reqs[0].ContentType != "application/json" || string(reqs[0].Body) != `{"name":"A"}` {
		t.Fatalf("unexpected recorded requests %+v", reqs)
	}
	if fb.RequestCount(http.MethodPost, "/teams") != 2 {
		t.Fatalf("expected two team posts")
	}
}

func TestFakeBackendSimulation(t *testing.T) {
	fb := NewFakeBackend(t)

	var res games.SimulationResult
	postJSON(t, fb.URL()+"/simulate-game/3", "", &res)
	if res.GameID != 3 || res.Home != 21 || res.Away != 17 || res.Winner != games.WinnerHome {
		t.Fatalf("unexpected default result %+v", res)
	}

	fb.SetSimulationResult(games.SimulationResult{Home: 10, Away: 24, Winner: games.WinnerAway})
	postJSON(t, fb.URL()+"/simulate-game/1", "", &res)
	if res.GameID != 1 || res.Away != 24 || res.Winner != games.WinnerAway {
		t.Fatalf("unexpected configured result %+v", res)
	}

	if status := postJSON(t, fb.URL()+"/simulate-game/0", "", nil); status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for game id 0, got %d", status)
	}
}

func TestFakeBackendFailureInjection(t *testing.T) {
	fb := NewFakeBackend(t)
	fb.Fail(http.MethodGet, "/teams", http.StatusServiceUnavailable)

	if status := getJSON(t, fb.URL()+"/teams", nil); status != http.StatusServiceUnavailable {
		t.Fatalf("expected injected 503, got %d", status)
	}
	if status := getJSON(t, fb.URL()+"/owners", nil); status != http.StatusOK {
		t.Fatalf("expected other routes unaffected, got %d", status)
	}

	fb.ClearFailures()
	if status := getJSON(t, fb.URL()+"/teams", nil); status != http.StatusOK {
		t.Fatalf("expected recovery after clear, got %d", status)
	}
}
