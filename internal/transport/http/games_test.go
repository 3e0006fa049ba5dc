package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-minimax/internal/service/bot"
	"github.com/iamasit07/connect4-minimax/internal/service/game"
	"github.com/iamasit07/connect4-minimax/pkg/auth"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sm := game.NewSessionManager(bot.DefaultConfig(), nil, time.Hour)
	h := NewGameHandler(sm, auth.NewIssuer("test-secret", time.Hour))
	return NewRouter(h, nil, []string{"http://allowed.example"})
}

func do(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createGame(t *testing.T, router *gin.Engine) createGameResponse {
	t.Helper()
	w := do(router, http.MethodPost, "/api/games", "", `{"difficulty":"hard"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var resp createGameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
}

func TestCreateGame(t *testing.T) {
	router := newTestRouter(t)
	resp := createGame(t, router)

	if resp.GameID == "" || resp.Token == "" {
		t.Fatalf("missing id or token: %+v", resp)
	}
	if resp.State.Status != "in_progress" || resp.State.Turn != "black" {
		t.Fatalf("unexpected state %+v", resp.State)
	}
	if resp.State.Message != "Game has not finish yet!" {
		t.Fatalf("unexpected message %q", resp.State.Message)
	}
	if len(resp.State.LegalColumns) != 7 {
		t.Fatalf("expected 7 legal columns, got %v", resp.State.LegalColumns)
	}

	// empty body uses the default difficulty
	if w := do(router, http.MethodPost, "/api/games", "", ""); w.Code != http.StatusCreated {
		t.Fatalf("empty body: status %d", w.Code)
	}
	if w := do(router, http.MethodPost, "/api/games", "", `{"difficulty":"godlike"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown difficulty: status %d", w.Code)
	}
}

func TestMakeMove(t *testing.T) {
	router := newTestRouter(t)
	g := createGame(t, router)
	path := "/api/games/" + g.GameID + "/moves"

	w := do(router, http.MethodPost, path, g.Token, `{"column":"4"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var resp moveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.HumanColumn != 4 || resp.ComputerColumn != 1 {
		t.Fatalf("unexpected move response %+v", resp)
	}
	if resp.State.Board[5][3] != 1 || resp.State.Board[5][0] != 2 {
		t.Fatalf("unexpected bottom row %v", resp.State.Board[5])
	}

	// numeric column is accepted too
	if w := do(router, http.MethodPost, path, g.Token, `{"column":4}`); w.Code != http.StatusOK {
		t.Fatalf("numeric column: status %d, body %s", w.Code, w.Body.String())
	}

	for _, body := range []string{`{"column":"9"}`, `{"column":"x"}`, `{}`, `not json`} {
		if w := do(router, http.MethodPost, path, g.Token, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status %d, want 400", body, w.Code)
		}
	}
}

func TestMakeMove_FinishedGame(t *testing.T) {
	router := newTestRouter(t)
	g := createGame(t, router)
	path := "/api/games/" + g.GameID + "/moves"

	var last moveResponse
	for i := 0; i < 5; i++ {
		w := do(router, http.MethodPost, path, g.Token, `{"column":"4"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("move %d: status %d, body %s", i+1, w.Code, w.Body.String())
		}
		json.Unmarshal(w.Body.Bytes(), &last)
	}
	if last.State.Status != "white_wins" || last.State.Winner != "white" {
		t.Fatalf("expected white to win, got %+v", last.State)
	}
	if last.State.Message != "White play wins the game!" {
		t.Fatalf("unexpected message %q", last.State.Message)
	}
	if len(last.State.LegalColumns) != 0 {
		t.Fatalf("finished game reports legal columns %v", last.State.LegalColumns)
	}

	if w := do(router, http.MethodPost, path, g.Token, `{"column":"2"}`); w.Code != http.StatusConflict {
		t.Fatalf("move after game over: status %d, want 409", w.Code)
	}
}

func TestGameAuth(t *testing.T) {
	router := newTestRouter(t)
	a := createGame(t, router)
	b := createGame(t, router)

	if w := do(router, http.MethodGet, "/api/games/"+a.GameID, "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d", w.Code)
	}
	if w := do(router, http.MethodGet, "/api/games/"+a.GameID, b.Token, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("other game's token: status %d", w.Code)
	}
	if w := do(router, http.MethodGet, "/api/games/"+a.GameID+"?token="+a.Token, "", ""); w.Code != http.StatusOK {
		t.Fatalf("query token: status %d", w.Code)
	}
	if w := do(router, http.MethodGet, "/api/games/not-a-game-id", a.Token, ""); w.Code != http.StatusNotFound {
		t.Fatalf("malformed id: status %d, want 404", w.Code)
	}
}

func TestGetBoardAndDelete(t *testing.T) {
	router := newTestRouter(t)
	g := createGame(t, router)

	w := do(router, http.MethodGet, "/api/games/"+g.GameID+"/board", g.Token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("board: status %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), " 01 02 03 04 05 06 07\n") {
		t.Fatalf("unexpected board text %q", w.Body.String())
	}
	if !strings.HasSuffix(w.Body.String(), "Game has not finish yet!\n") {
		t.Fatalf("missing status line in %q", w.Body.String())
	}

	if w := do(router, http.MethodDelete, "/api/games/"+g.GameID, g.Token, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}
	if w := do(router, http.MethodGet, "/api/games/"+g.GameID, g.Token, ""); w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	req.Header.Set("Origin", "http://allowed.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "http://allowed.example" {
		t.Fatalf("allowed preflight: %d %v", w.Code, w.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("disallowed origin: status %d", w.Code)
	}
}
