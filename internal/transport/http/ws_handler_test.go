package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"organelle-quiz-service/internal/domain"
	"organelle-quiz-service/internal/game"
	"organelle-quiz-service/internal/infra/memory"
	"github.com/gorilla/websocket"
)

type stateEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newTestService(t *testing.T) (*game.GameService, *memory.PrefsStore) {
	t.Helper()
	bank := []domain.Organelle{
		{
			Name:     "Mitochondrion",
			Aliases:  []string{"mitochondria"},
			Category: domain.CategoryBoth,
			Function: "Makes ATP.",
			Clues:    []string{"powerhouse", "cristae", "ATP"},
		},
	}
	sessions := memory.NewSessionStore()
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(bank), time.Minute)
	prefs := memory.NewPrefsStore()
	return game.NewGameService(sessions, catalogs, prefs), prefs
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.PrefsStore) {
	t.Helper()
	service, prefs := newTestService(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", NewWSHandler(service).ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, prefs
}

func dial(t *testing.T, server *httptest.Server, playerID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?playerId=" + playerID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readStateUntil reads state messages until predicate matches or times out.
// Timer ticks interleave with command responses, so tests must tolerate
// extra snapshots.
func readStateUntil(t *testing.T, conn *websocket.Conn, match func(domain.Snapshot) bool) domain.Snapshot {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		_ = conn.SetReadDeadline(deadline)
		var envelope stateEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			t.Fatalf("read: %v", err)
		}
		if envelope.Type != "state" {
			t.Fatalf("unexpected message type %q", envelope.Type)
		}
		var snap domain.Snapshot
		if err := json.Unmarshal(envelope.Payload, &snap); err != nil {
			t.Fatalf("decode snapshot: %v", err)
		}
		if match(snap) {
			return snap
		}
	}
	t.Fatal("no matching state message before deadline")
	return domain.Snapshot{}
}

func TestServeWSRejectsMissingPlayerID(t *testing.T) {
	server, _ := newTestServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	if _, _, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		t.Fatal("expected handshake failure without playerId")
	}
}

func TestServeWSPlaysARound(t *testing.T) {
	server, prefs := newTestServer(t)

	settings := domain.DefaultSettings()
	settings.Mode = domain.ModeFreeType
	settings.Rounds = 1
	if err := prefs.SaveSettings(context.Background(), "p1", settings); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	conn := dial(t, server, "p1")

	initial := readStateUntil(t, conn, func(s domain.Snapshot) bool { return true })
	if initial.Phase != domain.PhaseMenu {
		t.Fatalf("expected initial menu state, got %s", initial.Phase)
	}
	if initial.Settings.Rounds != 1 {
		t.Fatalf("expected hydrated settings, got %+v", initial.Settings)
	}

	if err := conn.WriteJSON(map[string]any{"type": "start"}); err != nil {
		t.Fatalf("send start: %v", err)
	}
	playing := readStateUntil(t, conn, func(s domain.Snapshot) bool {
		return s.Phase == domain.PhasePlaying
	})
	if len(playing.Clues) == 0 {
		t.Fatal("playing state carries no clues")
	}

	answer := map[string]any{"type": "answer", "payload": map[string]string{"submission": "mitochondria"}}
	if err := conn.WriteJSON(answer); err != nil {
		t.Fatalf("send answer: %v", err)
	}
	judged := readStateUntil(t, conn, func(s domain.Snapshot) bool {
		return s.Feedback != nil
	})
	if !judged.Feedback.Correct || judged.Feedback.Expected != "Mitochondrion" {
		t.Fatalf("unexpected feedback %+v", judged.Feedback)
	}
	if judged.Score <= 0 {
		t.Fatalf("expected points for a correct answer, got %d", judged.Score)
	}

	if err := conn.WriteJSON(map[string]any{"type": "next"}); err != nil {
		t.Fatalf("send next: %v", err)
	}
	result := readStateUntil(t, conn, func(s domain.Snapshot) bool {
		return s.Phase == domain.PhaseResult
	})
	if result.Summary == nil || result.Summary.CorrectCount != 1 {
		t.Fatalf("unexpected summary %+v", result.Summary)
	}
}

func TestServeWSShutsDownWhenClientVanishes(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewWSHandler(service)

	done := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handler.ServeWS(w, r)
		close(done)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	conn := dial(t, server, "p3")
	// Flood failing commands without ever reading, then drop the
	// connection. The handler must still tear down all its goroutines.
	for i := 0; i < 40; i++ {
		if err := conn.WriteJSON(map[string]any{"type": "bogus"}); err != nil {
			break
		}
	}
	_ = conn.Close()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("handler did not return after the client vanished")
	}
}

func TestServeWSReportsUnsupportedMessages(t *testing.T) {
	server, _ := newTestServer(t)
	conn := dial(t, server, "p2")

	// Drain the initial state first.
	readStateUntil(t, conn, func(s domain.Snapshot) bool { return true })

	if err := conn.WriteJSON(map[string]any{"type": "bogus"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	deadline := time.Now().Add(3 * time.Second)
	for {
		_ = conn.SetReadDeadline(deadline)
		var envelope stateEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			t.Fatalf("read: %v", err)
		}
		if envelope.Type == "error" {
			var payload struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
				t.Fatalf("decode error payload: %v", err)
			}
			if payload.Message == "" {
				t.Fatal("empty error message")
			}
			return
		}
	}
}
