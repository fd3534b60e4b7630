package communication

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/CasterlyGit/Home/models"
	"github.com/CasterlyGit/Home/navigation"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func dialHub(t *testing.T, hub *Hub, sessionID string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(conn, r.URL.Query().Get("sessionId"))
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?sessionId=" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubDeliversStageChanges(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "s1")

	// Registration goes through the hub's event loop; give it a beat.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() == 0 {
		t.Fatal("client never registered")
	}

	hub.Observer()(navigation.Snapshot{
		SessionID:      "s1",
		Stage:          navigation.StagePlanetFocus,
		TargetPosition: models.Vector3{X: 10},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event struct {
		Type    string              `json:"type"`
		Payload navigation.Snapshot `json:"payload"`
	}
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if event.Type != EventStageChange {
		t.Errorf("event type = %q; want %q", event.Type, EventStageChange)
	}
	if event.Payload.Stage != navigation.StagePlanetFocus {
		t.Errorf("payload stage = %v; want planet", event.Payload.Stage)
	}
	if event.Payload.TargetPosition.X != 10 {
		t.Errorf("payload target = %v; want x=10", event.Payload.TargetPosition)
	}
}

func TestHubFiltersBySession(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "mine")

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	// An event for another session must not reach this client.
	hub.Observer()(navigation.Snapshot{SessionID: "other", Stage: navigation.StageTraitFocus})
	hub.Observer()(navigation.Snapshot{SessionID: "mine", Stage: navigation.StagePlanetFocus})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event struct {
		Payload navigation.Snapshot `json:"payload"`
	}
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if event.Payload.SessionID != "mine" {
		t.Errorf("received event for session %q; want mine", event.Payload.SessionID)
	}
}
