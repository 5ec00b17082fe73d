package sections

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func testLookup(category, section string) ([]Section, bool) {
	if category != "web" || section != "overview" {
		return nil, false
	}
	return WithTop("Overview", []Section{
		{ID: "setup", Title: "Setup"},
		{ID: "routing", Title: "Routing"},
	}), true
}

func dialSync(t *testing.T, params string) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(NewSyncHandler(testLookup))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/?" + params
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSyncUnknownPageRejected(t *testing.T) {
	server := httptest.NewServer(NewSyncHandler(testLookup))
	defer server.Close()

	resp, err := http.Get(server.URL + "/?category=web&section=nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSyncInitialActiveIsSentinel(t *testing.T) {
	conn := dialSync(t, "category=web&section=overview")

	var update activeUpdate
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read: %v", err)
	}
	if update.Active != TopSentinel {
		t.Errorf("initial active = %q, want sentinel", update.Active)
	}
}

func TestSyncScrollFramesDriveActive(t *testing.T) {
	conn := dialSync(t, "category=web&section=overview")

	var update activeUpdate
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read initial: %v", err)
	}

	frame := scrollFrame{
		ScrollTop: 400,
		Headings: []headingSpot{
			{ID: "setup", Top: -300},
			{ID: "routing", Top: 50},
		},
	}
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if update.Active != "routing" {
		t.Errorf("active = %q, want %q", update.Active, "routing")
	}

	// Scrolling back to the top transitions to the sentinel.
	back := scrollFrame{ScrollTop: 10, Headings: frame.Headings}
	if err := conn.WriteJSON(back); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if update.Active != TopSentinel {
		t.Errorf("active = %q, want sentinel", update.Active)
	}
}
