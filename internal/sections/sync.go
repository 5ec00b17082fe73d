package sections

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ListFunc resolves the ordered section list (sentinel first) for a page,
// identified by category and section slug. ok is false for unknown pages.
type ListFunc func(category, section string) ([]Section, bool)

// SyncHandler tracks scroll position for connected pages over a WebSocket.
// Each connection owns one Tracker; the page streams scroll geometry frames
// and receives active-section updates to drive its sidebar highlight.
type SyncHandler struct {
	lookup ListFunc
}

// NewSyncHandler creates a SyncHandler backed by the given section lookup.
func NewSyncHandler(lookup ListFunc) *SyncHandler {
	return &SyncHandler{lookup: lookup}
}

// scrollFrame is the incoming WebSocket message: one scroll-geometry
// snapshot of the content pane.
type scrollFrame struct {
	ScrollTop float64       `json:"scroll_top"`
	Headings  []headingSpot `json:"headings"`
}

// headingSpot reports one rendered heading's top edge relative to the
// container top. Headings absent from the frame are treated as unrendered.
type headingSpot struct {
	ID  string  `json:"id"`
	Top float64 `json:"top"`
}

// activeUpdate is the outgoing WebSocket message.
type activeUpdate struct {
	Active string `json:"active"`
}

func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	section := r.URL.Query().Get("section")

	secs, ok := h.lookup(category, section)
	if !ok {
		http.Error(w, "unknown page", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("sections: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	snap := &frameContainer{}
	tracker := NewTracker(snap, secs, WithOnChange(func(id string) {
		if err := conn.WriteJSON(activeUpdate{Active: id}); err != nil {
			log.Printf("sections: websocket write: %v", err)
		}
	}))

	// Report the initial state so the sidebar starts highlighted.
	if err := conn.WriteJSON(activeUpdate{Active: tracker.Active()}); err != nil {
		log.Printf("sections: websocket write: %v", err)
		return
	}

	for {
		var frame scrollFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("sections: websocket read: %v", err)
			}
			return
		}
		snap.set(frame)
		tracker.HandleScroll()
	}
}

// frameContainer is a Container backed by the most recent scroll frame.
// Before the first frame arrives the pane counts as unmounted. Scroll
// commands are no-ops: the server cannot move the client's pane, and
// click-to-scroll stays on the page side.
type frameContainer struct {
	frame   scrollFrame
	mounted bool
}

func (c *frameContainer) set(f scrollFrame) {
	c.frame = f
	c.mounted = true
}

func (c *frameContainer) ScrollTop() (float64, bool) {
	if !c.mounted {
		return 0, false
	}
	return c.frame.ScrollTop, true
}

func (c *frameContainer) HeadingTop(id string) (float64, bool) {
	if !c.mounted {
		return 0, false
	}
	for _, h := range c.frame.Headings {
		if h.ID == id {
			return h.Top, true
		}
	}
	return 0, false
}

func (c *frameContainer) ScrollTo(offset float64) {}

func (c *frameContainer) ScrollIntoView(id string) bool { return false }
