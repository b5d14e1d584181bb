package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestConnectionCloseIsIdempotent(t *testing.T) {
	srv, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer srv.cancel()

	conns := make(chan *Connection, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := srv.upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		conns <- NewConnection(ws, srv)
	}))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	c := <-conns

	// join so Close also has to unwind the session registration
	welcome := srv.session.AddViewer(c)
	c.joined = true
	if welcome.ClientID != c.id {
		t.Fatalf("welcome client id %s does not match connection %s", welcome.ClientID, c.id)
	}

	// server shutdown and the read pump's deferred teardown can both
	// reach Close; the second call must be a no-op, not a panic
	c.Close()
	c.Close()

	if got := srv.session.Status().Viewers; got != 0 {
		t.Fatalf("close must remove the viewer from the session, %d still registered", got)
	}
}
