package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"browcam/pipeline"
)

func newSocketTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("token", cookie.NewStore([]byte("test-key"))))
	router.GET("/ws", WebSocket)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dialSocket(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// Capture notifications come from handler goroutines while the read cycle
// replies to pings, so the per-connection writes must not trip over each
// other.
func TestWebSocketConcurrentNotifications(t *testing.T) {
	Status = &pipeline.Status{}
	Status.SetError("Camera access failed")
	Push = nil
	srv := newSocketTestServer(t)
	conn := dialSocket(t, srv)
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// The terminal status is delivered on connect, which also proves the
	// client is registered before we start broadcasting.
	var status WSMessage
	if err := conn.ReadJSON(&status); err != nil {
		t.Fatalf("status push: %v", err)
	}
	if status.Type != WSMessageTypeStatus || status.Message != "Camera access failed" {
		t.Fatalf("status push = %+v", status)
	}

	const captures = 50
	go func() {
		for i := 1; i <= captures; i++ {
			notifyCapture(uint64(i))
		}
	}()
	if err := conn.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
		t.Fatalf("ping: %v", err)
	}

	gotPong := false
	gotCaptures := 0
	for gotCaptures < captures || !gotPong {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read after %d captures (pong=%v): %v", gotCaptures, gotPong, err)
		}
		if string(data) == "pong" {
			gotPong = true
			continue
		}
		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal %q: %v", data, err)
		}
		if msg.Type == WSMessageTypeCapture {
			gotCaptures++
		}
	}
}
