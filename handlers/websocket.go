package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const clientIDKey = "cid"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512 * 1024, // pushed JPEG frames
	WriteBufferSize: 16 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SendSocketFunc returns true if data was successfully sent
type SendSocketFunc func([]byte) bool

type ConnectedClient struct {
	fun SendSocketFunc
}

// ConnectedClients is needed as the same page may be connected more than once
type ConnectedClients []*ConnectedClient

var ConnectedPages = cmap.New[ConnectedClients]()

func addClient(id string, c *ConnectedClient) {
	ConnectedPages.Upsert(id, ConnectedClients{c}, func(exist bool, valueInMap, newValue ConnectedClients) ConnectedClients {
		if exist {
			return append(valueInMap, c)
		}
		return newValue
	})
}

func removeClient(id string, c *ConnectedClient) {
	ConnectedPages.Upsert(id, ConnectedClients{}, func(exist bool, valueInMap, newValue ConnectedClients) ConnectedClients {
		if !exist {
			return newValue
		}
		for _, oc := range valueInMap {
			if oc == c {
				continue
			}
			newValue = append(newValue, oc)
		}
		return newValue
	})
}

// clientID keeps a stable per-browser identifier in the cookie session so
// reconnects land in the same registry slot.
func clientID(c *gin.Context) string {
	session := sessions.Default(c)
	if id, ok := session.Get(clientIDKey).(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	session.Set(clientIDKey, id)
	_ = session.Save()
	return id
}

// WebSocket is the page's event channel: JSON notifications go down, and in
// push mode binary JPEG webcam frames come up.
func WebSocket(c *gin.Context) {
	id := clientID(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	// Broadcasts arrive from other goroutines while the read cycle may be
	// replying to pings; gorilla allows one concurrent writer only.
	var writeMutex sync.Mutex
	isConnected := true
	client := ConnectedClient{}
	client.fun = func(data []byte) bool {
		writeMutex.Lock()
		defer writeMutex.Unlock()
		if !isConnected {
			return false
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Println("write err:", err)
			isConnected = false
			return false
		}
		return true
	}
	addClient(id, &client)
	defer removeClient(id, &client)
	// A session-terminal error (camera or model) is delivered right away
	if msg := Status.Message(); msg != "" {
		if data, err := json.Marshal(WSMessage{Type: WSMessageTypeStatus, Message: msg}); err == nil {
			client.fun(data)
		}
	}
	// Main read cycle
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			writeMutex.Lock()
			isConnected = false
			writeMutex.Unlock()
			break
		}
		if mt == websocket.BinaryMessage {
			if Push == nil {
				continue
			}
			if err := Push.Push(message); err != nil {
				log.Printf("Dropping pushed frame: %v", err)
			}
			continue
		}
		if string(message) == "ping" {
			writeMutex.Lock()
			conn.WriteMessage(mt, []byte("pong"))
			writeMutex.Unlock()
		}
	}
}

type WSMessageType uint8

const (
	WSMessageTypeCapture WSMessageType = iota
	WSMessageTypeStatus
)

type WSMessage struct {
	Type      WSMessageType `json:"type"`
	CaptureID uint64        `json:"captureId,omitempty"`
	Message   string        `json:"message,omitempty"`
}

func broadcast(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	ConnectedPages.IterCb(func(id string, clients ConnectedClients) {
		for _, client := range clients {
			client.fun(data)
		}
	})
}

// notifyCapture tells every connected page to refresh its thumbnail grid.
func notifyCapture(id uint64) {
	broadcast(WSMessage{Type: WSMessageTypeCapture, CaptureID: id})
}
