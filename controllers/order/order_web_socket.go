package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes freshly placed orders to connected admin dashboards. It
// implements checkout.Notifier.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]bool)}
}

// Handler upgrades the connection and keeps it registered until the
// client goes away.
// GET /admin/orders/ws
func (f *Feed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

// OrderPlaced broadcasts the order to every connected client, dropping
// connections that fail to write.
func (f *Feed) OrderPlaced(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}
