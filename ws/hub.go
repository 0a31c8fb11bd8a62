package ws

// Hub menyalurkan feed presensi langsung ke dashboard admin yang terhubung:
// setiap event check yang tercatat di-broadcast ke semua client.

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"

	"github.com/rakhapw/absensi-backend/internal/presensi/models"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client mewakili satu koneksi WebSocket.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// BroadcastEvent mengirim satu event presensi ke semua client. Gagal
// marshal hanya dicatat; pencatatan presensi tidak boleh ikut gagal.
func (h *Hub) BroadcastEvent(ev models.AttendanceEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Gagal marshal event untuk broadcast: %v", err)
		return
	}
	h.Broadcast <- payload
}
