package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const defaultWriteWait = 10 * time.Second

// client serialises writes, gorilla allows one concurrent writer per conn.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(payload []byte, wait time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

type Ws struct {
	connMap sync.Map // to keep track of socket connection with socketId

	// WriteWait bounds a single frame write so a stalled socket
	// cannot hold up delivery to the others.
	WriteWait time.Duration
}

func NewWs() *Ws {
	return &Ws{WriteWait: defaultWriteWait}
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, &client{conn: conn})
}

// HandleDisconnect closes the socket and forgets it. Safe to call twice.
func (s *Ws) HandleDisconnect(socketId string) {
	v, ok := s.connMap.LoadAndDelete(socketId)
	if !ok {
		return
	}
	v.(*client).conn.Close()
}

func (s *Ws) Count() int {
	count := 0
	s.connMap.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

// Broadcast writes payload as a text frame to every connected socket.
// Sockets that fail the write are dropped.
func (s *Ws) Broadcast(payload []byte) {
	s.connMap.Range(func(key, value any) bool {
		socketId := key.(string)

		if err := value.(*client).write(payload, s.WriteWait); err != nil {
			log.Warnf("dropping socket %s after failed write: %v", socketId, err)
			s.HandleDisconnect(socketId)
		}
		return true // continue iterating
	})
}

// Send writes payload to a single socket.
func (s *Ws) Send(socketId string, payload []byte) bool {
	v, ok := s.connMap.Load(socketId)
	if !ok {
		return false
	}

	if err := v.(*client).write(payload, s.WriteWait); err != nil {
		log.Errorf("Failed to send message to socket %s: %v", socketId, err)
		return false
	}
	return true
}
