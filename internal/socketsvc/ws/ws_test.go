package ws

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServer registers each upgraded socket under its ?id= query value.
func newServer(t *testing.T, s *Ws) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.StoreConnection(r.URL.Query().Get("id"), conn)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server, id string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/?id=" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHandleDisconnectClosesSocket(t *testing.T) {
	s := NewWs()
	ts := newServer(t, s)

	c := dial(t, ts, "a")
	require.Eventually(t, func() bool { return s.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	s.HandleDisconnect("a")
	s.HandleDisconnect("a")
	assert.Equal(t, 0, s.Count())

	require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := c.ReadMessage()
	assert.Error(t, err)

	assert.False(t, s.Send("a", []byte("x")))
}

func TestStalledSocketDoesNotBlockBroadcast(t *testing.T) {
	s := NewWs()
	s.WriteWait = 250 * time.Millisecond
	ts := newServer(t, s)

	dial(t, ts, "stalled") // never read
	live := dial(t, ts, "live")
	require.Eventually(t, func() bool { return s.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	var received atomic.Int64
	go func() {
		for {
			if _, _, err := live.ReadMessage(); err != nil {
				return
			}
			received.Add(1)
		}
	}()

	payload := bytes.Repeat([]byte("x"), 1<<20)
	sent := 0
	for i := 0; i < 500 && s.Count() == 2; i++ {
		s.Broadcast(payload)
		sent++
	}

	require.Equal(t, 1, s.Count(), "stalled socket should have been dropped")
	assert.True(t, s.Send("live", []byte("still here")))
	assert.Eventually(t, func() bool { return received.Load() >= int64(sent) }, 5*time.Second, 10*time.Millisecond)
}
