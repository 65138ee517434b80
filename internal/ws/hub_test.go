package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SnapshotAndBroadcast(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub.SetSnapshot(func() []*Event {
		return []*Event{{Type: "hero", Data: map[string]string{"active": "first"}}}
	})
	go hub.Run()

	srv := httptest.NewServer(ServeWs(hub, slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var first Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &first))
	assert.Equal(t, "hero", first.Type)

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)
	hub.Publish("countdown", map[string]int{"days": 3})

	_, raw, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"countdown","data":{"days":3}}`, string(raw))
}

func TestHub_PublishDropsWhenFull(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for i := 0; i < cap(hub.broadcast)+10; i++ {
		hub.Publish("countdown", i)
	}
	assert.Len(t, hub.broadcast, cap(hub.broadcast))
}
