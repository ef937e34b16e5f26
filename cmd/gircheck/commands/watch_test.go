package commands

import (
	"context"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/watch"
)

func TestRegenerationEvent(t *testing.T) {
	report := &Report{RunID: "abc", Written: []string{"/out/Demo-1.0.c"}}

	e := regenerationEvent(report, []string{"/girs/Demo-1.0.gir"}, nil)
	assert.Equal(t, watch.EventRegenerated, e.Type)
	assert.Equal(t, "abc", e.RunID)
	assert.Equal(t, []string{"/out/Demo-1.0.c"}, e.Written)
	assert.Empty(t, e.Error)

	e = regenerationEvent(nil, []string{"/girs/Demo-1.0.gir"}, errors.New("parse failed"))
	assert.Equal(t, watch.EventFailed, e.Type)
	assert.Equal(t, "parse failed", e.Error)
	assert.Empty(t, e.RunID)
}

func TestServeEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := watch.NewHub(nil)
	defer hub.Close()

	addr, err := serveEvents(ctx, "127.0.0.1:0", hub)
	require.NoError(t, err)

	dialer := websocket.Dialer{}
	conn, _, err := dialer.Dial("ws://"+addr.String()+EventsPath, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(regenerationEvent(&Report{RunID: "run1"}, []string{"Demo-1.0.gir"}, nil))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got watch.Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, watch.EventRegenerated, got.Type)
	assert.Equal(t, "run1", got.RunID)
	assert.Equal(t, []string{"Demo-1.0.gir"}, got.Changed)
}

func TestServeEvents_AddressInUse(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := serveEvents(ctx, "127.0.0.1:0", watch.NewHub(nil))
	require.NoError(t, err)

	_, err = serveEvents(ctx, addr.String(), watch.NewHub(nil))
	assert.Error(t, err)
}
