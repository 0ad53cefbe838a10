package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func assertSilent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Fatalf("unexpected message: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_RoutesEventsByUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(nil)
	go hub.Run(ctx)

	alice, bob := uuid.New(), uuid.New()
	a := NewClient(hub, nil, alice)
	b := NewClient(hub, nil, bob)
	hub.Register(a)
	hub.Register(b)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.NotifyMatchesRefreshed(alice, 7)
	var evt MatchesRefreshedEvent
	require.NoError(t, json.Unmarshal(receive(t, a), &evt))
	assert.Equal(t, EventMatchesRefreshed, evt.Type)
	assert.Equal(t, alice, evt.StudentID)
	assert.Equal(t, 7, evt.Count)
	assertSilent(t, b)

	mentor := uuid.New()
	hub.NotifyTrendsUpdated(mentor, 3)
	for _, c := range []*Client{a, b} {
		var te TrendsUpdatedEvent
		require.NoError(t, json.Unmarshal(receive(t, c), &te))
		assert.Equal(t, EventTrendsUpdated, te.Type)
		assert.Equal(t, mentor, te.MentorID)
	}

	hub.Unregister(a)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	_, ok := <-a.send
	assert.False(t, ok)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := NewClient(hub, nil, uuid.New())
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, 0, hub.ClientCount())
	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHub_NilSafe(t *testing.T) {
	var hub *Hub
	hub.NotifyMatchesRefreshed(uuid.New(), 1)
	hub.NotifyTrendsUpdated(uuid.New(), 1)
	hub.Broadcast([]byte("x"))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_UnregisterAfterShutdownDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.Unregister(NewClient(hub, nil, uuid.New()))
		}
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after the hub stopped")
	}

	late := NewClient(hub, nil, uuid.New())
	hub.Register(late)
	_, ok := <-late.send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}
