package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()
	require.NotNil(t, hub)
	assert.NotNil(t, hub.subscribers)
	assert.False(t, hub.closed)
}

func TestHub_PublishSubscribe(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch, unsub := hub.Subscribe()
	defer unsub()

	hub.Publish(Event{
		Type:        EventPartAdded,
		ContainerID: "main",
		PartID:      "outline",
	})

	select {
	case received := <-ch:
		assert.Equal(t, EventPartAdded, received.Type)
		assert.Equal(t, "main", received.ContainerID)
		assert.NotEmpty(t, received.ID, "event should be assigned a ulid")
		assert.False(t, received.Timestamp.IsZero())
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for event")
	}
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch1, unsub1 := hub.Subscribe()
	defer unsub1()
	ch2, unsub2 := hub.Subscribe()
	defer unsub2()

	hub.Publish(Event{Type: EventPartsReordered})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case received := <-ch:
			assert.Equal(t, EventPartsReordered, received.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch, unsub := hub.Subscribe()
	unsub()

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after unsubscribe")

	// Double unsubscribe must not panic.
	assert.NotPanics(t, func() { unsub() })
}

func TestHub_Close(t *testing.T) {
	hub := NewHub()
	ch, _ := hub.Subscribe()

	hub.Close()

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after hub close")

	// Publish should be no-op after close
	assert.NotPanics(t, func() {
		hub.Publish(Event{Type: EventStateSaved})
	})

	// Subscribing after close returns a closed channel.
	ch2, unsub := hub.Subscribe()
	defer unsub()
	_, ok = <-ch2
	assert.False(t, ok)
}

func TestHub_DropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch, unsub := hub.Subscribe()
	defer unsub()

	// No reader while publishing; overflow must drop, not block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			hub.Publish(Event{Type: EventLayoutPass, Data: map[string]any{"i": i}})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on full subscriber buffer")
	}

	count := 0
	for {
		select {
		case <-ch:
			count++
		default:
			assert.Greater(t, count, 0, "some events should have been delivered")
			assert.LessOrEqual(t, count, 500)
			return
		}
	}
}
