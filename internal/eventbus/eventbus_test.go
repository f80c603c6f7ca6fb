package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventAppLaunched, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(AppLaunchedEvent{Label: "Firefox"})

	select {
	case e := <-received:
		launched, ok := e.(AppLaunchedEvent)
		require.True(t, ok)
		require.Equal(t, "Firefox", launched.Label)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 2)
	bus.Subscribe(EventLaunchFailed, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(AppLaunchedEvent{Label: "Firefox"})
	bus.Publish(LaunchFailedEvent{Label: "Kitty"})

	select {
	case e := <-received:
		require.Equal(t, EventLaunchFailed, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	require.Empty(t, received)
}
