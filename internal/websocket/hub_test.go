package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredClient(t *testing.T, hub *Hub, channel string) *Client {
	t.Helper()
	client := NewClient(nil, "user-1", channel)
	hub.Register(client)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount(channel) > 0
	}, time.Second, 5*time.Millisecond)
	return client
}

func TestHubBroadcastReachesChannelSubscribers(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := registeredClient(t, hub, "channel:user:42")

	hub.Broadcast("channel:user:42", []byte("hello"))

	select {
	case msg := <-client.Send:
		assert.Equal(t, "hello", string(msg))
	case <-time.After(time.Second):
		t.Fatal("message never delivered")
	}
}

func TestHubBroadcastSkipsOtherChannels(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := registeredClient(t, hub, "channel:user:42")

	hub.Broadcast("channel:user:99", []byte("not yours"))

	select {
	case <-client.Send:
		t.Fatal("received a message for another user")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := registeredClient(t, hub, "channel:user:42")
	hub.Unregister(client)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, hub.SubscriberCount("channel:user:42"))

	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubMultipleConnectionsPerUser(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	first := registeredClient(t, hub, "channel:user:42")
	second := NewClient(nil, "user-1", "channel:user:42")
	hub.Register(second)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount("channel:user:42") == 2
	}, time.Second, 5*time.Millisecond)

	hub.Broadcast("channel:user:42", []byte("fanout"))

	for _, c := range []*Client{first, second} {
		select {
		case msg := <-c.Send:
			assert.Equal(t, "fanout", string(msg))
		case <-time.After(time.Second):
			t.Fatal("a connection missed the broadcast")
		}
	}
}
