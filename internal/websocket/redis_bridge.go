package websocket

import (
	"context"

	"scipress-events/internal/events"
	pkgevents "scipress-events/pkg/events"
)

// RedisBridge forwards notification payloads from the broker to local
// hub subscribers. It pattern-subscribes to every user channel so any
// instance can serve any connected user.
type RedisBridge struct {
	subscriber pkgevents.Subscriber
	hub        *Hub
}

func NewRedisBridge(subscriber pkgevents.Subscriber, hub *Hub) *RedisBridge {
	return &RedisBridge{subscriber: subscriber, hub: hub}
}

func (b *RedisBridge) Run(ctx context.Context) error {
	pattern := events.ChannelPrefixUser + "*"
	return b.subscriber.Subscribe(ctx, []string{pattern}, func(channel string, payload []byte) {
		b.hub.Broadcast(channel, payload)
	})
}
