package events

import "context"

// Publisher sends an opaque payload to a named channel
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Subscriber delivers payloads from the given channels to the handler
type Subscriber interface {
	Subscribe(ctx context.Context, channels []string, handler func(channel string, payload []byte)) error
}

type Broker interface {
	Publisher
	Subscriber
}
