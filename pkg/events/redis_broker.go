package events

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisBroker implements Broker over Redis Pub/Sub so every API
// instance sees every notification.
type RedisBroker struct {
	Client *redis.Client
}

func NewRedisBroker(addr, password string, db int) *RedisBroker {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisBroker{Client: rdb}
}

func (b *RedisBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.Client.Publish(ctx, channel, payload).Err()
}

// Subscribe listens on pattern channels until ctx is cancelled. The
// handler runs on the subscription goroutine; it must not block.
func (b *RedisBroker) Subscribe(ctx context.Context, channels []string, handler func(channel string, payload []byte)) error {
	pubsub := b.Client.PSubscribe(ctx, channels...)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				handler(msg.Channel, []byte(msg.Payload))
			}
		}
	}()

	return nil
}

func (b *RedisBroker) Close() error {
	return b.Client.Close()
}
