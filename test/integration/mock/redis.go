package mock

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client connected to a process-wide miniredis server.
func NewRedis() *redis.Client {
	redisConnOnce.Do(
		func() {
			redisConn = openRedisConn()
		},
	)

	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return conn
}

func ClearRedis(redis *redis.Client) error {
	return redis.FlushAll(context.TODO()).Err()
}

// ChangeCollector records every change event published on a channel.
type ChangeCollector struct {
	pubsub *redis.PubSub
	mu     sync.Mutex
	events []entity.ChangeEvent
	done   chan struct{}
}

// CollectChanges subscribes to channel and decodes messages until Close is called.
func CollectChanges(ctx context.Context, client *redis.Client, channel string) (*ChangeCollector, error) {
	pubsub := client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	c := &ChangeCollector{
		pubsub: pubsub,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(c.done)
		for msg := range pubsub.Channel() {
			var event entity.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			c.mu.Lock()
			c.events = append(c.events, event)
			c.mu.Unlock()
		}
	}()

	return c, nil
}

// Count returns how many events of kind were received so far.
func (c *ChangeCollector) Count(kind entity.ChangeKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, event := range c.events {
		if event.Kind == kind {
			count++
		}
	}
	return count
}

// Close unsubscribes and waits for the reader to stop.
func (c *ChangeCollector) Close() error {
	err := c.pubsub.Close()
	<-c.done
	return err
}
