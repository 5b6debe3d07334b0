package notification

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// RedisPublisher publishes change events as JSON on a Redis channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher for the given channel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

// Notify implements adapter.ChangeNotifier.
func (p *RedisPublisher) Notify(ctx context.Context, event entity.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return domainerror.NewNotificationError(domainerror.ErrCodePublishFailed, "failed to encode change event", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodePublishFailed,
			"failed to publish to "+p.channel,
			errors.Join(domainerror.ErrPublishFailed, err),
		)
	}

	return nil
}
