package notify

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/nba-playbyplay-service/pkg/contracts/events"
)

// publishClient é o subconjunto de *redis.Client usado aqui
type publishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher faz broadcast do evento num canal Pub/Sub
type RedisPublisher struct {
	r       publishClient
	channel string
}

func NewRedisPublisher(r publishClient, channel string) *RedisPublisher {
	return &RedisPublisher{r: r, channel: channel}
}

func (p *RedisPublisher) PublishGameFinished(ctx context.Context, ev events.GameFinished) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal game finished: %w", err)
	}
	if err := p.r.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}
