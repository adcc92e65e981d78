package notify

import (
	"context"
	"fmt"

	"github.com/radieske/nba-playbyplay-service/internal/shared/kafka"
	"github.com/radieske/nba-playbyplay-service/pkg/contracts/events"
)

// KafkaPublisher envia o evento para o tópico, com o game id como chave
type KafkaPublisher struct {
	w kafka.MessageWriter
}

func NewKafkaPublisher(w kafka.MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{w: w}
}

func (p *KafkaPublisher) PublishGameFinished(ctx context.Context, ev events.GameFinished) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal game finished: %w", err)
	}
	if err := kafka.WriteJSON(ctx, p.w, ev.GameID, payload); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}
