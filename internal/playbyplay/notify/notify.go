package notify

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/radieske/nba-playbyplay-service/internal/shared/metrics"
	"github.com/radieske/nba-playbyplay-service/pkg/contracts/events"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher entrega eventos de jogo encerrado a um destino
type Publisher interface {
	PublishGameFinished(ctx context.Context, ev events.GameFinished) error
}

// Sink é um Publisher nomeado (rótulo das métricas)
type Sink struct {
	Name string
	Publisher
}

// Multi publica em todos os destinos; falha de um não impede os demais
type Multi struct {
	sinks   []Sink
	log     *zap.Logger
	metrics *metrics.Recorder
}

func NewMulti(log *zap.Logger, rec *metrics.Recorder, sinks ...Sink) *Multi {
	if log == nil {
		log = zap.NewNop()
	}
	return &Multi{sinks: sinks, log: log, metrics: rec}
}

// Len retorna o número de destinos configurados
func (m *Multi) Len() int { return len(m.sinks) }

func (m *Multi) PublishGameFinished(ctx context.Context, ev events.GameFinished) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.PublishGameFinished(ctx, ev); err != nil {
			m.metrics.ObserveNotification(s.Name, "error")
			m.log.Warn("publish game finished failed",
				zap.String("sink", s.Name),
				zap.String("game_id", ev.GameID),
				zap.Error(err),
			)
			errs = append(errs, err)
			continue
		}
		m.metrics.ObserveNotification(s.Name, "ok")
		m.log.Debug("game finished published",
			zap.String("sink", s.Name),
			zap.String("game_id", ev.GameID),
			zap.String("event_id", ev.EventID),
		)
	}
	return errors.Join(errs...)
}

// Nop descarta os eventos
type Nop struct{}

func (Nop) PublishGameFinished(context.Context, events.GameFinished) error { return nil }
