package kafka

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
)

type captureWriter struct{ msgs []kafka.Message }

func (c *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	c.msgs = append(c.msgs, msgs...)
	return nil
}

func TestWriteJSONKeysMessage(t *testing.T) {
	w := &captureWriter{}
	if err := WriteJSON(context.Background(), w, "0022000180", []byte(`{"ok":true}`)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	m := w.msgs[0]
	if string(m.Key) != "0022000180" || string(m.Value) != `{"ok":true}` || m.Time.IsZero() {
		t.Fatalf("unexpected message %+v", m)
	}
}

func TestNewWriterHashesByKey(t *testing.T) {
	w := NewWriter([]string{"k1:9092", "k2:9092"}, "nba_game_finished")
	defer w.Close()
	if w.Topic != "nba_game_finished" {
		t.Fatalf("unexpected topic %q", w.Topic)
	}
	if _, ok := w.Balancer.(*kafka.Hash); !ok {
		t.Fatalf("expected hash balancer, got %T", w.Balancer)
	}
	if w.RequiredAcks != kafka.RequireOne {
		t.Fatalf("unexpected acks %v", w.RequiredAcks)
	}
}
