package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sangkips/alinea-erp/internal/config"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"github.com/sangkips/alinea-erp/pkg/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var (
	_ event.Publisher = (*KafkaPublisher)(nil)
	_ event.Publisher = (*LogPublisher)(nil)
)

// messageWriter is the part of kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes totals events to Kafka, keyed by document ID so
// events of one document stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher creates a new Kafka-based event publisher
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TotalsTopic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer, topic: cfg.TotalsTopic}
}

func (p *KafkaPublisher) PublishTotalsRecalculated(ctx context.Context, e event.TotalsRecalculated) error {
	if e.CorrelationID == "" {
		e.CorrelationID = logger.RequestID(ctx)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(e.DocumentID.String()),
		Value: data,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
			{Key: "event_id", Value: []byte(e.ID.String())},
			{Key: "company_id", Value: []byte(e.CompanyID.String())},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues(e.DocumentType, metrics.ResultError).Inc()
		logger.FromContext(ctx).Error("Failed to publish event",
			zap.String("event_id", e.ID.String()),
			zap.String("event_type", e.Type),
			zap.String("document_id", e.DocumentID.String()),
			zap.Error(err),
		)
		return err
	}

	metrics.EventsPublished.WithLabelValues(e.DocumentType, metrics.ResultOK).Inc()
	logger.FromContext(ctx).Debug("Event published",
		zap.String("event_id", e.ID.String()),
		zap.String("topic", p.topic),
		zap.String("document_id", e.DocumentID.String()),
	)
	return nil
}

// Close flushes pending messages and closes the writer
func (p *KafkaPublisher) Close() error {
	logger.Info("Closing Kafka publisher")
	return p.writer.Close()
}

// LogPublisher only logs events. It is used when no brokers are configured.
type LogPublisher struct{}

// NewLogPublisher creates a publisher that writes events to the log
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) PublishTotalsRecalculated(ctx context.Context, e event.TotalsRecalculated) error {
	logger.FromContext(ctx).Debug("Totals recalculated",
		zap.String("document_type", e.DocumentType),
		zap.String("document_id", e.DocumentID.String()),
		zap.String("grand_total", e.Totals.GrandTotal.StringFixed(2)),
		zap.Time("occurred_at", e.OccurredAt.Truncate(time.Millisecond)),
	)
	return nil
}

func (LogPublisher) Close() error { return nil }
