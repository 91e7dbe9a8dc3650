package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// AuditKafkaRepository publishes audit events to a topic. Messages are keyed by
// resource id so one offer's events stay ordered within a partition.
type AuditKafkaRepository struct {
	writer kafkaMessageWriter
}

var _ interfaces.IAuditRepository = (*AuditKafkaRepository)(nil)

func NewAuditKafkaRepository(writer kafkaMessageWriter) *AuditKafkaRepository {
	return &AuditKafkaRepository{writer: writer}
}

func (r *AuditKafkaRepository) Append(ctx context.Context, e entities.AuditEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.ResourceID),
		Value: body,
		Time:  e.Timestamp,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(e.Action)},
			{Key: "resource_type", Value: []byte(e.ResourceType)},
		},
	})
}
