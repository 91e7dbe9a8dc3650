package messaging

import (
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewKafkaWriter builds a synchronous writer. Messages are hashed by key so all
// events for one resource land on the same partition in submission order.
func NewKafkaWriter(brokers []string, topic string, logger *zap.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
		Async:        false,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Sugar().Errorf("[kafka] "+msg, args...)
		}),
	}
}
