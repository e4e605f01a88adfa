package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/logx"
)

const headerEventType = "event_type"

var (
	newSyncProducer = sarama.NewSyncProducer
	newEventID      = uuid.NewString
)

// Publisher sends route events to a Kafka topic. A nil *Publisher is valid
// and drops every event.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	failures prometheus.Counter
}

// NewPublisher creates a Kafka publisher
func NewPublisher(logger logx.Logger, brokers []string, topic string, failures prometheus.Counter) (*Publisher, error) {
	// no brokers: events are not sent
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Publisher{producer: producer, topic: topic, logger: logger, failures: failures}, nil
}

// Publish sends ev keyed by route id
func (p *Publisher) Publish(ctx context.Context, ev domain.RouteEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		p.fail()
		return err
	}

	dto := FromDomain(newEventID(), ev)
	b, err := json.Marshal(dto)
	if err != nil {
		p.fail()
		return fmt.Errorf("marshal route event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.Route.ID, 10)),
		Value: sarama.ByteEncoder(b),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(dto.Type)},
		},
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.fail()
		return fmt.Errorf("send route event: %w", err)
	}

	p.logger.Debug("route event published",
		logx.String("event_id", dto.EventID),
		logx.String("type", dto.Type),
		logx.Int64("route_id", dto.RouteID),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

func (p *Publisher) fail() {
	if p.failures != nil {
		p.failures.Inc()
	}
}

// Close flushes and closes the producer
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
