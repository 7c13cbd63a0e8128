package kafka

import (
	"Microblog/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"sync"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Publisher 事件发布，失败只记录日志，不影响业务请求
type Publisher interface {
	Publish(ctx context.Context, event *Event)
}

// NopPublisher 未配置 Kafka 时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Event) {}

// EventProducer 基于 sarama.AsyncProducer 的事件发布器
type EventProducer struct {
	producer sarama.AsyncProducer
	topic    string

	closeOnce sync.Once
}

// NewPublisher 未配置 broker 时返回 NopPublisher
func NewPublisher(cfg config.KafkaConfig) (Publisher, *EventProducer, error) {
	if len(cfg.Brokers) == 0 {
		return NopPublisher{}, nil, nil
	}
	producer, err := sarama.NewAsyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	p := NewEventProducer(producer, cfg.Topic)
	return p, p, nil
}

func NewEventProducer(producer sarama.AsyncProducer, topic string) *EventProducer {
	return &EventProducer{producer: producer, topic: topic}
}

func (s *EventProducer) Publish(ctx context.Context, event *Event) {
	value, err := json.Marshal(event)
	if err != nil {
		log.ErrorContext(ctx, "marshal event error", "type", event.Type, "err", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.UserID, 10)),
		Value: sarama.ByteEncoder(value),
	}
	select {
	case s.producer.Input() <- msg:
	case <-ctx.Done():
		log.WarnContext(ctx, "event dropped", "type", event.Type, "err", ctx.Err())
	}
}

// Start 消费发送失败的消息并记录日志，直到 ctx 结束或生产者关闭
func (s *EventProducer) Start(ctx context.Context) error {
	log.Info("Kafka producer started", "topic", s.topic)
	for {
		select {
		case perr, ok := <-s.producer.Errors():
			if !ok {
				return nil
			}
			log.Error("Failed to deliver event", "topic", perr.Msg.Topic, "err", perr.Err)
		case <-ctx.Done():
			return nil
		}
	}
}

// Close 需在 HTTP 服务停止后调用，关闭后不能再 Publish
func (s *EventProducer) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.producer.Close()
	})
	return err
}
