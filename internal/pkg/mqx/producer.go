package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

// Producer 发送 JSON 格式的事件
type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

type Option[T any] func(p *JSONProducer[T])

// WithKey 同一个 key 的消息会进入同一个分区
func WithKey[T any](key func(evt T) string) Option[T] {
	return func(p *JSONProducer[T]) {
		p.key = key
	}
}

type JSONProducer[T any] struct {
	producer mq.Producer
	topic    string
	key      func(evt T) string
}

func NewJSONProducer[T any](q mq.MQ, topic string, opts ...Option[T]) (*JSONProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的生产者失败: %w", topic, err)
	}
	res := &JSONProducer[T]{
		producer: p,
		topic:    topic,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

func (p *JSONProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	msg := &mq.Message{Value: data}
	if p.key != nil {
		msg.Key = []byte(p.key(evt))
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("向 topic=%s 发送消息失败: %w", p.topic, err)
	}
	return nil
}
