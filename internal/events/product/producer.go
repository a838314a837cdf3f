package product

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
)

// topicViewEvent 商品浏览事件的 topic
// 商城前台每展示一次商品详情就发一条
const topicViewEvent = "product_view_event"

type Producer interface {
	ProduceViewEvent(ctx context.Context, evt ViewEvent) error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
}

func NewKafkaProducer(pc sarama.SyncProducer) Producer {
	return &KafkaProducer{
		producer: pc,
	}
}

func (k *KafkaProducer) ProduceViewEvent(ctx context.Context, evt ViewEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topicViewEvent,
		Value: sarama.ByteEncoder(data),
	})
	return err
}

// ViewEvent 某个用户在某一天看了某个商品
// 同一个 (用户, 商品, 日) 发多少条效果都一样，落库会去重
type ViewEvent struct {
	Uid int64
	Pid int64
	// ViewDate 浏览发生的自然日，YYYY-MM-DD
	ViewDate string
}
