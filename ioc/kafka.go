package ioc

import (
	"fmt"

	"bzmall/internal/events"
	"bzmall/internal/events/product"

	"github.com/IBM/sarama"
	"github.com/spf13/viper"
)

func InitKafka() sarama.Client {
	type Config struct {
		Addrs []string `yaml:"addrs"`
	}
	c := Config{
		Addrs: []string{"localhost:9094"},
	}
	err := viper.UnmarshalKey("kafka", &c)
	if err != nil {
		panic(fmt.Errorf("初始化 kafka 配置失败 %v, 原因 %w", c, err))
	}

	saramaCfg := sarama.NewConfig()
	// SyncProducer 要求打开这个
	saramaCfg.Producer.Return.Successes = true
	client, err := sarama.NewClient(c.Addrs, saramaCfg)
	if err != nil {
		panic(err)
	}
	return client
}

func NewSyncProducer(client sarama.Client) sarama.SyncProducer {
	res, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		panic(err)
	}
	return res
}

// NewConsumers 所有的消费者都在这里注册，main 里统一启动
func NewConsumers(c *product.ViewEventBatchConsumer) []events.Consumer {
	return []events.Consumer{c}
}
