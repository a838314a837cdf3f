package product

import (
	"context"
	"time"

	"bzmall/internal/domain"
	"bzmall/internal/repository"
	"bzmall/pkg/logger"
	"bzmall/pkg/saramax"

	"github.com/IBM/sarama"
	"github.com/ecodeclub/ekit/slice"
)

// ViewEventBatchConsumer 批量消费商品浏览事件，落到浏览日志表
// 浏览日志只进不改，唯一索引负责去重，所以重复消费是安全的
type ViewEventBatchConsumer struct {
	client sarama.Client
	repo   repository.ProductViewRepository
	l      logger.Logger
}

func NewViewEventBatchConsumer(client sarama.Client,
	l logger.Logger, repo repository.ProductViewRepository) *ViewEventBatchConsumer {
	return &ViewEventBatchConsumer{
		client: client,
		l:      l,
		repo:   repo,
	}
}

func (c *ViewEventBatchConsumer) Start() error {
	cg, err := sarama.NewConsumerGroupFromClient("popular_product", c.client)
	if err != nil {
		return err
	}
	go func() {
		er := cg.Consume(context.Background(), []string{topicViewEvent},
			saramax.NewBatchHandler[ViewEvent](c.l, c.Consume))
		if er != nil {
			c.l.Error("退出了消费循环异常", logger.Error(er))
		}
	}()
	return err
}

func (c *ViewEventBatchConsumer) Consume(msgs []*sarama.ConsumerMessage, evts []ViewEvent) error {
	if len(evts) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return c.repo.BatchRecord(ctx, slice.Map(evts,
		func(idx int, src ViewEvent) domain.ProductView {
			return domain.ProductView{
				Uid:       src.Uid,
				ProductId: src.Pid,
				ViewDate:  src.ViewDate,
			}
		}))
}
