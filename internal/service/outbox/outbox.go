package outbox

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidBatchSize = errors.New("invalid batch size")

type Service struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	batchSize  int
}

func New(repository Repository, publisher Publisher, txManager TxManager, batchSize int) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		batchSize:  batchSize,
	}
}

// Relay публикует одну пачку сообщений outbox.
// Строки выбираются с блокировкой (SKIP LOCKED), поэтому несколько экземпляров сервиса не публикуют
// одно сообщение параллельно. Опубликованные удаляются, неудачные остаются с увеличенным счетчиком попыток.
// Доставка at-least-once: потребитель должен быть идемпотентным.
func (s *Service) Relay(ctx context.Context) (int64, error) {
	if s.batchSize <= 0 {
		return 0, ErrInvalidBatchSize
	}

	var (
		published  int64
		publishErr error
	)
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		published, publishErr = 0, nil

		messages, err := s.repository.FetchBatch(ctx, s.batchSize)
		if err != nil {
			return fmt.Errorf("fetch outbox batch: %w", err)
		}
		if len(messages) == 0 {
			return nil
		}

		sent := make([]int64, 0, len(messages))
		var failed []int64
		for _, message := range messages {
			if err := s.publisher.Publish(ctx, message.Topic, message.Key, message.Payload); err != nil {
				failed = append(failed, message.ID)
				publishErr = errors.Join(publishErr, fmt.Errorf("message %d: %w", message.ID, err))
				continue
			}
			sent = append(sent, message.ID)
		}

		if len(sent) > 0 {
			if err := s.repository.Delete(ctx, sent); err != nil {
				return fmt.Errorf("delete published messages: %w", err)
			}
		}
		if len(failed) > 0 {
			if err := s.repository.IncrementAttempts(ctx, failed); err != nil {
				return fmt.Errorf("increment attempts: %w", err)
			}
		}

		published = int64(len(sent))
		return nil
	})
	if err != nil {
		return 0, err
	}

	// ошибки публикации не откатывают транзакцию, иначе опубликованные сообщения уйдут повторно
	if publishErr != nil {
		return published, fmt.Errorf("publish: %w", publishErr)
	}
	return published, nil
}
