package notification_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/dto"
	"marketplace/internal/lifecycle"
	"marketplace/pkg/logger"
	"marketplace/pkg/retrier"
)

type Handler struct {
	service                  Service
	retrier                  Retrier
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, retrier Retrier, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		service:                  service,
		retrier:                  retrier,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("notification.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("notification.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing сохраняет одно уведомление.
// Возвращает true, если сообщение не подтверждено и ConsumeClaim нужно прервать,
// тогда сообщение будет прочитано повторно после ребалансировки.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.NotificationEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("notification.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("notification", event.ID),
		logger.NewField("recipient", event.RecipientID),
		logger.NewField("message_key", event.MessageKey),
		logger.NewField("offset", message.Offset),
	)

	var created bool
	err = h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var storeErr error
		created, storeErr = h.service.Store(ctx, event.ToNotification())
		return storeErr
	})
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidInput):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.requested handler dropped invalid notification")
			sess.MarkMessage(message, "")
			return false

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.requested handler failed to store notification, message will be reprocessed")
			return true
		}
	}

	if !created {
		msgLog.Debug("notification.requested: duplicate delivery skipped")
	} else {
		msgLog.Info("notification.requested: stored")
	}

	sess.MarkMessage(message, "")
	return false
}

// ShouldRetry отсекает ошибки, которые не исправятся повторной попыткой.
func ShouldRetry(err error) bool {
	return retrier.RetryUnless(lifecycle.ErrInvalidInput)(err)
}
