package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/gateway/rest/marketplace"
	"marketplace/internal/lifecycle"
	"marketplace/internal/orderflow"
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type commands struct {
	gateway *marketplace.Gateway
	flow    *orderflow.Flow
	opts    options
	stdout  io.Writer
}

func (c *commands) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "order":
		return c.order(ctx, args[1:])
	case "custom":
		return c.custom(ctx, args[1:])
	case "review":
		return c.review(ctx, args[1:])
	case "notifications":
		return c.notifications(ctx)
	default:
		return usagef("unknown command %q", args[0])
	}
}

func (c *commands) order(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usagef("order get|actions|transition|cancel <id>")
	}
	id := args[1]

	switch args[0] {
	case "get":
		order, err := c.gateway.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		return c.print(dto.FromOrder(order))

	case "actions":
		actions, err := c.gateway.OrderActions(ctx, id)
		if err != nil {
			return err
		}
		return c.printActions(actions)

	case "transition":
		if len(args) < 3 {
			return usagef("order transition <id> <status>")
		}
		return c.transitionOrder(ctx, id, entities.OrderStatusType(strings.ToUpper(args[2])))

	case "cancel":
		return c.transitionOrder(ctx, id, entities.OrderCancelled)

	default:
		return usagef("unknown order command %q", args[0])
	}
}

func (c *commands) transitionOrder(ctx context.Context, id string, status entities.OrderStatusType) error {
	tracker, err := c.flow.LoadOrder(ctx, id)
	if err != nil {
		return err
	}

	payload := lifecycle.Payload{TrackingNumber: optional(c.opts.tracking)}
	order, err := c.flow.TransitionOrder(ctx, tracker, status, payload)
	if err != nil {
		// Показываем актуальное состояние вместе с причиной отказа.
		if printErr := c.print(dto.FromOrder(&order)); printErr != nil {
			return errors.Join(err, printErr)
		}
		return err
	}
	return c.print(dto.FromOrder(&order))
}

func (c *commands) custom(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usagef("custom get|actions|transition <id>")
	}
	id := args[1]

	switch args[0] {
	case "get":
		customOrder, viewStatus, err := c.gateway.GetCustomOrder(ctx, id)
		if err != nil {
			return err
		}
		return c.print(dto.FromCustomOrder(customOrder, viewStatus))

	case "actions":
		actions, err := c.gateway.CustomOrderActions(ctx, id)
		if err != nil {
			return err
		}
		return c.printActions(actions)

	case "transition":
		if len(args) < 3 {
			return usagef("custom transition <id> <status>")
		}
		return c.transitionCustomOrder(ctx, id, entities.CustomOrderStatusType(strings.ToUpper(args[2])))

	default:
		return usagef("unknown custom command %q", args[0])
	}
}

func (c *commands) transitionCustomOrder(ctx context.Context, id string, status entities.CustomOrderStatusType) error {
	payload := lifecycle.Payload{
		Message:         optional(c.opts.message),
		DeliveryAddress: optional(c.opts.address),
		Notes:           optional(c.opts.notes),
	}
	if c.opts.finalPrice != "" {
		price, err := decimal.NewFromString(c.opts.finalPrice)
		if err != nil {
			return usagef("--final-price must be a decimal number")
		}
		payload.FinalPrice = &price
	}

	tracker, err := c.flow.LoadCustomOrder(ctx, id)
	if err != nil {
		return err
	}

	customOrder, err := c.flow.TransitionCustomOrder(ctx, tracker, status, payload)
	if err != nil {
		if printErr := c.print(dto.FromCustomOrder(&customOrder, customOrder.Status)); printErr != nil {
			return errors.Join(err, printErr)
		}
		return err
	}
	return c.print(dto.FromCustomOrder(&customOrder, customOrder.Status))
}

func (c *commands) review(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usagef("review <order-id> --reviewee ID --overall N --communication N --timeliness N")
	}
	if c.opts.reviewee == "" {
		return usagef("--reviewee is required")
	}

	review, err := c.gateway.CreateReview(ctx, entities.ReviewCreate{
		OrderID:             args[0],
		RevieweeID:          c.opts.reviewee,
		OverallRating:       c.opts.overall,
		CommunicationRating: c.opts.communication,
		TimelinessRating:    c.opts.timeliness,
		Comment:             optional(c.opts.comment),
	})
	if err != nil {
		return err
	}
	return c.print(dto.FromReview(review))
}

func (c *commands) notifications(ctx context.Context) error {
	notifications, err := c.gateway.Notifications(ctx, c.opts.limit)
	if err != nil {
		return err
	}
	return c.print(dto.FromNotifications(notifications))
}

func (c *commands) printActions(actions *marketplace.Actions) error {
	return c.print(dto.ActionsResponse{
		Status:  actions.Status,
		Role:    actions.Role.String(),
		Actions: actions.Next,
	})
}

// outputError - результат не удалось вывести в stdout.
type outputError struct {
	err error
}

func (e *outputError) Error() string {
	return "print: " + e.err.Error()
}

func (e *outputError) Unwrap() error {
	return e.err
}

func (c *commands) print(v any) error {
	encoder := json.NewEncoder(c.stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return &outputError{err: err}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
