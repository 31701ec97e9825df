package enforcement

import (
	"context"
	"encoding/json"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"moderation-srv/internal/model"
	"moderation-srv/pkg/log"
	pkgRabb "moderation-srv/pkg/rabbitmq"
)

type implDispatcher struct {
	l        log.Logger
	ch       pkgRabb.IChannel
	exchange string
}

// NewDispatcher declares the enforcement topic exchange and returns a
// dispatcher publishing on it.
func NewDispatcher(l log.Logger, conn pkgRabb.IRabbitMQ, exchange string) (Dispatcher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if err := ch.ExchangeDeclare(pkgRabb.ExchangeArgs{
		Name:    exchange,
		Kind:    "topic",
		Durable: true,
	}); err != nil {
		return nil, err
	}

	return &implDispatcher{l: l, ch: ch, exchange: exchange}, nil
}

// Dispatch publishes one command per action, routed by action type, e.g.
// "action.hide_content". A failed publish is logged and the remaining
// actions are still attempted.
func (d *implDispatcher) Dispatch(ctx context.Context, flag *model.ContentFlag, actions []model.ContentAction) error {
	var firstErr error
	for _, action := range actions {
		cmd := Command{
			FlagID:      flag.ID,
			ContentID:   flag.ContentID,
			ContentType: flag.ContentType,
			ActionType:  action.Type,
			ExecutedBy:  action.ExecutedBy,
			Parameters:  action.Parameters,
			Reversible:  action.Reversible,
		}

		body, err := json.Marshal(cmd)
		if err != nil {
			d.l.Errorf(ctx, "enforcement.Dispatch: Failed to marshal command for flag %s: %v", flag.ID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if err := d.ch.Publish(ctx, pkgRabb.PublishArgs{
			Exchange:   d.exchange,
			RoutingKey: routingKey(action.Type),
			Msg: amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Body:         body,
			},
		}); err != nil {
			d.l.Errorf(ctx, "enforcement.Dispatch: Failed to publish %s for flag %s: %v", action.Type, flag.ID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func routingKey(actionType string) string {
	return "action." + strings.ToLower(actionType)
}
