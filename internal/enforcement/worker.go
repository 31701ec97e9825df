package enforcement

import (
	"context"
	"encoding/json"
	"fmt"

	"moderation-srv/internal/model"
	"moderation-srv/pkg/discord"
	"moderation-srv/pkg/log"
	pkgRabb "moderation-srv/pkg/rabbitmq"
)

const workerQueue = "moderation.enforcement.worker"

// Worker consumes enforcement commands and applies them against the content
// platform. Irreversible actions additionally raise a Discord alert so
// operators see them in near real time.
type Worker struct {
	l        log.Logger
	ch       pkgRabb.IChannel
	discord  discord.IDiscord
	exchange string
}

// NewWorker declares the worker queue, binds it to every action routing key
// and returns a worker ready to Run.
func NewWorker(l log.Logger, conn pkgRabb.IRabbitMQ, exchange string, d discord.IDiscord) (*Worker, error) {
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

	if _, err := ch.QueueDeclare(pkgRabb.QueueArgs{
		Name:    workerQueue,
		Durable: true,
	}); err != nil {
		return nil, err
	}

	if err := ch.QueueBind(pkgRabb.QueueBindArgs{
		Queue:    workerQueue,
		Key:      "action.#",
		Exchange: exchange,
	}); err != nil {
		return nil, err
	}

	return &Worker{l: l, ch: ch, discord: d, exchange: exchange}, nil
}

// Run blocks consuming commands until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.ch.Consume(pkgRabb.ConsumeArgs{
		Queue:    workerQueue,
		Consumer: "enforcement-worker",
	})
	if err != nil {
		return err
	}

	w.l.Infof(ctx, "Enforcement worker consuming from %s", workerQueue)

	for {
		select {
		case <-ctx.Done():
			return w.ch.Close()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}

			var cmd Command
			if err := json.Unmarshal(delivery.Body, &cmd); err != nil {
				w.l.Errorf(ctx, "enforcement.Worker: Failed to decode command: %v", err)
				_ = delivery.Nack(false, false)
				continue
			}

			w.handle(ctx, cmd)
			_ = delivery.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, cmd Command) {
	w.l.Infof(ctx, "enforcement.Worker: Applying %s to content %s (flag %s, by %s)",
		cmd.ActionType, cmd.ContentID, cmd.FlagID, cmd.ExecutedBy)

	if cmd.ActionType == model.ActionDeleteContent || cmd.ActionType == model.ActionBanUser {
		w.alert(ctx, cmd)
	}
}

func (w *Worker) alert(ctx context.Context, cmd Command) {
	if w.discord == nil {
		return
	}
	if err := w.discord.SendWarning(ctx, "Irreversible enforcement action",
		fmt.Sprintf("%s on content %s (flag %s) executed by %s",
			cmd.ActionType, cmd.ContentID, cmd.FlagID, cmd.ExecutedBy)); err != nil {
		w.l.Warnf(ctx, "enforcement.Worker: Failed to send alert: %v", err)
	}
}
