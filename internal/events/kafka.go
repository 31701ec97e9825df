package events

import (
	"context"
	"encoding/json"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/pkg/kafka"
	"moderation-srv/pkg/log"
)

type envelope struct {
	Type       string    `json:"type"`
	FlagID     string    `json:"flag_id"`
	ContentID  string    `json:"content_id"`
	Status     string    `json:"status"`
	Severity   string    `json:"severity"`
	Decision   string    `json:"decision,omitempty"`
	ReviewedBy string    `json:"reviewed_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type implPublisher struct {
	l        log.Logger
	producer kafka.IProducer
}

// NewPublisher - Factory
func NewPublisher(l log.Logger, producer kafka.IProducer) Publisher {
	return &implPublisher{l: l, producer: producer}
}

func (p *implPublisher) FlagCreated(ctx context.Context, flag *model.ContentFlag) {
	p.publish(ctx, envelope{
		Type:       EventFlagCreated,
		FlagID:     flag.ID,
		ContentID:  flag.ContentID,
		Status:     flag.Status,
		Severity:   flag.Severity,
		OccurredAt: time.Now(),
	})
}

func (p *implPublisher) FlagReviewed(ctx context.Context, flag *model.ContentFlag, decision string) {
	p.publish(ctx, envelope{
		Type:       EventFlagReviewed,
		FlagID:     flag.ID,
		ContentID:  flag.ContentID,
		Status:     flag.Status,
		Severity:   flag.Severity,
		Decision:   decision,
		ReviewedBy: flag.ReviewedBy,
		OccurredAt: time.Now(),
	})
}

func (p *implPublisher) publish(ctx context.Context, ev envelope) {
	value, err := json.Marshal(ev)
	if err != nil {
		p.l.Errorf(ctx, "events.publish: Failed to marshal %s for flag %s: %v", ev.Type, ev.FlagID, err)
		return
	}
	if err := p.producer.Publish([]byte(ev.FlagID), value); err != nil {
		p.l.Errorf(ctx, "events.publish: Failed to publish %s for flag %s: %v", ev.Type, ev.FlagID, err)
	}
}

// NopPublisher discards every event. Used when the broker is not configured.
type NopPublisher struct{}

func (NopPublisher) FlagCreated(context.Context, *model.ContentFlag)          {}
func (NopPublisher) FlagReviewed(context.Context, *model.ContentFlag, string) {}
