// Package events publishes audit records for domain mutations to Kafka.
// Publishing is fire and forget; a broker outage must never fail the write
// that triggered the event.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionStatusChanged = "status_changed"
	ActionAssigned      = "assigned"
	ActionPaymentTaken  = "payment_recorded"
)

type AuditEvent struct {
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, action, entity, entityID string)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, action, entity, entityID string) {
	if !p.cfg.Kafka.Enable {
		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event := AuditEvent{
		Actor:      actor,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()

		err := p.client.SendMessages(c, p.cfg.Kafka.AuditTopic, kafka.Message{
			Key:   entity + ":" + entityID,
			Value: event,
		})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("entity", entity).Str("action", action).Msg("failed to publish audit event")
		}
	}()
}
