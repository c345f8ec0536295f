// Package events publishes lifecycle integration events to a RabbitMQ topic
// exchange for downstream consumers (audit, e-mail, mobile push). Publishing
// is strictly fire-and-forget: a broker failure is logged and the triggering
// operation never sees it.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/craftnet/craftnet-be/internal/api/dto"
	"github.com/craftnet/craftnet-be/internal/api/model"
	"github.com/craftnet/craftnet-be/shared/rabbitmq"
)

// Routing keys on the craftnet.events exchange.
const (
	RoutingKeyJobCreated      = "job.created"
	RoutingKeyJobAccepted     = "job.accepted"
	RoutingKeyJobCompleted    = "job.completed"
	RoutingKeyProposalCreated = "proposal.created"
)

type envelope struct {
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publisher implements the services' EventSink over the shared RabbitMQ
// client.
type Publisher struct {
	client *rabbitmq.Client
	logger *slog.Logger
}

func NewPublisher(client *rabbitmq.Client, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger,
	}
}

func (p *Publisher) JobCreated(ctx context.Context, job *model.JobDetail) {
	p.publish(ctx, RoutingKeyJobCreated, dto.NewJobDTO(job))
}

func (p *Publisher) JobAccepted(ctx context.Context, job *model.JobDetail) {
	p.publish(ctx, RoutingKeyJobAccepted, dto.NewJobDTO(job))
}

func (p *Publisher) JobCompleted(ctx context.Context, job *model.JobDetail) {
	p.publish(ctx, RoutingKeyJobCompleted, dto.NewJobDTO(job))
}

func (p *Publisher) ProposalCreated(ctx context.Context, proposal *model.ProposalDetail) {
	p.publish(ctx, RoutingKeyProposalCreated, dto.NewProposalDTO(proposal))
}

func (p *Publisher) publish(ctx context.Context, routingKey string, data any) {
	body, err := json.Marshal(envelope{
		Event:      routingKey,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		p.logger.Error("Failed to marshal integration event",
			slog.String("routing_key", routingKey),
			slog.Any("error", err),
		)
		return
	}

	if err := p.client.PublishTo(ctx, routingKey, body, "application/json"); err != nil {
		p.logger.Warn("Failed to publish integration event",
			slog.String("routing_key", routingKey),
			slog.Any("error", err),
		)
	}
}
