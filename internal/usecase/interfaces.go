package usecase

import (
	"context"

	"github.com/xavierca1/canchoice-leads/internal/entity"
	"github.com/xavierca1/canchoice-leads/internal/infra/queue"
)

// CRMGateway is what the use cases need from the CRM integration.
type CRMGateway interface {
	SearchLeads(ctx context.Context, criteria string) ([]entity.LeadRecord, error)
	CreateLead(ctx context.Context, fields map[string]any) (map[string]any, error)
}

type QueueProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}
