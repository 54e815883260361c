package repository

import (
	"context"

	"planner/entities"
)

type PlanRepository interface {
	Create(ctx context.Context, p *entities.ContentPlan) error
	// LatestByBusiness returns the most recently created plan, or
	// apperr.ErrNotFound when the business has none.
	LatestByBusiness(ctx context.Context, businessID string) (*entities.ContentPlan, error)
}

type ItemRepository interface {
	BulkInsert(ctx context.Context, items []entities.PlanItem) ([]entities.PlanItem, error)
	ListByPlan(ctx context.Context, planID string) ([]entities.PlanItem, error)
}
