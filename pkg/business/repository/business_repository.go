package repository

import (
	"context"

	"planner/entities"
)

type BusinessRepository interface {
	Create(ctx context.Context, b *entities.Business) error
	// FindByID returns apperr.ErrNotFound when no business has the id.
	FindByID(ctx context.Context, id string) (*entities.Business, error)
	ListRecent(ctx context.Context, limit int) ([]entities.BusinessSummary, error)
}
