package repository

import (
	"context"

	"planner/entities"
)

type AnalysisRunRepository interface {
	Create(ctx context.Context, r *entities.AnalysisRun) error
}
