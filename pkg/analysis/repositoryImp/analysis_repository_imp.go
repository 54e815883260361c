package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"planner/entities"
	"planner/pkg/analysis/repository"
)

type analysisRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnalysisRunRepository { return &analysisRepo{db} }

func (r *analysisRepo) Create(ctx context.Context, run *entities.AnalysisRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}
