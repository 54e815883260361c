package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"planner/entities"
	"planner/pkg/apperr"
	"planner/pkg/business/repository"
)

type businessRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BusinessRepository { return &businessRepo{db} }

func (r *businessRepo) Create(ctx context.Context, b *entities.Business) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *businessRepo) FindByID(ctx context.Context, id string) (*entities.Business, error) {
	var b entities.Business
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *businessRepo) ListRecent(ctx context.Context, limit int) ([]entities.BusinessSummary, error) {
	out := make([]entities.BusinessSummary, 0, limit)
	err := r.db.WithContext(ctx).
		Model(&entities.Business{}).
		Select("id", "name", "city", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
