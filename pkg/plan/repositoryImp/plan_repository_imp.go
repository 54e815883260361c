package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"planner/entities"
	"planner/pkg/apperr"
	"planner/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Create(ctx context.Context, p *entities.ContentPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *planRepo) LatestByBusiness(ctx context.Context, businessID string) (*entities.ContentPlan, error) {
	var p entities.ContentPlan
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Order("id DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

type itemRepo struct{ db *gorm.DB }

func NewItems(db *gorm.DB) repository.ItemRepository { return &itemRepo{db} }

func (r *itemRepo) BulkInsert(ctx context.Context, items []entities.PlanItem) ([]entities.PlanItem, error) {
	if len(items) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListByPlan(ctx context.Context, planID string) ([]entities.PlanItem, error) {
	out := []entities.PlanItem{}
	err := r.db.WithContext(ctx).
		Where("content_plan_id = ?", planID).
		Order("post_date ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
