package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"planner/entities"
	"planner/pkg/health/repository"
)

type healthRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HealthCheckRepository { return &healthRepo{db} }

func (r *healthRepo) Insert(ctx context.Context, note string) (*entities.HealthCheck, error) {
	hc := &entities.HealthCheck{Note: note}
	if err := r.db.WithContext(ctx).Create(hc).Error; err != nil {
		return nil, err
	}
	return hc, nil
}

func (r *healthRepo) Recent(ctx context.Context, limit int) ([]entities.HealthCheck, error) {
	out := []entities.HealthCheck{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *healthRepo) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("gorm db is nil")
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
