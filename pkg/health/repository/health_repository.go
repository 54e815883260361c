package repository

import (
	"context"

	"planner/entities"
)

type HealthCheckRepository interface {
	Insert(ctx context.Context, note string) (*entities.HealthCheck, error)
	Recent(ctx context.Context, limit int) ([]entities.HealthCheck, error)
	Ping(ctx context.Context) error
}
