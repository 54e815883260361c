package serviceImp

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"planner/entities"
	"planner/pkg/apperr"
	repo "planner/pkg/business/repository"
	"planner/pkg/business/service"
	"planner/pkg/logger"
)

type businessSvc struct{ r repo.BusinessRepository }

func NewBusinessService(r repo.BusinessRepository) service.BusinessService { return &businessSvc{r} }

func (s *businessSvc) Resolve(ctx context.Context, req service.ResolveRequest) (string, error) {
	if req.BusinessID != "" {
		b, err := s.r.FindByID(ctx, req.BusinessID)
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.NotFound(service.StageCheckBusiness, "Business not found").WithStatus(http.StatusBadRequest)
		}
		if err != nil {
			return "", apperr.Store(service.StageCheckBusiness, err).WithStatus(http.StatusBadRequest)
		}
		return b.ID, nil
	}

	b := &entities.Business{
		Name:     service.DefaultName,
		Category: service.DefaultCategory,
		City:     service.DefaultCity,
		Goals:    service.DefaultGoals(),
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.City != nil {
		b.City = *req.City
	}
	if err := s.r.Create(ctx, b); err != nil {
		logger.Log.WithFields(logrus.Fields{"stage": service.StageCreateBusiness}).Errorf("create business: %v", err)
		return "", apperr.Store(service.StageCreateBusiness, err)
	}
	logger.Log.WithFields(logrus.Fields{"business_id": b.ID, "name": b.Name}).Info("business created")
	return b.ID, nil
}

func (s *businessSvc) List(ctx context.Context) ([]entities.BusinessSummary, error) {
	out, err := s.r.ListRecent(ctx, service.ListLimit)
	if err != nil {
		return nil, apperr.Store("", err)
	}
	return out, nil
}
