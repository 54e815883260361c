package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"planner/config"
	"planner/router"

	// Analysis
	analysisRepoImp "planner/pkg/analysis/repositoryImp"

	// Business
	bizCtrlImp "planner/pkg/business/controllerImp"
	bizRepoImp "planner/pkg/business/repositoryImp"
	bizSvcImp "planner/pkg/business/serviceImp"

	// Plan
	planCtrlImp "planner/pkg/plan/controllerImp"
	planRepoImp "planner/pkg/plan/repositoryImp"
	planSvcImp "planner/pkg/plan/serviceImp"

	// Health
	healthCtrlImp "planner/pkg/health/controllerImp"
	healthRepoImp "planner/pkg/health/repositoryImp"
)

// newServer wires repositories, services and controllers onto a fresh echo
// instance. clock may be nil to use time.Now.
func newServer(cfg config.AppConfig, db *gorm.DB, clock func() time.Time) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	bizSvc := bizSvcImp.NewBusinessService(bizRepoImp.New(db))

	opts := []planSvcImp.Option{planSvcImp.WithLocation(cfg.Location())}
	if clock != nil {
		opts = append(opts, planSvcImp.WithClock(clock))
	}
	planSvc := planSvcImp.NewPlanService(
		bizSvc,
		analysisRepoImp.New(db),
		planRepoImp.New(db),
		planRepoImp.NewItems(db),
		opts...,
	)

	return router.New(
		e,
		bizCtrlImp.New(bizSvc),
		planCtrlImp.NewPlanCtrl(planSvc),
		healthCtrlImp.NewHealthCtrl(healthRepoImp.New(db)),
	)
}
