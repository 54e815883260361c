package service

import (
	"context"

	"planner/entities"
	bizsvc "planner/pkg/business/service"
)

const (
	StageCreateAnalysisRun = "create_analysis_run"
	StageCreateContentPlan = "create_content_plan"
	StageInsertPlanItems   = "insert_plan_items"
)

type GenerateResult struct {
	BusinessID    string              `json:"businessId"`
	AnalysisRunID string              `json:"analysisRunId"`
	ContentPlanID string              `json:"contentPlanId"`
	Items         []entities.PlanItem `json:"items"`
}

type PlanService interface {
	// Generate resolves the business and then runs GenerateForBusiness.
	Generate(ctx context.Context, req bizsvc.ResolveRequest) (*GenerateResult, error)
	// GenerateForBusiness inserts an analysis run, a content plan starting
	// today and one item per plan day, in that order. A failure stops the
	// sequence; rows inserted before it are kept.
	GenerateForBusiness(ctx context.Context, businessID string) (*GenerateResult, error)
	// Latest returns the newest plan of a business with its items by date.
	Latest(ctx context.Context, businessID string) (*entities.ContentPlan, []entities.PlanItem, error)
}
