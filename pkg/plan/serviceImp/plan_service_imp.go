package serviceImp

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"planner/entities"
	analysisrepo "planner/pkg/analysis/repository"
	"planner/pkg/apperr"
	bizsvc "planner/pkg/business/service"
	"planner/pkg/logger"
	planrepo "planner/pkg/plan/repository"
	"planner/pkg/plan/service"
	"planner/pkg/plan/types"
)

type PlanSvc struct {
	businesses bizsvc.BusinessService
	runs       analysisrepo.AnalysisRunRepository
	plans      planrepo.PlanRepository
	items      planrepo.ItemRepository
	templates  []types.DailyTemplate
	now        func() time.Time
	loc        *time.Location
}

var _ service.PlanService = (*PlanSvc)(nil)

type Option func(*PlanSvc)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option { return func(s *PlanSvc) { s.now = now } }

// WithLocation sets the timezone in which "today" is evaluated.
func WithLocation(loc *time.Location) Option { return func(s *PlanSvc) { s.loc = loc } }

// WithTemplates replaces the daily template list.
func WithTemplates(t []types.DailyTemplate) Option { return func(s *PlanSvc) { s.templates = t } }

func NewPlanService(b bizsvc.BusinessService, rr analysisrepo.AnalysisRunRepository, pr planrepo.PlanRepository, ir planrepo.ItemRepository, opts ...Option) *PlanSvc {
	s := &PlanSvc{
		businesses: b,
		runs:       rr,
		plans:      pr,
		items:      ir,
		templates:  types.DailyTemplates(),
		now:        time.Now,
		loc:        time.UTC,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *PlanSvc) Generate(ctx context.Context, req bizsvc.ResolveRequest) (*service.GenerateResult, error) {
	businessID, err := s.businesses.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.GenerateForBusiness(ctx, businessID)
}

func (s *PlanSvc) GenerateForBusiness(ctx context.Context, businessID string) (*service.GenerateResult, error) {
	log := logger.Log.WithField("business_id", businessID)

	run := &entities.AnalysisRun{
		BusinessID: businessID,
		Params:     datatypes.NewJSONType(types.DefaultAnalysisParams()),
		Summary:    datatypes.NewJSONType(types.DemoAnalysisSummary()),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, s.fail(log, service.StageCreateAnalysisRun, err)
	}

	start := s.today()
	plan := &entities.ContentPlan{
		BusinessID:    businessID,
		AnalysisRunID: run.ID,
		PeriodStart:   start.Format(entities.DateLayout),
		PeriodEnd:     start.AddDate(0, 0, types.PlanDays-1).Format(entities.DateLayout),
		Summary:       datatypes.NewJSONType(types.DemoPlanSummary()),
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, s.fail(log.WithField("analysis_run_id", run.ID), service.StageCreateContentPlan, err)
	}

	items, err := BuildItems(plan.ID, start, s.templates)
	if err != nil {
		return nil, s.fail(log, service.StageInsertPlanItems, err)
	}
	inserted, err := s.items.BulkInsert(ctx, items)
	if err != nil {
		// the plan row stays behind without items
		return nil, s.fail(log.WithField("content_plan_id", plan.ID), service.StageInsertPlanItems, err)
	}

	log.WithFields(logrus.Fields{
		"analysis_run_id": run.ID,
		"content_plan_id": plan.ID,
		"period":          plan.PeriodStart + ".." + plan.PeriodEnd,
	}).Info("content plan generated")

	return &service.GenerateResult{
		BusinessID:    businessID,
		AnalysisRunID: run.ID,
		ContentPlanID: plan.ID,
		Items:         inserted,
	}, nil
}

func (s *PlanSvc) Latest(ctx context.Context, businessID string) (*entities.ContentPlan, []entities.PlanItem, error) {
	if businessID == "" {
		return nil, nil, apperr.Validation("", "Missing businessId")
	}
	plan, err := s.plans.LatestByBusiness(ctx, businessID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, nil, apperr.NotFound("", "No plan")
	}
	if err != nil {
		return nil, nil, apperr.Store("", err)
	}
	items, err := s.items.ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, nil, apperr.Store("", err)
	}
	return plan, items, nil
}

// today is midnight of the current calendar day in the service location.
func (s *PlanSvc) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

func (s *PlanSvc) fail(log *logrus.Entry, stage string, err error) error {
	log.WithField("stage", stage).Errorf("plan generation failed: %v", err)
	return apperr.Store(stage, err)
}

// BuildItems dates one item per plan day starting at start. Day i takes
// templates[i % len(templates)].
func BuildItems(planID string, start time.Time, templates []types.DailyTemplate) ([]entities.PlanItem, error) {
	if len(templates) == 0 {
		return nil, errors.New("no daily templates configured")
	}
	items := make([]entities.PlanItem, 0, types.PlanDays)
	for i := 0; i < types.PlanDays; i++ {
		t := templates[i%len(templates)]
		items = append(items, entities.PlanItem{
			ContentPlanID:   planID,
			PostDate:        start.AddDate(0, 0, i).Format(entities.DateLayout),
			Platform:        t.Platform,
			Format:          t.Format,
			Pillar:          t.Pillar,
			IdeaTitle:       t.IdeaTitle,
			IdeaDescription: t.IdeaDescription,
			SuggestedHook:   t.SuggestedHook,
			CaptionPrompt:   t.CaptionPrompt,
		})
	}
	return items, nil
}
