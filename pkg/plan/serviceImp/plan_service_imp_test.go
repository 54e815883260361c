package serviceImp

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"planner/entities"
	analysisrepo "planner/pkg/analysis/repository"
	analysisRepoImp "planner/pkg/analysis/repositoryImp"
	"planner/pkg/apperr"
	bizRepoImp "planner/pkg/business/repositoryImp"
	bizsvc "planner/pkg/business/service"
	bizSvcImp "planner/pkg/business/serviceImp"
	planrepo "planner/pkg/plan/repository"
	planRepoImp "planner/pkg/plan/repositoryImp"
	"planner/pkg/plan/service"
	"planner/pkg/plan/types"
	"planner/pkg/testutil"
)

var genTime = time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

type deps struct {
	runs  analysisrepo.AnalysisRunRepository
	plans planrepo.PlanRepository
	items planrepo.ItemRepository
}

func realDeps(db *gorm.DB) deps {
	return deps{
		runs:  analysisRepoImp.New(db),
		plans: planRepoImp.New(db),
		items: planRepoImp.NewItems(db),
	}
}

func newSvc(db *gorm.DB, d deps, opts ...Option) *PlanSvc {
	opts = append([]Option{WithClock(testutil.FixedClock(genTime))}, opts...)
	return NewPlanService(bizSvcImp.NewBusinessService(bizRepoImp.New(db)), d.runs, d.plans, d.items, opts...)
}

func TestGenerateCreatesSevenConsecutiveItems(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSvc(db, realDeps(db))

	res, err := svc.Generate(context.Background(), bizsvc.ResolveRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, res.BusinessID)
	require.NotEmpty(t, res.AnalysisRunID)
	require.NotEmpty(t, res.ContentPlanID)
	require.Len(t, res.Items, types.PlanDays)

	templates := types.DailyTemplates()
	seen := map[string]bool{}
	for i, it := range res.Items {
		assert.NotEmpty(t, it.ID)
		assert.Equal(t, res.ContentPlanID, it.ContentPlanID)
		assert.Equal(t, genTime.AddDate(0, 0, i).Format(entities.DateLayout), it.PostDate)
		assert.False(t, seen[it.PostDate], "duplicate date %s", it.PostDate)
		seen[it.PostDate] = true

		tpl := templates[i%len(templates)]
		assert.Equal(t, tpl.Platform, it.Platform)
		assert.Equal(t, tpl.Format, it.Format)
		assert.Equal(t, tpl.Pillar, it.Pillar)
		assert.Equal(t, tpl.IdeaTitle, it.IdeaTitle)
		assert.Equal(t, tpl.IdeaDescription, it.IdeaDescription)
		assert.Equal(t, tpl.SuggestedHook, it.SuggestedHook)
		assert.Equal(t, tpl.CaptionPrompt, it.CaptionPrompt)
	}

	var plan entities.ContentPlan
	require.NoError(t, db.First(&plan, "id = ?", res.ContentPlanID).Error)
	assert.Equal(t, "2025-03-10", plan.PeriodStart)
	assert.Equal(t, "2025-03-16", plan.PeriodEnd)
	assert.Equal(t, res.AnalysisRunID, plan.AnalysisRunID)
	assert.Equal(t, types.DemoPlanSummary(), plan.Summary.Data())

	var run entities.AnalysisRun
	require.NoError(t, db.First(&run, "id = ?", res.AnalysisRunID).Error)
	assert.Equal(t, res.BusinessID, run.BusinessID, "plan's run belongs to the same business")
	assert.Equal(t, types.DefaultAnalysisParams(), run.Params.Data())
	assert.Equal(t, types.DemoAnalysisSummary(), run.Summary.Data())
}

func TestGenerateUsesConfiguredLocation(t *testing.T) {
	db := testutil.NewDB(t)
	bangkok := time.FixedZone("ICT", 7*60*60)
	// 20:00 UTC on the 10th is already the 11th in UTC+7.
	svc := newSvc(db, realDeps(db),
		WithClock(testutil.FixedClock(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC))),
		WithLocation(bangkok))

	res, err := svc.Generate(context.Background(), bizsvc.ResolveRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", res.Items[0].PostDate)
	assert.Equal(t, "2025-03-17", res.Items[6].PostDate)
}

func TestGenerateSpansMonthBoundary(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSvc(db, realDeps(db), WithClock(testutil.FixedClock(time.Date(2024, 2, 26, 8, 0, 0, 0, time.UTC))))

	res, err := svc.Generate(context.Background(), bizsvc.ResolveRequest{})
	require.NoError(t, err)

	var got []string
	for _, it := range res.Items {
		got = append(got, it.PostDate)
	}
	assert.Equal(t, []string{"2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02", "2024-03-03"}, got)
}

func TestBuildItemsWrapsShortTemplateList(t *testing.T) {
	templates := types.DailyTemplates()[:3]
	items, err := BuildItems("plan-1", genTime, templates)
	require.NoError(t, err)
	require.Len(t, items, types.PlanDays)

	var pillars []string
	for _, it := range items {
		pillars = append(pillars, it.Pillar)
	}
	assert.Equal(t, []string{"BTS", "Offer", "Staff", "BTS", "Offer", "Staff", "BTS"}, pillars)
}

func TestBuildItemsRequiresTemplates(t *testing.T) {
	_, err := BuildItems("plan-1", genTime, nil)
	require.Error(t, err)
}

func TestGenerateUnknownBusinessCreatesNothing(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSvc(db, realDeps(db))

	_, err := svc.Generate(context.Background(), bizsvc.ResolveRequest{BusinessID: "5b0a3f8e-0000-4000-8000-000000000000"})
	require.Error(t, err)
	assert.Equal(t, bizsvc.StageCheckBusiness, apperr.StageOf(err))
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	assert.Zero(t, testutil.Count(t, db, &entities.Business{}))
	assert.Zero(t, testutil.Count(t, db, &entities.AnalysisRun{}))
	assert.Zero(t, testutil.Count(t, db, &entities.ContentPlan{}))
	assert.Zero(t, testutil.Count(t, db, &entities.PlanItem{}))
}

type failingRuns struct {
	analysisrepo.AnalysisRunRepository
}

func (failingRuns) Create(context.Context, *entities.AnalysisRun) error {
	return errors.New("insert into analysis_runs: permission denied")
}

type failingPlans struct{ planrepo.PlanRepository }

func (failingPlans) Create(context.Context, *entities.ContentPlan) error {
	return errors.New("content_plans: disk full")
}

type failingItems struct{ planrepo.ItemRepository }

func (failingItems) BulkInsert(context.Context, []entities.PlanItem) ([]entities.PlanItem, error) {
	return nil, errors.New("plan_items: value too long")
}

func TestGenerateStopsAtFailingStageWithoutRollback(t *testing.T) {
	cases := []struct {
		name      string
		wrap      func(deps) deps
		stage     string
		msg       string
		wantRuns  int64
		wantPlans int64
	}{
		{
			name:  "analysis run",
			wrap:  func(d deps) deps { d.runs = failingRuns{d.runs}; return d },
			stage: service.StageCreateAnalysisRun,
			msg:   "insert into analysis_runs: permission denied",
		},
		{
			name:     "content plan",
			wrap:     func(d deps) deps { d.plans = failingPlans{d.plans}; return d },
			stage:    service.StageCreateContentPlan,
			msg:      "content_plans: disk full",
			wantRuns: 1,
		},
		{
			name:      "plan items",
			wrap:      func(d deps) deps { d.items = failingItems{d.items}; return d },
			stage:     service.StageInsertPlanItems,
			msg:       "plan_items: value too long",
			wantRuns:  1,
			wantPlans: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := testutil.NewDB(t)
			svc := newSvc(db, tc.wrap(realDeps(db)))

			res, err := svc.Generate(context.Background(), bizsvc.ResolveRequest{})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tc.stage, apperr.StageOf(err))
			assert.Equal(t, tc.msg, err.Error())
			assert.Equal(t, http.StatusInternalServerError, apperr.HTTPStatus(err))

			assert.EqualValues(t, 1, testutil.Count(t, db, &entities.Business{}))
			assert.Equal(t, tc.wantRuns, testutil.Count(t, db, &entities.AnalysisRun{}))
			assert.Equal(t, tc.wantPlans, testutil.Count(t, db, &entities.ContentPlan{}))
			assert.Zero(t, testutil.Count(t, db, &entities.PlanItem{}))
		})
	}
}

func TestLatestReturnsPlanWithItems(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSvc(db, realDeps(db))

	res, err := svc.Generate(context.Background(), bizsvc.ResolveRequest{})
	require.NoError(t, err)

	plan, items, err := svc.Latest(context.Background(), res.BusinessID)
	require.NoError(t, err)
	assert.Equal(t, res.ContentPlanID, plan.ID)
	assert.Equal(t, "2025-03-10", plan.PeriodStart)
	assert.Equal(t, "2025-03-16", plan.PeriodEnd)
	require.Len(t, items, types.PlanDays)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].PostDate, items[i].PostDate)
	}
	for _, it := range items {
		assert.GreaterOrEqual(t, it.PostDate, plan.PeriodStart)
		assert.LessOrEqual(t, it.PostDate, plan.PeriodEnd)
	}
}

func TestLatestPicksMostRecentPlan(t *testing.T) {
	db := testutil.NewDB(t)
	biz := &entities.Business{Name: "Corner Cafe"}
	require.NoError(t, db.Create(biz).Error)
	run := &entities.AnalysisRun{BusinessID: biz.ID, Params: datatypes.NewJSONType(types.DefaultAnalysisParams())}
	require.NoError(t, db.Create(run).Error)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i, start := range []string{"2025-03-01", "2025-03-08", "2025-03-05"} {
		p := &entities.ContentPlan{
			BusinessID:    biz.ID,
			AnalysisRunID: run.ID,
			PeriodStart:   start,
			CreatedAt:     base.Add(time.Duration([]int{0, 2, 1}[i]) * time.Hour),
		}
		require.NoError(t, db.Create(p).Error)
		ids = append(ids, p.ID)
	}

	plan, items, err := newSvc(db, realDeps(db)).Latest(context.Background(), biz.ID)
	require.NoError(t, err)
	assert.Equal(t, ids[1], plan.ID)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestLatestSecondGenerationWins(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSvc(db, realDeps(db))

	first, err := svc.Generate(context.Background(), bizsvc.ResolveRequest{})
	require.NoError(t, err)
	second, err := svc.GenerateForBusiness(context.Background(), first.BusinessID)
	require.NoError(t, err)

	plan, _, err := svc.Latest(context.Background(), first.BusinessID)
	require.NoError(t, err)
	assert.Equal(t, second.ContentPlanID, plan.ID)
	assert.EqualValues(t, 2, testutil.Count(t, db, &entities.ContentPlan{}))
}

func TestLatestErrors(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSvc(db, realDeps(db))

	_, _, err := svc.Latest(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))
	assert.Equal(t, "Missing businessId", err.Error())

	_, _, err = svc.Latest(context.Background(), "no-such-business")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))
	assert.Equal(t, "No plan", err.Error())
}
