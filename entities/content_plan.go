package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

type WeeklyCadence struct {
	Reels   int `json:"reels"`
	Stories int `json:"stories"`
	Static  int `json:"static"`
}

type PlanSummary struct {
	Narrative     string        `json:"narrative"`
	Pillars       []string      `json:"pillars"`
	WeeklyCadence WeeklyCadence `json:"weekly_cadence"`
}

type ContentPlan struct {
	ID            string                          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	BusinessID    string                          `gorm:"index:idx_content_plans_business_created,priority:1;type:varchar(36);not null" json:"business_id"`
	Business      *Business                       `json:"-"`
	AnalysisRunID string                          `gorm:"index;type:varchar(36);not null" json:"analysis_run_id"`
	AnalysisRun   *AnalysisRun                    `json:"-"`
	PeriodStart   string                          `gorm:"type:varchar(10)" json:"period_start"` // YYYY-MM-DD
	PeriodEnd     string                          `gorm:"type:varchar(10)" json:"period_end"`   // YYYY-MM-DD
	Summary       datatypes.JSONType[PlanSummary] `json:"summary"`
	CreatedAt     time.Time                       `gorm:"index:idx_content_plans_business_created,priority:2" json:"created_at"`
}

func (ContentPlan) TableName() string { return "content_plans" }

func (p *ContentPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type PlanItem struct {
	ID              string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ContentPlanID   string       `gorm:"index;type:varchar(36);not null" json:"content_plan_id"`
	ContentPlan     *ContentPlan `json:"-"`
	PostDate        string       `gorm:"type:varchar(10);index" json:"post_date"` // YYYY-MM-DD
	Platform        string       `json:"platform"`                                // instagram
	Format          string       `json:"format"`                                  // reel|story|post|carousel
	Pillar          string       `json:"pillar"`
	IdeaTitle       string       `json:"idea_title"`
	IdeaDescription string       `json:"idea_description"`
	SuggestedHook   string       `json:"suggested_hook"`
	CaptionPrompt   string       `json:"caption_prompt"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (PlanItem) TableName() string { return "plan_items" }

func (i *PlanItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
