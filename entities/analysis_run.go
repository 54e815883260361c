package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnalysisParams struct {
	WindowDays int      `json:"window_days"`
	Platforms  []string `json:"platforms"`
}

type PillarLift struct {
	Name           string  `json:"name"`
	LiftVsBaseline float64 `json:"lift_vs_baseline"`
}

// FormatMultipliers holds engagement multipliers per format, e.g. "2.7x".
type FormatMultipliers struct {
	Reels     string `json:"reels"`
	Carousels string `json:"carousels"`
	Static    string `json:"static"`
}

type CadenceComparison struct {
	CompetitorsMedianPostsPerWeek int `json:"competitors_median_posts_per_week"`
	ClientPostsPerWeek            int `json:"client_posts_per_week"`
}

type AnalysisSummary struct {
	TopPillars        []PillarLift      `json:"top_pillars"`
	BestFormats       FormatMultipliers `json:"best_formats"`
	Cadence           CadenceComparison `json:"cadence"`
	UnderusedByClient []string          `json:"underused_by_client"`
}

// AnalysisRun is immutable once created.
type AnalysisRun struct {
	ID         string                              `gorm:"primaryKey;type:varchar(36)" json:"id"`
	BusinessID string                              `gorm:"index;type:varchar(36);not null" json:"business_id"`
	Business   *Business                           `json:"-"`
	Params     datatypes.JSONType[AnalysisParams]  `json:"params"`
	Summary    datatypes.JSONType[AnalysisSummary] `json:"summary"`
	CreatedAt  time.Time                           `json:"created_at"`
}

func (AnalysisRun) TableName() string { return "analysis_runs" }

func (r *AnalysisRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
