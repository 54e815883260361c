// Package export renders a content plan as a spreadsheet calendar.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"planner/entities"
)

const (
	PlanSheet    = "Plan"
	SummarySheet = "Summary"
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var planHeader = []interface{}{
	"Date", "Platform", "Format", "Pillar", "Idea", "Description", "Hook", "Caption prompt",
}

// Workbook builds a two-sheet workbook: one row per item on "Plan", and the
// period and narrative on "Summary".
func Workbook(plan *entities.ContentPlan, items []entities.PlanItem) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", PlanSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(PlanSheet, "A1", &planHeader); err != nil {
		return nil, err
	}
	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			it.PostDate, it.Platform, it.Format, it.Pillar,
			it.IdeaTitle, it.IdeaDescription, it.SuggestedHook, it.CaptionPrompt,
		}
		if err := f.SetSheetRow(PlanSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(PlanSheet, "E", "H", 40); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	summary := plan.Summary.Data()
	rows := [][]interface{}{
		{"Plan", plan.ID},
		{"Period start", plan.PeriodStart},
		{"Period end", plan.PeriodEnd},
		{"Narrative", summary.Narrative},
		{"Reels / week", summary.WeeklyCadence.Reels},
		{"Stories / week", summary.WeeklyCadence.Stories},
		{"Static / week", summary.WeeklyCadence.Static},
	}
	for i := range rows {
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Bytes renders the workbook into memory.
func Bytes(plan *entities.ContentPlan, items []entities.PlanItem) ([]byte, error) {
	f, err := Workbook(plan, items)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename is the attachment name for a plan export.
func Filename(plan *entities.ContentPlan) string {
	return fmt.Sprintf("content-plan-%s.xlsx", plan.PeriodStart)
}
