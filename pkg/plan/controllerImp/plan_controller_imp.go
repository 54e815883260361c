package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"planner/pkg/apperr"
	"planner/pkg/logger"
	"planner/pkg/plan/controller"
	"planner/pkg/plan/export"
	"planner/pkg/plan/service"
	"planner/pkg/response"
)

type PlanCtrl struct{ svc service.PlanService }

var _ controller.PlanController = (*PlanCtrl)(nil)

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

// Generate handles POST /analysis-runs.
func (h *PlanCtrl) Generate(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("generate panic: %v", r)
			err = response.FailStaged(c, apperr.FromPanic(r))
		}
	}()

	req := decodeGenerateReq(c.Request().Body)

	res, err := h.svc.Generate(c.Request().Context(), req)
	if err != nil {
		return response.FailStaged(c, err)
	}
	return response.OK(c, echo.Map{
		"businessId":    res.BusinessID,
		"analysisRunId": res.AnalysisRunID,
		"contentPlanId": res.ContentPlanID,
		"items":         res.Items,
	})
}

// Latest handles GET /content-plans?businessId=ID.
func (h *PlanCtrl) Latest(c echo.Context) error {
	plan, items, err := h.svc.Latest(c.Request().Context(), c.QueryParam("businessId"))
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, echo.Map{"plan": plan, "items": items})
}

// Export handles GET /content-plans/export?businessId=ID.
func (h *PlanCtrl) Export(c echo.Context) error {
	plan, items, err := h.svc.Latest(c.Request().Context(), c.QueryParam("businessId"))
	if err != nil {
		return response.Fail(c, err)
	}
	data, err := export.Bytes(plan, items)
	if err != nil {
		return response.Fail(c, apperr.Unknown(err))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename(plan)))
	return c.Blob(http.StatusOK, export.ContentType, data)
}
