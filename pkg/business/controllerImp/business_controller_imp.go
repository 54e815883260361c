package controllerImp

import (
	"github.com/labstack/echo/v4"

	"planner/pkg/business/controller"
	"planner/pkg/business/service"
	"planner/pkg/response"
)

type BusinessCtrl struct{ svc service.BusinessService }

var _ controller.BusinessController = (*BusinessCtrl)(nil)

func New(svc service.BusinessService) *BusinessCtrl { return &BusinessCtrl{svc} }

func (h *BusinessCtrl) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, echo.Map{"businesses": list})
}
