package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	bizctrl "planner/pkg/business/controller"
	healthctrl "planner/pkg/health/controller"
	"planner/pkg/middleware"
	planctrl "planner/pkg/plan/controller"
)

// New registers every route under /api and, as a fallback, without prefix.
func New(
	e *echo.Echo,
	businessCtrl bizctrl.BusinessController,
	planCtrl planctrl.PlanController,
	healthCtrl healthctrl.HealthController,
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog())

	e.GET("/health", healthCtrl.Health)

	for _, g := range []*echo.Group{e.Group("/api"), e.Group("")} {
		g.GET("/hello", healthCtrl.Hello)
		g.GET("/db-check", healthCtrl.DBCheck)

		g.GET("/businesses", businessCtrl.List)

		g.POST("/analysis-runs", planCtrl.Generate)
		g.GET("/content-plans", planCtrl.Latest)
		g.GET("/content-plans/export", planCtrl.Export)
	}
	return e
}
