package controller

import "github.com/labstack/echo/v4"

type HealthController interface {
	Health(c echo.Context) error
	DBCheck(c echo.Context) error
	Hello(c echo.Context) error
}
