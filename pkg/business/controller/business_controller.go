package controller

import "github.com/labstack/echo/v4"

type BusinessController interface {
	List(c echo.Context) error
}
