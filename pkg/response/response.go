// Package response renders the {ok, ...} JSON envelopes shared by all handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"planner/pkg/apperr"
)

type ErrorBody struct {
	OK    bool   `json:"ok"`
	Stage string `json:"stage,omitempty"`
	Error string `json:"error"`
}

// OK writes {"ok": true} merged with fields.
func OK(c echo.Context, fields echo.Map) error {
	body := echo.Map{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

// Fail writes {"ok": false, "error": ...} with the status derived from err.
func Fail(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), ErrorBody{OK: false, Error: err.Error()})
}

// FailStaged is Fail plus the stage tag; untagged errors report "unknown".
func FailStaged(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), ErrorBody{OK: false, Stage: apperr.StageOf(err), Error: err.Error()})
}
