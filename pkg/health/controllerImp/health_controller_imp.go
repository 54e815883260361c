package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"planner/pkg/apperr"
	"planner/pkg/health/controller"
	"planner/pkg/health/repository"
	"planner/pkg/logger"
	"planner/pkg/response"
)

const (
	StageInsert = "insert"
	StageSelect = "select"

	// RecentLimit is how many markers db-check reads back.
	RecentLimit = 5
	marker      = "Ping from Go API"

	PingTimeout = 800 * time.Millisecond
)

var appStart = time.Now()

type HealthCtrl struct {
	repo repository.HealthCheckRepository
}

var _ controller.HealthController = (*HealthCtrl)(nil)

func NewHealthCtrl(repo repository.HealthCheckRepository) *HealthCtrl { return &HealthCtrl{repo: repo} }

type checkResult struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type liveness struct {
	Status    checkResult            `json:"status"`
	UptimeSec int                    `json:"uptime_sec"`
	Checks    map[string]checkResult `json:"checks"`
	Time      string                 `json:"time"`
}

func check(err error) checkResult {
	if err != nil {
		return checkResult{Err: err.Error()}
	}
	return checkResult{OK: true}
}

// Health reports liveness by pinging the database handle.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), PingTimeout)
	defer cancel()

	db := check(h.repo.Ping(ctx))
	out := liveness{
		Status:    checkResult{OK: db.OK},
		UptimeSec: int(time.Since(appStart).Seconds()),
		Checks:    map[string]checkResult{"database": db},
		Time:      time.Now().Format(time.RFC3339),
	}
	if !db.OK {
		logger.Log.WithField("check", "database").Warn(db.Err)
		return c.JSON(http.StatusServiceUnavailable, out)
	}
	return c.JSON(http.StatusOK, out)
}

// DBCheck writes a marker row and reads back the newest markers.
func (h *HealthCtrl) DBCheck(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = response.FailStaged(c, apperr.FromPanic(r))
		}
	}()

	ctx := c.Request().Context()
	inserted, err := h.repo.Insert(ctx, marker)
	if err != nil {
		logger.Log.WithField("stage", StageInsert).Errorf("db-check: %v", err)
		return response.FailStaged(c, apperr.Store(StageInsert, err))
	}
	recent, err := h.repo.Recent(ctx, RecentLimit)
	if err != nil {
		logger.Log.WithField("stage", StageSelect).Errorf("db-check: %v", err)
		return response.FailStaged(c, apperr.Store(StageSelect, err))
	}
	return response.OK(c, echo.Map{"inserted": inserted, "recent": recent})
}

func (h *HealthCtrl) Hello(c echo.Context) error {
	return response.OK(c, echo.Map{"message": "Hello from your backend"})
}
