package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CH-Shireesha/teacher-management/core/dashboard"
)

const defaultActivityLimit = 10

type dashboardApi struct {
	service *dashboard.Service
}

func registerDashboardAPI(g *echo.Group, svc *dashboard.Service) {
	api := dashboardApi{service: svc}

	dg := g.Group("/dashboard")
	dg.GET("/stats", api.dashboardStats)
	dg.GET("/activity", api.dashboardActivity)
}

// Handlers

func (api *dashboardApi) dashboardStats(ctx echo.Context) error {
	stats, err := api.service.Stats()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}

type activityResponse struct {
	dashboard.Activity
	When string `json:"when"`
}

func (api *dashboardApi) dashboardActivity(ctx echo.Context) error {
	limit := defaultActivityLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return errHttpBadRequest
		}
		limit = n
	}

	entries, err := api.service.Recent(limit)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res := make([]activityResponse, len(entries))
	for i, entry := range entries {
		res[i] = activityResponse{Activity: entry, When: dashboard.RelativeTime(entry.Time, now)}
	}
	return ctx.JSON(http.StatusOK, res)
}
