package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spendwise/expense-system/internal/api/metrics"
	"github.com/spendwise/expense-system/internal/core/ports"
)

// DashboardHandler serves the aggregate views built by the summary service.
type DashboardHandler struct {
	summaries ports.SummaryService
}

func NewDashboardHandler(summaries ports.SummaryService) *DashboardHandler {
	return &DashboardHandler{summaries: summaries}
}

type dashboardResponse struct {
	MonthlyTotal      float64               `json:"monthly_total"`
	RecentExpenses    []ports.RecentExpense `json:"recent_expenses"`
	CategoryBreakdown []ports.CategoryTotal `json:"category_breakdown"`
	DailyTrend        []ports.DailyPoint    `json:"daily_trend"`
}

type monthlySeriesResponse struct {
	Year   int                  `json:"year"`
	Series []ports.MonthlyPoint `json:"series"`
}

// Overview handles GET /v1/dashboard. Every aggregate is scoped to the
// calling user, admins included; the cross-user view lives under /v1/admin.
//
// @Summary      Dashboard aggregates for the calling user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	timer := prometheusTimer("dashboard")
	defer timer()

	ctx := c.Request().Context()
	scope := ports.Scope{UserID: actor.UserID}
	now := time.Now().UTC()

	resp := dashboardResponse{
		MonthlyTotal:      h.summaries.MonthlyTotal(ctx, scope, now),
		RecentExpenses:    h.summaries.RecentExpenses(ctx, scope, 0),
		CategoryBreakdown: h.summaries.CategoryBreakdown(ctx, scope, now),
		DailyTrend:        h.summaries.DailyTrend(ctx, scope, now),
	}
	return c.JSON(http.StatusOK, resp)
}

// MonthlySeries handles GET /v1/dashboard/monthly-series. Admins see the
// series across all users; everyone else sees their own. The year defaults
// to the current one.
//
// @Summary      Jan..Dec spending series
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        year  query     int  false  "Calendar year, defaults to current"
// @Success      200   {object}  monthlySeriesResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/dashboard/monthly-series [get]
func (h *DashboardHandler) MonthlySeries(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	timer := prometheusTimer("monthly_series")
	defer timer()

	year, _ := strconv.Atoi(c.QueryParam("year"))
	if year <= 0 {
		year = time.Now().UTC().Year()
	}

	series := h.summaries.MonthlySeries(c.Request().Context(), actor.QueryScope(), year)
	return c.JSON(http.StatusOK, monthlySeriesResponse{Year: year, Series: series})
}

// prometheusTimer counts the request and returns a stop func recording its
// duration under the given view label.
func prometheusTimer(view string) func() {
	metrics.DashboardRequestsTotal.WithLabelValues(view).Inc()
	start := time.Now()
	return func() {
		metrics.DashboardRequestDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
	}
}
