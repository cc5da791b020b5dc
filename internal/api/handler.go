package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zerojournal/tradepulse/internal/analytics"
	"github.com/zerojournal/tradepulse/internal/domain/dto"
	"github.com/zerojournal/tradepulse/internal/domain/models"
	"github.com/zerojournal/tradepulse/internal/service"
)

// Handler provides HTTP handlers for the analytics endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Translate them into a trade filter
//   - Delegate report building to the analytics service
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc        service.AnalyticsService
	displayCap float64
	window     int
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc:        analytics service used to build reports.
//   - displayCap: chart cap applied to ratio values in responses.
//   - window:     rolling-expectancy window size.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.AnalyticsService, displayCap float64, window int) *Handler {
	return &Handler{svc: svc, displayCap: displayCap, window: window}
}

// parseFilter extracts the shared query parameters every analytics
// endpoint accepts.
//
// Query Parameters:
//   - dataset (string, optional): dataset ID; empty selects the latest.
//   - from    (string, optional): inclusive lower date bound, YYYY-MM-DD.
//   - to      (string, optional): inclusive upper date bound, YYYY-MM-DD.
//   - symbols (string, optional): comma-separated symbol list.
//   - sectors (string, optional): comma-separated sector list.
//
// A nil filter return means a 400 has already been written.
func parseFilter(c *gin.Context) (string, *analytics.Filter) {
	datasetID := strings.TrimSpace(c.Query("dataset"))

	var f analytics.Filter
	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid from format, expected YYYY-MM-DD", err))
			return "", nil
		}
		f.From = &parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid to format, expected YYYY-MM-DD", err))
			return "", nil
		}
		f.To = &parsed
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("to must not be before from", nil))
		return "", nil
	}
	f.Symbols = splitList(c.Query("symbols"))
	f.Sectors = splitList(c.Query("sectors"))

	return datasetID, &f
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}

// report runs the shared load-and-build step. A nil return means an
// error response has already been written.
func (h *Handler) report(c *gin.Context) *models.Report {
	datasetID, f := parseFilter(c)
	if f == nil {
		return nil
	}
	r, err := h.svc.GetReport(c.Request.Context(), datasetID, *f)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("failed to build report", err))
		return nil
	}
	return &r
}

// GetMetrics handles GET /api/v1/metrics requests.
//
// GetMetrics godoc
// @Summary      Scalar performance metrics
// @Description  Returns every scalar statistic (win rate, profit factor, expectancy, streaks, Sharpe, drawdown) derived from one FIFO-matched trade set
// @Tags         analytics
// @Produce      json
// @Param        dataset  query     string  false  "Dataset ID (defaults to latest)"
// @Param        from     query     string  false  "Start date in YYYY-MM-DD" example(2024-01-01)
// @Param        to       query     string  false  "End date in YYYY-MM-DD" example(2024-03-31)
// @Param        symbols  query     string  false  "Comma-separated symbols" example(TCS,INFY)
// @Param        sectors  query     string  false  "Comma-separated sectors"
// @Success      200      {object}  dto.MetricsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse    "Not Found"
// @Router       /api/v1/metrics [get]
func (h *Handler) GetMetrics(c *gin.Context) {
	r := h.report(c)
	if r == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewMetricsResponse(*r, h.displayCap))
}

// GetStyles handles GET /api/v1/styles requests.
//
// GetStyles godoc
// @Summary      Trading-style breakdown
// @Description  Returns per-style trade counts, win rates and P&L (intraday, btst, velocity, swing, plus the derived pure_swing union)
// @Tags         analytics
// @Produce      json
// @Param        dataset  query     string  false  "Dataset ID (defaults to latest)"
// @Param        from     query     string  false  "Start date in YYYY-MM-DD"
// @Param        to       query     string  false  "End date in YYYY-MM-DD"
// @Param        symbols  query     string  false  "Comma-separated symbols"
// @Param        sectors  query     string  false  "Comma-separated sectors"
// @Success      200      {object}  dto.StylesResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse   "Not Found"
// @Router       /api/v1/styles [get]
func (h *Handler) GetStyles(c *gin.Context) {
	r := h.report(c)
	if r == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewStylesResponse(*r))
}

// GetTrends handles GET /api/v1/trends requests.
//
// GetTrends godoc
// @Summary      P&L trend series
// @Description  Returns daily, weekly, monthly and cumulative net P&L series plus the equity curve
// @Tags         analytics
// @Produce      json
// @Param        dataset  query     string  false  "Dataset ID (defaults to latest)"
// @Param        from     query     string  false  "Start date in YYYY-MM-DD"
// @Param        to       query     string  false  "End date in YYYY-MM-DD"
// @Param        symbols  query     string  false  "Comma-separated symbols"
// @Param        sectors  query     string  false  "Comma-separated sectors"
// @Success      200      {object}  dto.TrendsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse   "Not Found"
// @Router       /api/v1/trends [get]
func (h *Handler) GetTrends(c *gin.Context) {
	r := h.report(c)
	if r == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewTrendsResponse(*r))
}

// GetRollingSeries handles GET /api/v1/series/rolling requests.
//
// GetRollingSeries godoc
// @Summary      Rolling expectancy series
// @Description  Returns the rolling-window expectancy per scope (overall, intraday, swing)
// @Tags         series
// @Produce      json
// @Param        dataset  query     string  false  "Dataset ID (defaults to latest)"
// @Param        from     query     string  false  "Start date in YYYY-MM-DD"
// @Param        to       query     string  false  "End date in YYYY-MM-DD"
// @Param        symbols  query     string  false  "Comma-separated symbols"
// @Param        sectors  query     string  false  "Comma-separated sectors"
// @Success      200      {object}  dto.RollingResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse    "Not Found"
// @Router       /api/v1/series/rolling [get]
func (h *Handler) GetRollingSeries(c *gin.Context) {
	r := h.report(c)
	if r == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewRollingResponse(*r, h.window))
}

// GetCumulativeSeries handles GET /api/v1/series/cumulative requests.
//
// GetCumulativeSeries godoc
// @Summary      Cumulative metric trajectory
// @Description  Returns win rate, profit factor, risk-reward and expectancy recomputed after every trade
// @Tags         series
// @Produce      json
// @Param        dataset  query     string  false  "Dataset ID (defaults to latest)"
// @Param        from     query     string  false  "Start date in YYYY-MM-DD"
// @Param        to       query     string  false  "End date in YYYY-MM-DD"
// @Param        symbols  query     string  false  "Comma-separated symbols"
// @Param        sectors  query     string  false  "Comma-separated sectors"
// @Success      200      {object}  dto.CumulativeMetricsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse              "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse              "Not Found"
// @Router       /api/v1/series/cumulative [get]
func (h *Handler) GetCumulativeSeries(c *gin.Context) {
	r := h.report(c)
	if r == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewCumulativeMetricsResponse(*r, h.displayCap))
}

// GetMonthlySeries handles GET /api/v1/series/monthly requests.
//
// GetMonthlySeries godoc
// @Summary      Monthly expectancy series
// @Description  Returns per-month expectancy decompositions per scope
// @Tags         series
// @Produce      json
// @Param        dataset  query     string  false  "Dataset ID (defaults to latest)"
// @Param        from     query     string  false  "Start date in YYYY-MM-DD"
// @Param        to       query     string  false  "End date in YYYY-MM-DD"
// @Param        symbols  query     string  false  "Comma-separated symbols"
// @Param        sectors  query     string  false  "Comma-separated sectors"
// @Success      200      {object}  dto.MonthlyExpectancyResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse              "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse              "Not Found"
// @Router       /api/v1/series/monthly [get]
func (h *Handler) GetMonthlySeries(c *gin.Context) {
	r := h.report(c)
	if r == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewMonthlyExpectancyResponse(*r))
}

// GetLeaders handles GET /api/v1/leaders requests.
//
// GetLeaders godoc
// @Summary      Leaders and per-symbol tables
// @Description  Returns top winners/losers from the statement plus per-symbol win rate, holding days, duration distribution and sector breakdown
// @Tags         analytics
// @Produce      json
// @Param        dataset  query     string  false  "Dataset ID (defaults to latest)"
// @Param        from     query     string  false  "Start date in YYYY-MM-DD"
// @Param        to       query     string  false  "End date in YYYY-MM-DD"
// @Param        symbols  query     string  false  "Comma-separated symbols"
// @Param        sectors  query     string  false  "Comma-separated sectors"
// @Success      200      {object}  dto.LeadersResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse    "Not Found"
// @Router       /api/v1/leaders [get]
func (h *Handler) GetLeaders(c *gin.Context) {
	r := h.report(c)
	if r == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewLeadersResponse(*r))
}
