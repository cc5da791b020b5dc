package dto

import (
	"time"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// RatioDTO carries a profit-factor-style ratio over the wire. The raw
// value and the chart-capped value travel together; undefined marks the
// "infinite" case (no losing side), for which value is omitted.
type RatioDTO struct {
	Value     *float64 `json:"value,omitempty" example:"2.41"`
	Capped    float64  `json:"capped" example:"2.41"`
	Undefined bool     `json:"undefined" example:"false"`
}

// NewRatioDTO maps a domain ratio to its wire form using the configured
// display cap.
func NewRatioDTO(r models.Ratio, cap float64) RatioDTO {
	out := RatioDTO{Capped: r.Capped(cap), Undefined: r.Undefined}
	if !r.Undefined {
		v := r.Value
		out.Value = &v
	}
	return out
}

// ExpectancyDTO is the wire form of one expectancy decomposition.
type ExpectancyDTO struct {
	Expectancy float64 `json:"expectancy" example:"41.25"`
	AvgWin     float64 `json:"avg_win" example:"120.10"`
	AvgLoss    float64 `json:"avg_loss" example:"55.00"`
	WinRate    float64 `json:"win_rate" example:"58.33"`
	Wins       int     `json:"wins" example:"14"`
	Losses     int     `json:"losses" example:"10"`
	Trades     int     `json:"trades" example:"24"`
}

// StreakDTO is the wire form of one streak summary.
type StreakDTO struct {
	MaxWinStreak  int    `json:"max_win_streak" example:"6"`
	MaxLossStreak int    `json:"max_loss_streak" example:"3"`
	Current       int    `json:"current" example:"2"`
	CurrentType   string `json:"current_type" example:"win"`
}

// MetricsResponse is the body of GET /api/v1/metrics: every scalar
// statistic derived from one FIFO-matched trade set.
type MetricsResponse struct {
	DatasetID        string `json:"dataset_id" example:"6f1f9f2e-4a94-4d56-9a55-0f64c09f1a10"`
	TradeCount       int    `json:"trade_count" example:"128"`
	UnmatchedSellQty int64  `json:"unmatched_sell_qty" example:"0"`

	GrossPnl         float64 `json:"gross_pnl" example:"15230.50"`
	AllocatedCharges float64 `json:"allocated_charges" example:"842.10"`
	NetPnl           float64 `json:"net_pnl" example:"14388.40"`

	WinRate        float64  `json:"win_rate" example:"58.33"`
	ProfitFactor   RatioDTO `json:"profit_factor"`
	RiskReward     RatioDTO `json:"risk_reward"`
	AvgHoldingDays float64  `json:"avg_holding_days" example:"3.4"`
	Sharpe         float64  `json:"sharpe" example:"1.12"`
	MaxDrawdown    float64  `json:"max_drawdown" example:"4210.00"`

	Expectancy map[string]ExpectancyDTO `json:"expectancy"`
	Streaks    map[string]StreakDTO     `json:"streaks"`
}

// StyleDTO is one row of the trading-style breakdown.
type StyleDTO struct {
	Bucket  string  `json:"bucket" example:"velocity"`
	Trades  int     `json:"trades" example:"31"`
	WinRate float64 `json:"win_rate" example:"54.84"`
	AvgPnl  float64 `json:"avg_pnl" example:"88.70"`
	NetPnl  float64 `json:"net_pnl" example:"2749.70"`
}

// StylesResponse is the body of GET /api/v1/styles. The pure_swing row is
// a derived union and is excluded from any total across the other rows.
type StylesResponse struct {
	Styles []StyleDTO `json:"styles"`
}

// PointDTO is one date-indexed series value.
type PointDTO struct {
	Date  time.Time `json:"date" example:"2024-03-01T00:00:00Z"`
	Value float64   `json:"value" example:"320.50"`
}

// TrendsResponse is the body of GET /api/v1/trends: the P&L rollups and
// the equity curve.
type TrendsResponse struct {
	Daily      []PointDTO `json:"daily"`
	Weekly     []PointDTO `json:"weekly"`
	Monthly    []PointDTO `json:"monthly"`
	Cumulative []PointDTO `json:"cumulative"`
	Equity     []PointDTO `json:"equity"`
}

// RollingPointDTO is one rolling-expectancy value.
type RollingPointDTO struct {
	TradeNumber int     `json:"trade_number" example:"20"`
	Expectancy  float64 `json:"expectancy" example:"35.20"`
}

// RollingResponse is the body of GET /api/v1/series/rolling.
type RollingResponse struct {
	Window int                          `json:"window" example:"20"`
	Series map[string][]RollingPointDTO `json:"series"`
}

// MonthExpectancyDTO is one month of the monthly-expectancy series.
type MonthExpectancyDTO struct {
	Month time.Time     `json:"month" example:"2024-03-01T00:00:00Z"`
	Stats ExpectancyDTO `json:"stats"`
}

// MonthlyExpectancyResponse is the body of GET /api/v1/series/monthly.
type MonthlyExpectancyResponse struct {
	Series map[string][]MonthExpectancyDTO `json:"series"`
}

// CumulativePointDTO is one "as of trade i" snapshot.
type CumulativePointDTO struct {
	TradeNumber  int       `json:"trade_number" example:"42"`
	Date         time.Time `json:"date" example:"2024-03-15T00:00:00Z"`
	WinRate      float64   `json:"win_rate" example:"57.14"`
	ProfitFactor RatioDTO  `json:"profit_factor"`
	RiskReward   RatioDTO  `json:"risk_reward"`
	Expectancy   float64   `json:"expectancy" example:"28.40"`
}

// CumulativeMetricsResponse is the body of GET /api/v1/series/cumulative.
type CumulativeMetricsResponse struct {
	Points []CumulativePointDTO `json:"points"`
}

// PnlRowDTO is one statement row in a leaders table.
type PnlRowDTO struct {
	Symbol         string  `json:"symbol" example:"TCS"`
	Quantity       int64   `json:"quantity" example:"25"`
	BuyValue       float64 `json:"buy_value" example:"87500.00"`
	SellValue      float64 `json:"sell_value" example:"91250.00"`
	RealizedPnl    float64 `json:"realized_pnl" example:"3750.00"`
	RealizedPnlPct float64 `json:"realized_pnl_pct" example:"4.29"`
}

// SymbolValueDTO is one row of a per-symbol ranking.
type SymbolValueDTO struct {
	Symbol string  `json:"symbol" example:"INFY"`
	Value  float64 `json:"value" example:"66.67"`
}

// HoldingCountDTO is one bin of the trade-duration distribution.
type HoldingCountDTO struct {
	Days     int   `json:"days" example:"2"`
	Quantity int64 `json:"quantity" example:"140"`
	Trades   int   `json:"trades" example:"9"`
}

// SectorDTO is one row of the per-sector breakdown.
type SectorDTO struct {
	Sector  string  `json:"sector" example:"Information Technology"`
	Trades  int     `json:"trades" example:"18"`
	WinRate float64 `json:"win_rate" example:"61.11"`
	NetPnl  float64 `json:"net_pnl" example:"5120.00"`
}

// LeadersResponse is the body of GET /api/v1/leaders: top winners/losers
// from the statement plus the per-symbol, duration and sector tables from
// the matched set.
type LeadersResponse struct {
	Winners             []PnlRowDTO       `json:"winners"`
	Losers              []PnlRowDTO       `json:"losers"`
	WinRateBySymbol     []SymbolValueDTO  `json:"win_rate_by_symbol"`
	HoldingDaysBySymbol []SymbolValueDTO  `json:"holding_days_by_symbol"`
	Durations           []HoldingCountDTO `json:"durations"`
	Sectors             []SectorDTO       `json:"sectors"`
}

// NewMetricsResponse maps the scalar section of a report.
func NewMetricsResponse(r models.Report, cap float64) MetricsResponse {
	resp := MetricsResponse{
		DatasetID:        r.DatasetID,
		TradeCount:       r.TradeCount,
		UnmatchedSellQty: r.UnmatchedSellQty,
		GrossPnl:         r.GrossPnl,
		AllocatedCharges: r.AllocatedCharges,
		NetPnl:           r.NetPnl,
		WinRate:          r.WinRate,
		ProfitFactor:     NewRatioDTO(r.ProfitFactor, cap),
		RiskReward:       NewRatioDTO(r.RiskReward, cap),
		AvgHoldingDays:   r.AvgHoldingDays,
		Sharpe:           r.Sharpe,
		MaxDrawdown:      r.MaxDrawdown,
		Expectancy:       make(map[string]ExpectancyDTO, len(r.Expectancy)),
		Streaks:          make(map[string]StreakDTO, len(r.Streaks)),
	}
	for scope, s := range r.Expectancy {
		resp.Expectancy[string(scope)] = ExpectancyDTO{
			Expectancy: s.Expectancy,
			AvgWin:     s.AvgWin,
			AvgLoss:    s.AvgLoss,
			WinRate:    s.WinRate,
			Wins:       s.Wins,
			Losses:     s.Losses,
			Trades:     s.Trades,
		}
	}
	for scope, s := range r.Streaks {
		resp.Streaks[string(scope)] = StreakDTO{
			MaxWinStreak:  s.MaxWinStreak,
			MaxLossStreak: s.MaxLossStreak,
			Current:       s.Current,
			CurrentType:   s.CurrentType,
		}
	}
	return resp
}

// NewStylesResponse maps the style breakdown.
func NewStylesResponse(r models.Report) StylesResponse {
	out := StylesResponse{Styles: make([]StyleDTO, 0, len(r.Styles))}
	for _, s := range r.Styles {
		out.Styles = append(out.Styles, StyleDTO{
			Bucket:  s.Bucket,
			Trades:  s.Trades,
			WinRate: s.WinRate,
			AvgPnl:  s.AvgPnl,
			NetPnl:  s.NetPnl,
		})
	}
	return out
}

// NewTrendsResponse maps the rollup series.
func NewTrendsResponse(r models.Report) TrendsResponse {
	return TrendsResponse{
		Daily:      points(r.Daily),
		Weekly:     points(r.Weekly),
		Monthly:    points(r.Monthly),
		Cumulative: points(r.Cumulative),
		Equity:     points(r.Equity),
	}
}

// NewRollingResponse maps the per-scope rolling expectancy series.
func NewRollingResponse(r models.Report, window int) RollingResponse {
	out := RollingResponse{Window: window, Series: make(map[string][]RollingPointDTO, len(r.Rolling))}
	for scope, pts := range r.Rolling {
		series := make([]RollingPointDTO, 0, len(pts))
		for _, p := range pts {
			series = append(series, RollingPointDTO{TradeNumber: p.TradeNumber, Expectancy: p.Expectancy})
		}
		out.Series[string(scope)] = series
	}
	return out
}

// NewMonthlyExpectancyResponse maps the per-scope monthly expectancy.
func NewMonthlyExpectancyResponse(r models.Report) MonthlyExpectancyResponse {
	out := MonthlyExpectancyResponse{Series: make(map[string][]MonthExpectancyDTO, len(r.MonthlyExpectancy))}
	for scope, months := range r.MonthlyExpectancy {
		series := make([]MonthExpectancyDTO, 0, len(months))
		for _, m := range months {
			series = append(series, MonthExpectancyDTO{
				Month: m.Month,
				Stats: ExpectancyDTO{
					Expectancy: m.Stats.Expectancy,
					AvgWin:     m.Stats.AvgWin,
					AvgLoss:    m.Stats.AvgLoss,
					WinRate:    m.Stats.WinRate,
					Wins:       m.Stats.Wins,
					Losses:     m.Stats.Losses,
					Trades:     m.Stats.Trades,
				},
			})
		}
		out.Series[string(scope)] = series
	}
	return out
}

// NewCumulativeMetricsResponse maps the as-of-trade trajectory.
func NewCumulativeMetricsResponse(r models.Report, cap float64) CumulativeMetricsResponse {
	out := CumulativeMetricsResponse{Points: make([]CumulativePointDTO, 0, len(r.CumulativeMetrics))}
	for _, p := range r.CumulativeMetrics {
		out.Points = append(out.Points, CumulativePointDTO{
			TradeNumber:  p.TradeNumber,
			Date:         p.Date,
			WinRate:      p.WinRate,
			ProfitFactor: NewRatioDTO(p.ProfitFactor, cap),
			RiskReward:   NewRatioDTO(p.RiskReward, cap),
			Expectancy:   p.Expectancy,
		})
	}
	return out
}

// NewLeadersResponse maps the tables section of a report.
func NewLeadersResponse(r models.Report) LeadersResponse {
	out := LeadersResponse{
		Winners:             pnlRows(r.TopWinners),
		Losers:              pnlRows(r.TopLosers),
		WinRateBySymbol:     symbolValues(r.WinRateBySymbol),
		HoldingDaysBySymbol: symbolValues(r.HoldingDaysBySymbol),
	}
	for _, d := range r.DurationDistribution {
		out.Durations = append(out.Durations, HoldingCountDTO{Days: d.Days, Quantity: d.Quantity, Trades: d.Trades})
	}
	for _, s := range r.Sectors {
		out.Sectors = append(out.Sectors, SectorDTO{Sector: s.Sector, Trades: s.Trades, WinRate: s.WinRate, NetPnl: s.NetPnl})
	}
	return out
}

func points(in []models.SeriesPoint) []PointDTO {
	out := make([]PointDTO, 0, len(in))
	for _, p := range in {
		out = append(out, PointDTO{Date: p.Date, Value: p.Value})
	}
	return out
}

func pnlRows(in []models.PnlRow) []PnlRowDTO {
	out := make([]PnlRowDTO, 0, len(in))
	for _, r := range in {
		out = append(out, PnlRowDTO{
			Symbol:         r.Symbol,
			Quantity:       r.Quantity,
			BuyValue:       r.BuyValue,
			SellValue:      r.SellValue,
			RealizedPnl:    r.RealizedPnl,
			RealizedPnlPct: r.RealizedPnlPct,
		})
	}
	return out
}

func symbolValues(in []models.SymbolValue) []SymbolValueDTO {
	out := make([]SymbolValueDTO, 0, len(in))
	for _, v := range in {
		out = append(out, SymbolValueDTO{Symbol: v.Symbol, Value: v.Value})
	}
	return out
}
