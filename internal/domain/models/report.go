package models

import "time"

// Scope selects which slice of the matched set a statistic covers.
// ScopeSwing here is the "pure swing" view: every trade held overnight
// or longer (BTST, Velocity and Swing buckets together).
type Scope string

const (
	ScopeOverall  Scope = "overall"
	ScopeIntraday Scope = "intraday"
	ScopeSwing    Scope = "swing"
)

// ExpectancyStats is the expectancy decomposition for one trade subset:
// expectancy = winRate x avgWin - lossRate x avgLoss, with rates as
// fractions of the subset and avgLoss as an absolute value.
type ExpectancyStats struct {
	Expectancy float64
	AvgWin     float64
	AvgLoss    float64 // absolute value
	WinRate    float64 // percent, 0-100
	Wins       int
	Losses     int
	Trades     int
}

// StreakStats reports same-sign P&L run lengths over chronologically
// ordered trades, plus the streak active at the most recent trade.
type StreakStats struct {
	MaxWinStreak  int
	MaxLossStreak int
	Current       int
	CurrentType   string // "win", "loss" or "" when there are no trades
}

// StyleStats summarizes one holding-period bucket (or the derived
// pure-swing view).
type StyleStats struct {
	Bucket  string
	Trades  int
	WinRate float64 // percent
	AvgPnl  float64
	NetPnl  float64
}

// SeriesPoint is one date-indexed value of a time series.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// RollingPoint is one value of a rolling-window metric series, indexed by
// the 1-based trade number at which the window ends.
type RollingPoint struct {
	TradeNumber int
	Expectancy  float64
}

// MonthExpectancy is the expectancy decomposition of one calendar month
// of sell dates.
type MonthExpectancy struct {
	Month time.Time // first day of the month
	Stats ExpectancyStats
}

// CumulativePoint is an "as of trade i" snapshot computed over trades
// [0..i] in chronological order. Ratio values carry both the raw figure
// and the display-capped one.
type CumulativePoint struct {
	TradeNumber        int
	Date               time.Time
	WinRate            float64
	ProfitFactor       Ratio
	ProfitFactorCapped float64
	RiskReward         Ratio
	RiskRewardCapped   float64
	Expectancy         float64
}

// SymbolValue is one row of a per-symbol ranking table.
type SymbolValue struct {
	Symbol string
	Value  float64
}

// HoldingCount is one bin of the trade-duration distribution, weighted by
// matched quantity.
type HoldingCount struct {
	Days     int
	Quantity int64
	Trades   int
}

// SectorStats aggregates matched trades whose symbols map to one sector.
// Symbols without a known mapping land in the "Unknown" sector.
type SectorStats struct {
	Sector  string
	Trades  int
	WinRate float64 // percent
	NetPnl  float64
}

// Report is the full analytics snapshot for one dataset and filter.
// Every figure is derived from the same FIFO-matched trade set so that
// win rate, profit factor and the rest stay mutually consistent under
// any filter.
type Report struct {
	DatasetID        string
	TradeCount       int
	UnmatchedSellQty int64 // sell quantity with no buy history, dropped from metrics

	GrossPnl         float64
	AllocatedCharges float64
	NetPnl           float64 // GrossPnl - AllocatedCharges

	WinRate        float64 // percent
	ProfitFactor   Ratio
	RiskReward     Ratio
	AvgHoldingDays float64 // weighted by matched quantity
	Sharpe         float64
	MaxDrawdown    float64

	Expectancy map[Scope]ExpectancyStats
	Streaks    map[Scope]StreakStats
	Styles     []StyleStats // intraday, btst, velocity, swing, then pure_swing

	Daily      []SeriesPoint
	Weekly     []SeriesPoint
	Monthly    []SeriesPoint
	Cumulative []SeriesPoint
	Equity     []SeriesPoint

	Rolling           map[Scope][]RollingPoint
	MonthlyExpectancy map[Scope][]MonthExpectancy
	CumulativeMetrics []CumulativePoint

	WinRateBySymbol      []SymbolValue
	HoldingDaysBySymbol  []SymbolValue
	DurationDistribution []HoldingCount
	Sectors              []SectorStats

	TopWinners []PnlRow
	TopLosers  []PnlRow
}
