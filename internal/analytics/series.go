package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// tradingDaysPerYear is the annualization factor for the Sharpe ratio.
// Convention: daily P&L sampling over calendar sell dates, annualized
// with a 252 trading-day year.
const tradingDaysPerYear = 252

// DailyPnl rolls matched trades up to one net P&L value per sell date.
// Each trade's turnover-proportional charge share is deducted on the day
// it closed, so the daily series sums to the set's net P&L.
func DailyPnl(trades []models.MatchedTrade, totalCharges, totalTurnover float64) []models.SeriesPoint {
	byDay := make(map[time.Time]float64)
	for _, t := range trades {
		day := truncateToDate(t.SellDate)
		byDay[day] += t.Pnl - AllocatedCharge(t, totalCharges, totalTurnover)
	}
	return sortedSeries(byDay)
}

// WeeklyPnl aggregates a daily series by ISO-style weeks keyed on the
// Monday that starts each week.
func WeeklyPnl(daily []models.SeriesPoint) []models.SeriesPoint {
	byWeek := make(map[time.Time]float64)
	for _, p := range daily {
		byWeek[weekStart(p.Date)] += p.Value
	}
	return sortedSeries(byWeek)
}

// MonthlyPnl aggregates a daily series by calendar month, keyed on the
// first day of the month.
func MonthlyPnl(daily []models.SeriesPoint) []models.SeriesPoint {
	byMonth := make(map[time.Time]float64)
	for _, p := range daily {
		byMonth[monthStart(p.Date)] += p.Value
	}
	return sortedSeries(byMonth)
}

// CumulativePnl is the running sum of a daily series.
func CumulativePnl(daily []models.SeriesPoint) []models.SeriesPoint {
	out := make([]models.SeriesPoint, len(daily))
	var sum float64
	for i, p := range daily {
		sum += p.Value
		out[i] = models.SeriesPoint{Date: p.Date, Value: sum}
	}
	return out
}

// EquityCurve is the cumulative P&L shifted by the starting capital.
func EquityCurve(daily []models.SeriesPoint, initialCapital float64) []models.SeriesPoint {
	out := CumulativePnl(daily)
	for i := range out {
		out[i].Value += initialCapital
	}
	return out
}

// Sharpe is the annualized risk-adjusted return of the daily P&L series:
// (mean x 252 - riskFreeRate) / (stddev x sqrt(252)). A flat or
// single-day series has zero deviation and yields 0.0, never an error.
func Sharpe(daily []models.SeriesPoint, riskFreeRate float64) float64 {
	if len(daily) == 0 {
		return 0
	}

	var sum float64
	for _, p := range daily {
		sum += p.Value
	}
	mean := sum / float64(len(daily))

	var variance float64
	for _, p := range daily {
		d := p.Value - mean
		variance += d * d
	}
	// Population deviation, matching the daily-sample convention.
	std := math.Sqrt(variance / float64(len(daily)))
	if std == 0 {
		return 0
	}

	annualReturn := mean * tradingDaysPerYear
	annualStd := std * math.Sqrt(tradingDaysPerYear)
	return (annualReturn - riskFreeRate) / annualStd
}

// MaxDrawdown is the largest peak-to-trough decline of the cumulative
// P&L series, as a positive number. Empty or monotonically non-decreasing
// series yield 0.0.
func MaxDrawdown(cumulative []models.SeriesPoint) float64 {
	var peak, maxDD float64
	first := true
	for _, p := range cumulative {
		if first || p.Value > peak {
			peak = p.Value
			first = false
		}
		if dd := peak - p.Value; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

func sortedSeries(m map[time.Time]float64) []models.SeriesPoint {
	out := make([]models.SeriesPoint, 0, len(m))
	for d, v := range m {
		out = append(out, models.SeriesPoint{Date: d, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday on or before the given date.
func weekStart(t time.Time) time.Time {
	t = truncateToDate(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
