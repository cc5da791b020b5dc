package models

import "time"

// StyleBucket classifies a matched trade by its holding period.
//
// PureSwing is intentionally absent: it is a derived view (everything held
// longer than zero days) and must never be summed alongside the disjoint
// buckets below.
type StyleBucket int

const (
	StyleIntraday StyleBucket = iota // 0 days
	StyleBTST                        // 1 day
	StyleVelocity                    // 2-5 days
	StyleSwing                       // 6 days or more
)

// String returns the display name of the bucket.
func (b StyleBucket) String() string {
	switch b {
	case StyleIntraday:
		return "intraday"
	case StyleBTST:
		return "btst"
	case StyleVelocity:
		return "velocity"
	case StyleSwing:
		return "swing"
	default:
		return "unknown"
	}
}

// StyleOf maps a holding period in whole days to its bucket.
func StyleOf(holdingDays int) StyleBucket {
	switch {
	case holdingDays <= 0:
		return StyleIntraday
	case holdingDays == 1:
		return StyleBTST
	case holdingDays <= 5:
		return StyleVelocity
	default:
		return StyleSwing
	}
}

// MatchedTrade is one closed buy/sell pair (or partial-fill fragment)
// produced by the FIFO matcher. A raw buy and sell pair may yield several
// MatchedTrades when quantities do not align 1:1. Instances are never
// mutated after creation; a fresh set is rebuilt whenever the active
// filter changes.
type MatchedTrade struct {
	Symbol      string
	BuyDate     time.Time
	SellDate    time.Time
	Quantity    int64
	BuyPrice    float64
	SellPrice   float64
	Pnl         float64 // Quantity x (SellPrice - BuyPrice)
	HoldingDays int     // whole days, SellDate - BuyDate, >= 0
	Style       StyleBucket
}

// Turnover is the charge-allocation basis for one trade:
// buy value plus sell value of the matched quantity.
func (m MatchedTrade) Turnover() float64 {
	return float64(m.Quantity)*m.BuyPrice + float64(m.Quantity)*m.SellPrice
}

// IsWin reports whether the trade closed with positive realized P&L.
func (m MatchedTrade) IsWin() bool { return m.Pnl > 0 }
