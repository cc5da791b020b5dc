package models

import "time"

// Side distinguishes the two legs of a trade as exported by the broker.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// TradeRow represents a single row of the tradebook export.
// Each field matches one column of the CSV.
//
// Column order:
//  1. Symbol
//  2. ISIN
//  3. TradeDate
//  4. Exchange
//  5. Segment
//  6. Series
//  7. TradeType (buy/sell)
//  8. Auction
//  9. Quantity
//  10. Price
//  11. TradeID
//  12. OrderID
//  13. OrderExecutionTime
type TradeRow struct {
	Symbol     string
	ISIN       string
	TradeDate  time.Time
	Exchange   string
	Segment    string
	Series     string
	Side       Side
	Auction    bool
	Quantity   int64
	Price      float64
	TradeID    string
	OrderID    string
	ExecutedAt time.Time // optional; zero when the export omits execution time
}

// PnlRow represents a single row of the realized-P&L statement export.
// One row per symbol, aggregated by the broker over the statement period.
type PnlRow struct {
	Symbol         string
	ISIN           string
	Quantity       int64
	BuyValue       float64
	SellValue      float64
	RealizedPnl    float64
	RealizedPnlPct float64
}

// PnlStatement bundles the statement rows with the single aggregate
// charge total the broker reports for the whole statement period.
type PnlStatement struct {
	Rows         []PnlRow
	TotalCharges float64
}
