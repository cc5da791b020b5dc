package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zerojournal/tradepulse/internal/domain/models"
	"github.com/zerojournal/tradepulse/internal/storage"
)

// tradebookHeaders enforces strict column ordering for broker tradebook
// exports. If the header doesn't match EXACTLY (order + count), ingestion
// must fail.
var tradebookHeaders = []string{
	"symbol",
	"isin",
	"trade_date",
	"exchange",
	"segment",
	"series",
	"trade_type",
	"auction",
	"quantity",
	"price",
	"trade_id",
	"order_id",
	"order_execution_time",
}

// pnlHeaders enforces strict column ordering for realized-P&L statement
// exports.
var pnlHeaders = []string{
	"symbol",
	"isin",
	"quantity",
	"buy_value",
	"sell_value",
	"realized_pnl",
	"realized_pnl_pct",
}

// parseAndPersistTradebook opens, validates, parses, and persists one
// tradebook file in batches. It fails on:
//   - header not matching expected order/length
//   - malformed dates, quantities, or prices
//   - unrecoverable I/O errors
//
// It tolerates:
//   - empty cells (they become zero values)
//
// Parameters:
//   - ctx:       context for cancellation/timeouts.
//   - path:      file path.
//   - datasetID: dataset the rows belong to.
//   - repo:      repository for DB insertion.
//   - batch:     batch size for inserts (e.g., 5000).
func parseAndPersistTradebook(ctx context.Context, path, datasetID string, repo storage.DatasetRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we’ll check explicitly

	if err := validateHeader(r, tradebookHeaders); err != nil {
		return 0, err
	}

	buf := make([]models.TradeRow, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertTradeRowsBatch(datasetID, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(tradebookHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(tradebookHeaders), len(rec))
		}

		row, err := recordToTradeRow(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, row)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// parseAndPersistPnl parses a realized-P&L statement file and persists its
// rows. Same strictness rules as the tradebook parser.
func parseAndPersistPnl(ctx context.Context, path, datasetID string, repo storage.DatasetRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	if err := validateHeader(r, pnlHeaders); err != nil {
		return 0, err
	}

	buf := make([]models.PnlRow, 0, batch)
	lineNumber := 1

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertPnlRowsBatch(datasetID, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(pnlHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(pnlHeaders), len(rec))
		}

		row, err := recordToPnlRow(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, row)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// validateHeader reads the first CSV record and compares it column by
// column against the expected header. Comparison is case-insensitive and
// whitespace-tolerant, but order and count are strict.
func validateHeader(r *csv.Reader, expected []string) error {
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expected) {
		return fmt.Errorf("invalid header length: expected %d, got %d", len(expected), len(header))
	}
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) != expected[i] {
			return fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expected[i], h)
		}
	}
	return nil
}

// recordToTradeRow converts a single CSV record (already validated
// length==13) into a models.TradeRow. It is STRICT about types/format but
// TOLERATES empty cells, mapping them to zero-values.
//
// Column order:
//
//	 0 symbol               → Symbol (string)
//	 1 isin                 → ISIN (string)
//	 2 trade_date           → TradeDate (DATE, "2006-01-02")
//	 3 exchange             → Exchange (string)
//	 4 segment              → Segment (string)
//	 5 series               → Series (string)
//	 6 trade_type           → Side ("buy"/"sell", case-insensitive)
//	 7 auction              → Auction (bool, empty→false)
//	 8 quantity             → Quantity (int64; fractional values rejected)
//	 9 price                → Price (float, empty→0)
//	10 trade_id             → TradeID (string)
//	11 order_id             → OrderID (string)
//	12 order_execution_time → ExecutedAt (timestamp; empty→zero)
func recordToTradeRow(rec []string) (models.TradeRow, error) {
	var t models.TradeRow

	t.Symbol = strings.TrimSpace(rec[0])
	t.ISIN = strings.TrimSpace(rec[1])

	// trade_date (2) — required; matching is impossible without it
	s := strings.TrimSpace(rec[2])
	if s == "" {
		return t, fmt.Errorf("missing trade_date")
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return t, fmt.Errorf("invalid trade_date: %v", err)
	}
	t.TradeDate = d

	t.Exchange = strings.TrimSpace(rec[3])
	t.Segment = strings.TrimSpace(rec[4])
	t.Series = strings.TrimSpace(rec[5])

	// trade_type (6) — required, buy or sell only
	switch strings.ToLower(strings.TrimSpace(rec[6])) {
	case "buy":
		t.Side = models.SideBuy
	case "sell":
		t.Side = models.SideSell
	default:
		return t, fmt.Errorf("invalid trade_type: %q", rec[6])
	}

	// auction (7) — may be empty
	if s := strings.TrimSpace(rec[7]); s != "" {
		v, err := strconv.ParseBool(strings.ToLower(s))
		if err != nil {
			return t, fmt.Errorf("invalid auction: %v", err)
		}
		t.Auction = v
	}

	// quantity (8) — may be empty; some exports carry "10.0" style values
	if s := strings.TrimSpace(rec[8]); s != "" {
		v, err := parseQuantity(s)
		if err != nil {
			return t, fmt.Errorf("invalid quantity: %v", err)
		}
		t.Quantity = v
	}

	// price (9) — may be empty
	if s := strings.TrimSpace(rec[9]); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return t, fmt.Errorf("invalid price: %v", err)
		}
		t.Price = v
	}

	t.TradeID = strings.TrimSpace(rec[10])
	t.OrderID = strings.TrimSpace(rec[11])

	// order_execution_time (12) — may be empty
	if s := strings.TrimSpace(rec[12]); s != "" {
		ts, err := parseExecutionTime(s)
		if err != nil {
			return t, fmt.Errorf("invalid order_execution_time: %v", err)
		}
		t.ExecutedAt = ts
	}

	return t, nil
}

// recordToPnlRow converts a single CSV record (already validated
// length==7) into a models.PnlRow.
func recordToPnlRow(rec []string) (models.PnlRow, error) {
	var p models.PnlRow

	p.Symbol = strings.TrimSpace(rec[0])
	p.ISIN = strings.TrimSpace(rec[1])

	if s := strings.TrimSpace(rec[2]); s != "" {
		v, err := parseQuantity(s)
		if err != nil {
			return p, fmt.Errorf("invalid quantity: %v", err)
		}
		p.Quantity = v
	}

	floats := []struct {
		idx  int
		name string
		dst  *float64
	}{
		{3, "buy_value", &p.BuyValue},
		{4, "sell_value", &p.SellValue},
		{5, "realized_pnl", &p.RealizedPnl},
		{6, "realized_pnl_pct", &p.RealizedPnlPct},
	}
	for _, f := range floats {
		s := strings.TrimSpace(rec[f.idx])
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %v", f.name, err)
		}
		*f.dst = v
	}

	return p, nil
}

// parseQuantity accepts integer quantities, including exports that write
// them as floats ("10.0"). Genuinely fractional quantities are rejected.
func parseQuantity(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	v := int64(f)
	if float64(v) != f {
		return 0, fmt.Errorf("fractional quantity %q", s)
	}
	return v, nil
}

// parseExecutionTime accepts the timestamp layouts seen across export
// versions.
func parseExecutionTime(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	var lastErr error
	for _, layout := range layouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
