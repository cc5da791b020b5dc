package storage

import (
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// DatasetRepository defines the contract for DB operations on uploaded
// datasets. One dataset is one pair of exports (tradebook + P&L
// statement) ingested together under a single ID.
type DatasetRepository interface {
	CreateDataset(id, label string, totalCharges float64) error
	InsertTradeRowsBatch(datasetID string, rows []models.TradeRow) error
	InsertPnlRowsBatch(datasetID string, rows []models.PnlRow) error
	LoadTradeRows(datasetID string) ([]models.TradeRow, error)
	LoadPnlStatement(datasetID string) (models.PnlStatement, error)
	LatestDatasetID() (string, error)
	DeleteDataset(id string) error
}

type datasetRepository struct {
	db *sql.DB
}

func NewDatasetRepository(db *sql.DB) DatasetRepository {
	return &datasetRepository{db: db}
}

// CreateDataset records (or replaces) the dataset header row carrying the
// statement's aggregate charge total.
func (r *datasetRepository) CreateDataset(id, label string, totalCharges float64) error {
	_, err := r.db.Exec(`
		INSERT INTO datasets (id, label, total_charges)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET label = EXCLUDED.label,
					  total_charges = EXCLUDED.total_charges,
					  ingested_at = NOW()
	`, id, label, totalCharges)
	return err
}

// InsertTradeRowsBatch inserts tradebook rows in a single transaction
// using COPY for bulk throughput.
func (r *datasetRepository) InsertTradeRowsBatch(datasetID string, rows []models.TradeRow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"trade_rows",
		"dataset_id",
		"symbol",
		"isin",
		"trade_date",
		"exchange",
		"segment",
		"series",
		"side",
		"auction",
		"quantity",
		"price",
		"trade_id",
		"order_id",
		"executed_at",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	// helper to map zero-value times to NULL (nil)
	toNullTime := func(t time.Time) interface{} {
		if t.IsZero() {
			return nil
		}
		return t
	}

	for _, rec := range rows {
		if _, err := stmt.Exec(
			datasetID,
			rec.Symbol,
			rec.ISIN,
			rec.TradeDate,
			rec.Exchange,
			rec.Segment,
			rec.Series,
			string(rec.Side),
			rec.Auction,
			rec.Quantity,
			rec.Price,
			rec.TradeID,
			rec.OrderID,
			toNullTime(rec.ExecutedAt),
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// InsertPnlRowsBatch inserts statement rows in a single transaction.
func (r *datasetRepository) InsertPnlRowsBatch(datasetID string, rows []models.PnlRow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"pnl_rows",
		"dataset_id",
		"symbol",
		"isin",
		"quantity",
		"buy_value",
		"sell_value",
		"realized_pnl",
		"realized_pnl_pct",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range rows {
		if _, err := stmt.Exec(
			datasetID,
			rec.Symbol,
			rec.ISIN,
			rec.Quantity,
			rec.BuyValue,
			rec.SellValue,
			rec.RealizedPnl,
			rec.RealizedPnlPct,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// LoadTradeRows returns every tradebook row of a dataset in insertion
// order. The stable id order preserves the export's original row order,
// which the matcher uses as its final tie-break.
func (r *datasetRepository) LoadTradeRows(datasetID string) ([]models.TradeRow, error) {
	rows, err := r.db.Query(`
		SELECT symbol, isin, trade_date, exchange, segment, series, side,
			   auction, quantity, price, trade_id, order_id, executed_at
		FROM trade_rows
		WHERE dataset_id = $1
		ORDER BY id
	`, datasetID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.TradeRow
	for rows.Next() {
		var t models.TradeRow
		var side string
		var executedAt sql.NullTime
		if err := rows.Scan(
			&t.Symbol, &t.ISIN, &t.TradeDate, &t.Exchange, &t.Segment,
			&t.Series, &side, &t.Auction, &t.Quantity, &t.Price,
			&t.TradeID, &t.OrderID, &executedAt,
		); err != nil {
			return nil, err
		}
		t.Side = models.Side(side)
		if executedAt.Valid {
			t.ExecutedAt = executedAt.Time
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// LoadPnlStatement returns a dataset's statement rows plus its aggregate
// charge total.
func (r *datasetRepository) LoadPnlStatement(datasetID string) (models.PnlStatement, error) {
	var stmt models.PnlStatement

	err := r.db.QueryRow(`SELECT total_charges FROM datasets WHERE id = $1`, datasetID).
		Scan(&stmt.TotalCharges)
	if err != nil {
		return models.PnlStatement{}, err
	}

	rows, err := r.db.Query(`
		SELECT symbol, isin, quantity, buy_value, sell_value, realized_pnl, realized_pnl_pct
		FROM pnl_rows
		WHERE dataset_id = $1
		ORDER BY id
	`, datasetID)
	if err != nil {
		return models.PnlStatement{}, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p models.PnlRow
		if err := rows.Scan(
			&p.Symbol, &p.ISIN, &p.Quantity, &p.BuyValue, &p.SellValue,
			&p.RealizedPnl, &p.RealizedPnlPct,
		); err != nil {
			return models.PnlStatement{}, err
		}
		stmt.Rows = append(stmt.Rows, p)
	}
	return stmt, rows.Err()
}

// LatestDatasetID returns the most recently ingested dataset, or an
// empty string when nothing has been ingested yet.
func (r *datasetRepository) LatestDatasetID() (string, error) {
	var id string
	err := r.db.QueryRow(`SELECT id FROM datasets ORDER BY ingested_at DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteDataset removes a dataset and its rows (cascade via FKs).
func (r *datasetRepository) DeleteDataset(id string) error {
	_, err := r.db.Exec(`DELETE FROM datasets WHERE id = $1`, id)
	return err
}
