package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zerojournal/tradepulse/internal/logger"
	"github.com/zerojournal/tradepulse/internal/storage"
)

const defaultBatchSize = 5000

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.DatasetRepository {
	return storage.NewDatasetRepository(db)
}

// Files names the pair of broker exports that form one dataset, plus the
// statement-level charge total and an optional human-readable label.
type Files struct {
	TradebookPath string
	PnlPath       string
	TotalCharges  float64
	Label         string
}

// ProcessFiles ingests one dataset: it registers a new dataset ID, then
// parses and persists the tradebook and P&L statement in parallel.
//
// Behavior:
//   - Both files are validated upfront (must exist and be regular files).
//   - The tradebook and the statement parse concurrently; the first error
//     cancels the sibling and fails the whole ingestion.
//   - On failure the partially written dataset is removed so a retry
//     starts clean.
//
// Returns:
//   - string: the new dataset ID.
//   - error:  first error encountered (if any).
func ProcessFiles(ctx context.Context, db *sql.DB, in Files) (string, error) {
	repo := repoCtor(db)

	for _, p := range []string{in.TradebookPath, in.PnlPath} {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s is a directory, expected a CSV file", p)
		}
	}

	datasetID := uuid.NewString()
	label := in.Label
	if label == "" {
		label = filepath.Base(in.TradebookPath)
	}

	logger.L().Info().
		Str("dataset_id", datasetID).
		Str("tradebook", in.TradebookPath).
		Str("pnl", in.PnlPath).
		Float64("total_charges", in.TotalCharges).
		Msg("ingestion start")

	if err := repo.CreateDataset(datasetID, label, in.TotalCharges); err != nil {
		return "", fmt.Errorf("create dataset: %w", err)
	}

	start := time.Now()

	// errgroup cancels the sibling on first error.
	g, gctx := errgroup.WithContext(ctx)

	var tradeRows, pnlRows int

	g.Go(func() error {
		n, err := parseAndPersistTradebook(gctx, in.TradebookPath, datasetID, repo, defaultBatchSize)
		if err != nil {
			logger.L().Error().Str("file", in.TradebookPath).Err(err).Msg("tradebook failed")
			return fmt.Errorf("tradebook %s: %w", in.TradebookPath, err)
		}
		tradeRows = n
		return nil
	})

	g.Go(func() error {
		n, err := parseAndPersistPnl(gctx, in.PnlPath, datasetID, repo, defaultBatchSize)
		if err != nil {
			logger.L().Error().Str("file", in.PnlPath).Err(err).Msg("statement failed")
			return fmt.Errorf("statement %s: %w", in.PnlPath, err)
		}
		pnlRows = n
		return nil
	})

	if err := g.Wait(); err != nil {
		// Leave no half-written dataset behind.
		if delErr := repo.DeleteDataset(datasetID); delErr != nil {
			logger.L().Error().Str("dataset_id", datasetID).Err(delErr).Msg("cleanup failed")
		}
		return "", err
	}

	logger.L().Info().
		Str("dataset_id", datasetID).
		Int("trade_rows", tradeRows).
		Int("pnl_rows", pnlRows).
		Dur("elapsed", time.Since(start)).
		Msg("ingestion done")

	return datasetID, nil
}
