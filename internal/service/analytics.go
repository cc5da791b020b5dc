package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/zerojournal/tradepulse/internal/analytics"
	"github.com/zerojournal/tradepulse/internal/domain/models"
	"github.com/zerojournal/tradepulse/internal/logger"
	"github.com/zerojournal/tradepulse/internal/storage"
)

// SectorResolver maps symbols to industry sectors. Implementations must
// degrade gracefully: unresolvable symbols map to "Unknown".
type SectorResolver interface {
	LookupAll(ctx context.Context, symbols []string) (map[string]string, error)
}

// AnalyticsService builds analytics reports from ingested datasets.
type AnalyticsService interface {
	// GetReport loads a dataset and derives its full report under the
	// given filter. An empty datasetID selects the most recent dataset.
	GetReport(ctx context.Context, datasetID string, f analytics.Filter) (models.Report, error)
}

type analyticsService struct {
	repo    storage.DatasetRepository
	sectors SectorResolver
	params  analytics.Params
}

// NewAnalyticsService wires the repository and sector resolver behind the
// service interface.
func NewAnalyticsService(repo storage.DatasetRepository, sectors SectorResolver, params analytics.Params) AnalyticsService {
	return &analyticsService{repo: repo, sectors: sectors, params: params}
}

func (s *analyticsService) GetReport(ctx context.Context, datasetID string, f analytics.Filter) (models.Report, error) {
	if datasetID == "" {
		latest, err := s.repo.LatestDatasetID()
		if err != nil {
			return models.Report{}, fmt.Errorf("resolve latest dataset: %w", err)
		}
		if latest == "" {
			return models.Report{}, fmt.Errorf("no datasets ingested yet")
		}
		datasetID = latest
	}

	rows, err := s.repo.LoadTradeRows(datasetID)
	if err != nil {
		return models.Report{}, fmt.Errorf("load trade rows: %w", err)
	}
	if len(rows) == 0 {
		return models.Report{}, fmt.Errorf("dataset %s has no trade rows", datasetID)
	}

	stmt, err := s.repo.LoadPnlStatement(datasetID)
	if err != nil {
		return models.Report{}, fmt.Errorf("load statement: %w", err)
	}

	sectors, err := s.resolveSectors(ctx, rows)
	if err != nil {
		return models.Report{}, err
	}

	report, err := analytics.BuildReport(datasetID, rows, stmt, sectors, f, s.params)
	if err != nil {
		return models.Report{}, fmt.Errorf("build report: %w", err)
	}

	// Reconciliation is informational only; the matched set stays the
	// source of truth for every displayed figure.
	if f.IsZero() {
		full, err := analytics.MatchTrades(rows)
		if err == nil {
			for _, d := range analytics.Reconcile(full.Trades, stmt.Rows) {
				logger.L().Warn().
					Str("dataset_id", datasetID).
					Str("symbol", d.Symbol).
					Float64("matched_pnl", d.MatchedPnl).
					Float64("statement_pnl", d.StatementPnl).
					Float64("delta", d.Delta).
					Msg("statement reconciliation delta")
			}
		}
	}
	if report.UnmatchedSellQty > 0 {
		logger.L().Warn().
			Str("dataset_id", datasetID).
			Int64("unmatched_sell_qty", report.UnmatchedSellQty).
			Msg("sells without matching buy history were dropped")
	}

	return report, nil
}

// resolveSectors collects the distinct symbols of a dataset and resolves
// them in one bounded fan-out. A nil resolver disables sector features.
func (s *analyticsService) resolveSectors(ctx context.Context, rows []models.TradeRow) (map[string]string, error) {
	if s.sectors == nil {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var symbols []string
	for _, r := range rows {
		if _, ok := seen[r.Symbol]; ok {
			continue
		}
		seen[r.Symbol] = struct{}{}
		symbols = append(symbols, r.Symbol)
	}
	sort.Strings(symbols)

	sectors, err := s.sectors.LookupAll(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("resolve sectors: %w", err)
	}
	return sectors, nil
}
