package eventservices

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

// Scanner runs one sequential pass over a ticker universe. The rate
// limiter is waited on between tickers regardless of outcome, so the
// provider sees at most one ticker per configured delay.
type Scanner struct {
	fetcher MarketDataFetcher
	limiter *rate.Limiter
}

func NewScanner(fetcher MarketDataFetcher, delay time.Duration) *Scanner {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &Scanner{
		fetcher: fetcher,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// RunScan scans the universe in order, skipping tickers that are not
// reporting today or that fail any fetch, and returns the qualifying
// rows sorted stable-descending by underpricing. An empty result set is
// a normal outcome, not an error.
func (s *Scanner) RunScan(ctx context.Context, universe []eventmodels.StockSymbol, today time.Time, params eventmodels.ScanParams) ([]*eventmodels.ResultRow, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("RunScan: invalid scan params: %w", err)
	}

	runID := uuid.New()
	logger := log.WithField("runID", runID)

	logger.Infof("scanning %d symbols for earnings on %s", len(universe), today.Format("2006-01-02"))

	var results []*eventmodels.ResultRow
	for i, symbol := range universe {
		if i > 0 {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("RunScan: rate limiter wait failed: %w", err)
			}
		}

		row, ok := s.scanSymbol(ctx, logger, symbol, today, params)
		if ok {
			results = append(results, row)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Underpricing > results[j].Underpricing
	})

	logger.Infof("scan complete: %d qualifying symbols", len(results))

	return results, nil
}

func (s *Scanner) scanSymbol(ctx context.Context, logger *log.Entry, symbol eventmodels.StockSymbol, today time.Time, params eventmodels.ScanParams) (*eventmodels.ResultRow, bool) {
	slog := logger.WithField("symbol", symbol)

	reports, err := s.fetcher.ReportsToday(ctx, symbol, today)
	if err != nil {
		slog.Debugf("earnings lookup failed, skipping: %v", err)
		return nil, false
	}

	if !reports {
		return nil, false
	}

	snapshot, err := s.fetcher.FetchQuoteSnapshot(ctx, symbol)
	if err != nil {
		slog.Debugf("no options data, skipping: %v", err)
		return nil, false
	}

	impliedMove, err := CalcImpliedMove(snapshot.Spot, snapshot.Calls, snapshot.Puts)
	if err != nil {
		slog.Debugf("cannot score, skipping: %v", err)
		return nil, false
	}

	closes, err := s.fetcher.FetchDailyCloses(ctx, symbol, today.AddDate(-2, 0, 0), today)
	if err != nil {
		slog.Debugf("price history fetch failed, skipping: %v", err)
		return nil, false
	}

	histMove, err := CalcHistoricalMove(closes)
	if err != nil {
		slog.Debugf("cannot score, skipping: %v", err)
		return nil, false
	}

	skew, err := CalcSkewProxy(snapshot.Calls, snapshot.Puts)
	if err != nil {
		slog.Debugf("cannot score, skipping: %v", err)
		return nil, false
	}

	metrics := eventmodels.MetricBundle{
		ImpliedMove: impliedMove,
		HistMove:    histMove,
		Skew:        skew,
		Imbalance:   CalcOpenInterestImbalance(snapshot.Calls, snapshot.Puts),
	}

	score := ScoreMetrics(metrics)

	if score.Underpricing < params.MinUnderpricing {
		return nil, false
	}

	if score.SqueezeProb < params.MinProbability && score.CascadeProb < params.MinProbability {
		return nil, false
	}

	slog.Infof("qualifying: underpricing %.2f, squeeze %.2f, cascade %.2f", score.Underpricing, score.SqueezeProb, score.CascadeProb)

	return eventmodels.NewResultRow(symbol, snapshot.Spot, metrics, score), true
}
