package eventservices

import (
	"context"
	"fmt"
	"time"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

// MarketDataFetcher is the provider boundary for one scan pass. Every
// method is a single best-effort fetch: no retries, and the scan loop
// treats any error as "skip this ticker".
type MarketDataFetcher interface {
	ReportsToday(ctx context.Context, symbol eventmodels.StockSymbol, today time.Time) (bool, error)
	FetchQuoteSnapshot(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.QuoteSnapshot, error)
	FetchDailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, from, to time.Time) ([]float64, error)
}

type LiveMarketData struct {
	StockQuotesURL       string
	OptionExpirationsURL string
	OptionChainsURL      string
	TradierBearerToken   string
	PriceHistory         *PolygonPriceHistoryMachine
}

func (m *LiveMarketData) ReportsToday(ctx context.Context, symbol eventmodels.StockSymbol, today time.Time) (bool, error) {
	events, err := FetchEarningsEvents(symbol, today, today)
	if err != nil {
		return false, fmt.Errorf("ReportsToday: failed to fetch earnings events: %w", err)
	}

	for _, event := range events {
		occurs, err := event.OccursOn(today)
		if err != nil {
			return false, fmt.Errorf("ReportsToday: %w", err)
		}

		if occurs {
			return true, nil
		}
	}

	return false, nil
}

func (m *LiveMarketData) FetchQuoteSnapshot(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.QuoteSnapshot, error) {
	tick, err := FetchStockQuote(m.StockQuotesURL, m.TradierBearerToken, symbol)
	if err != nil {
		return nil, fmt.Errorf("FetchQuoteSnapshot: failed to fetch stock quote: %w", err)
	}

	if tick.LastPrice <= 0 {
		return nil, fmt.Errorf("FetchQuoteSnapshot: invalid last price %v for %s", tick.LastPrice, symbol)
	}

	expirations, err := FetchOptionExpirations(m.OptionExpirationsURL, m.TradierBearerToken, symbol)
	if err != nil {
		return nil, fmt.Errorf("FetchQuoteSnapshot: failed to fetch expirations: %w", err)
	}

	if len(expirations) == 0 {
		return nil, fmt.Errorf("FetchQuoteSnapshot: no listed options for %s", symbol)
	}

	// Tradier returns expirations in ascending order
	nearest := expirations[0]

	expiration, err := time.Parse("2006-01-02", nearest)
	if err != nil {
		return nil, fmt.Errorf("FetchQuoteSnapshot: failed to parse expiration %s: %w", nearest, err)
	}

	chain, err := FetchOptionChain(m.OptionChainsURL, m.TradierBearerToken, symbol, nearest)
	if err != nil {
		return nil, fmt.Errorf("FetchQuoteSnapshot: failed to fetch option chain: %w", err)
	}

	var calls, puts []*eventmodels.OptionChainTickDTO
	for _, tick := range chain {
		switch eventmodels.OptionType(tick.OptionType) {
		case eventmodels.Call:
			calls = append(calls, tick)
		case eventmodels.Put:
			puts = append(puts, tick)
		}
	}

	return &eventmodels.QuoteSnapshot{
		Symbol:     symbol,
		Spot:       tick.LastPrice,
		Expiration: expiration,
		Calls:      calls,
		Puts:       puts,
	}, nil
}

func (m *LiveMarketData) FetchDailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, from, to time.Time) ([]float64, error) {
	return m.PriceHistory.FetchDailyCloses(ctx, symbol, from, to)
}
