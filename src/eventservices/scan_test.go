package eventservices

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

type fakeMarketData struct {
	reports    map[eventmodels.StockSymbol]bool
	reportErrs map[eventmodels.StockSymbol]error
	snapshots  map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot
	closes     map[eventmodels.StockSymbol][]float64
}

func (f *fakeMarketData) ReportsToday(ctx context.Context, symbol eventmodels.StockSymbol, today time.Time) (bool, error) {
	if err, ok := f.reportErrs[symbol]; ok {
		return false, err
	}

	return f.reports[symbol], nil
}

func (f *fakeMarketData) FetchQuoteSnapshot(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.QuoteSnapshot, error) {
	snapshot, ok := f.snapshots[symbol]
	if !ok {
		return nil, fmt.Errorf("no options data for %s", symbol)
	}

	return snapshot, nil
}

func (f *fakeMarketData) FetchDailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, from, to time.Time) ([]float64, error) {
	closes, ok := f.closes[symbol]
	if !ok {
		return nil, fmt.Errorf("no price history for %s", symbol)
	}

	return closes, nil
}

func testSnapshot(symbol eventmodels.StockSymbol, callIV, putIV float64, callOI, putOI int) *eventmodels.QuoteSnapshot {
	return &eventmodels.QuoteSnapshot{
		Symbol:     symbol,
		Spot:       100,
		Expiration: time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
		Calls: []*eventmodels.OptionChainTickDTO{
			chainTick("call", 95, 6.0, callIV, callOI),
			chainTick("call", 100, 3.0, callIV, 0),
			chainTick("call", 105, 1.2, callIV, 0),
		},
		Puts: []*eventmodels.OptionChainTickDTO{
			chainTick("put", 95, 1.1, putIV, putOI),
			chainTick("put", 100, 2.0, putIV, 0),
			chainTick("put", 105, 5.8, putIV, 0),
		},
	}
}

func defaultParams() eventmodels.ScanParams {
	return eventmodels.ScanParams{
		MinUnderpricing: 1.0,
		MinProbability:  0.5,
		MaxSymbols:      200,
	}
}

func TestRunScan(t *testing.T) {
	today := time.Date(2024, 6, 18, 9, 30, 0, 0, time.UTC)

	t.Run("underpricing below threshold is excluded", func(t *testing.T) {
		abc := eventmodels.NewStockSymbol("ABC")
		fetcher := &fakeMarketData{
			reports:   map[eventmodels.StockSymbol]bool{abc: true},
			snapshots: map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot{abc: testSnapshot(abc, 0.5, 0.5, 0, 0)},
			closes:    map[eventmodels.StockSymbol][]float64{abc: {100, 102}},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{abc}, today, defaultParams())
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})

	t.Run("qualifying symbol is included with rounded values", func(t *testing.T) {
		abc := eventmodels.NewStockSymbol("ABC")
		fetcher := &fakeMarketData{
			reports:   map[eventmodels.StockSymbol]bool{abc: true},
			snapshots: map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot{abc: testSnapshot(abc, 0.50, 0.51, 60, 49)},
			closes:    map[eventmodels.StockSymbol][]float64{abc: {100, 107}},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{abc}, today, defaultParams())
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, "ABC", row.Ticker)
		assert.InDelta(t, 100.0, row.Spot, 1e-9)
		assert.InDelta(t, 5.0, row.ImpliedMovePct, 1e-9)
		assert.InDelta(t, 7.0, row.HistMovePct, 1e-9)
		assert.InDelta(t, 1.40, row.Underpricing, 1e-9)
		assert.InDelta(t, 0.52, row.SqueezeProb, 1e-9)
		assert.InDelta(t, 0.48, row.CascadeProb, 1e-9)
	})

	t.Run("earnings lookup failure excludes the symbol", func(t *testing.T) {
		abc := eventmodels.NewStockSymbol("ABC")
		fetcher := &fakeMarketData{
			reportErrs: map[eventmodels.StockSymbol]error{abc: fmt.Errorf("calendar unavailable")},
			snapshots:  map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot{abc: testSnapshot(abc, 0.5, 0.5, 0, 0)},
			closes:     map[eventmodels.StockSymbol][]float64{abc: {100, 107}},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{abc}, today, defaultParams())
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})

	t.Run("not reporting today excludes the symbol", func(t *testing.T) {
		abc := eventmodels.NewStockSymbol("ABC")
		fetcher := &fakeMarketData{
			reports:   map[eventmodels.StockSymbol]bool{abc: false},
			snapshots: map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot{abc: testSnapshot(abc, 0.5, 0.5, 0, 0)},
			closes:    map[eventmodels.StockSymbol][]float64{abc: {100, 107}},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{abc}, today, defaultParams())
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})

	t.Run("snapshot fetch failure skips the symbol", func(t *testing.T) {
		abc := eventmodels.NewStockSymbol("ABC")
		fetcher := &fakeMarketData{
			reports: map[eventmodels.StockSymbol]bool{abc: true},
			closes:  map[eventmodels.StockSymbol][]float64{abc: {100, 107}},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{abc}, today, defaultParams())
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})

	t.Run("empty chain side skips before scoring", func(t *testing.T) {
		abc := eventmodels.NewStockSymbol("ABC")
		snapshot := testSnapshot(abc, 0.5, 0.5, 0, 0)
		snapshot.Calls = nil

		fetcher := &fakeMarketData{
			reports:   map[eventmodels.StockSymbol]bool{abc: true},
			snapshots: map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot{abc: snapshot},
			closes:    map[eventmodels.StockSymbol][]float64{abc: {100, 107}},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{abc}, today, defaultParams())
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})

	t.Run("price history failure skips the symbol", func(t *testing.T) {
		abc := eventmodels.NewStockSymbol("ABC")
		fetcher := &fakeMarketData{
			reports:   map[eventmodels.StockSymbol]bool{abc: true},
			snapshots: map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot{abc: testSnapshot(abc, 0.5, 0.5, 0, 0)},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{abc}, today, defaultParams())
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})

	t.Run("results sorted stable descending by underpricing", func(t *testing.T) {
		aaa := eventmodels.NewStockSymbol("AAA")
		bbb := eventmodels.NewStockSymbol("BBB")
		ddd := eventmodels.NewStockSymbol("DDD")

		fetcher := &fakeMarketData{
			reports: map[eventmodels.StockSymbol]bool{aaa: true, bbb: true, ddd: true},
			snapshots: map[eventmodels.StockSymbol]*eventmodels.QuoteSnapshot{
				aaa: testSnapshot(aaa, 0.5, 0.5, 0, 0),
				bbb: testSnapshot(bbb, 0.5, 0.5, 0, 0),
				ddd: testSnapshot(ddd, 0.5, 0.5, 0, 0),
			},
			closes: map[eventmodels.StockSymbol][]float64{
				aaa: {100, 107},
				bbb: {100, 107},
				ddd: {100, 110},
			},
		}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), []eventmodels.StockSymbol{aaa, bbb, ddd}, today, defaultParams())
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "DDD", rows[0].Ticker)
		assert.Equal(t, "AAA", rows[1].Ticker)
		assert.Equal(t, "BBB", rows[2].Ticker)
	})

	t.Run("empty universe yields empty result set", func(t *testing.T) {
		fetcher := &fakeMarketData{}

		rows, err := NewScanner(fetcher, 0).RunScan(context.Background(), nil, today, defaultParams())
		require.NoError(t, err)
		assert.Len(t, rows, 0)
	})

	t.Run("invalid params", func(t *testing.T) {
		fetcher := &fakeMarketData{}
		params := defaultParams()
		params.MinProbability = 1.5

		_, err := NewScanner(fetcher, 0).RunScan(context.Background(), nil, today, params)
		assert.Error(t, err)
	})
}
