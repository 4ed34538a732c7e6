package eventservices

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

type PolygonPriceHistoryMachine struct {
	Client *polygon.Client
}

// FetchDailyCloses returns the adjusted daily closing prices for the
// symbol between from and to, in ascending date order.
func (m *PolygonPriceHistoryMachine) FetchDailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, from, to time.Time) ([]float64, error) {
	log.Debugf("fetching polygon daily aggregates for symbol %s", symbol)

	params := models.ListAggsParams{
		Ticker:     symbol.String(),
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(from),
		To:         models.Millis(to),
	}.WithOrder(models.Asc).WithAdjusted(true)

	iter := m.Client.ListAggs(ctx, params)

	var closes []float64
	for iter.Next() {
		closes = append(closes, iter.Item().Close)
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("FetchDailyCloses: failed to fetch aggregates for %s: %w", symbol, err)
	}

	return closes, nil
}

func NewPolygonPriceHistoryMachine(apiKey string) *PolygonPriceHistoryMachine {
	return &PolygonPriceHistoryMachine{
		Client: polygon.New(apiKey),
	}
}
