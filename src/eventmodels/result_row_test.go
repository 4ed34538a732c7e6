package eventmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResultRow(t *testing.T) {
	metrics := MetricBundle{
		ImpliedMove: 0.05,
		HistMove:    0.07,
		Skew:        0.01,
		Imbalance:   0.1,
	}

	score := ScoreRecord{
		Underpricing: 1.3999972,
		SqueezeProb:  0.5229335,
		CascadeProb:  0.4770665,
	}

	row := NewResultRow(NewStockSymbol("abc"), 123.456, metrics, score)

	assert.Equal(t, "ABC", row.Ticker)
	assert.InDelta(t, 123.46, row.Spot, 1e-9)
	assert.InDelta(t, 5.0, row.ImpliedMovePct, 1e-9)
	assert.InDelta(t, 7.0, row.HistMovePct, 1e-9)
	assert.InDelta(t, 1.40, row.Underpricing, 1e-9)
	assert.InDelta(t, 0.52, row.SqueezeProb, 1e-9)
	assert.InDelta(t, 0.48, row.CascadeProb, 1e-9)
}
