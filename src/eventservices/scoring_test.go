package eventservices

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

func TestScoreMetrics(t *testing.T) {
	t.Run("squeeze and cascade sum to 1", func(t *testing.T) {
		skews := []float64{-5, -0.5, -0.01, 0, 0.01, 0.5, 5}
		imbalances := []float64{-0.99, -0.1, 0, 0.1, 0.99}

		for _, skew := range skews {
			for _, imbalance := range imbalances {
				score := ScoreMetrics(eventmodels.MetricBundle{
					ImpliedMove: 0.05,
					HistMove:    0.02,
					Skew:        skew,
					Imbalance:   imbalance,
				})

				assert.Equal(t, 1.0, score.SqueezeProb+score.CascadeProb)
			}
		}
	})

	t.Run("underpricing is non-negative", func(t *testing.T) {
		score := ScoreMetrics(eventmodels.MetricBundle{ImpliedMove: 0.05, HistMove: 0})
		assert.GreaterOrEqual(t, score.Underpricing, 0.0)

		score = ScoreMetrics(eventmodels.MetricBundle{ImpliedMove: 0, HistMove: 0.02})
		assert.GreaterOrEqual(t, score.Underpricing, 0.0)
	})

	t.Run("zero implied move stays finite", func(t *testing.T) {
		score := ScoreMetrics(eventmodels.MetricBundle{ImpliedMove: 0, HistMove: 0.02})
		assert.InDelta(t, 20000, score.Underpricing, 1e-6)
	})

	t.Run("tilt saturates at the weight bound", func(t *testing.T) {
		score := ScoreMetrics(eventmodels.MetricBundle{ImpliedMove: 0.05, HistMove: 0.02, Skew: 1000, Imbalance: 1000})
		assert.InDelta(t, 1.0, score.SqueezeProb, 1e-9)
		assert.InDelta(t, 0.0, score.CascadeProb, 1e-9)
	})

	t.Run("abc scenario", func(t *testing.T) {
		score := ScoreMetrics(eventmodels.MetricBundle{
			ImpliedMove: 0.05,
			HistMove:    0.07,
			Skew:        0.01,
			Imbalance:   0.1,
		})

		assert.InDelta(t, 1.39997, score.Underpricing, 1e-4)
		assert.InDelta(t, 0.5229, score.SqueezeProb, 1e-3)
		assert.InDelta(t, 0.4771, score.CascadeProb, 1e-3)
	})
}
