package eventservices

import (
	"math"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

// impliedMoveEpsilon keeps the underpricing ratio finite when the
// implied move is zero.
const impliedMoveEpsilon = 1e-6

// ScoreMetrics derives the underpricing ratio and the squeeze/cascade
// probabilities from a metric bundle. tanh saturates the raw skew and
// imbalance signals into (-1, 1) before weighting, so the tilt is
// bounded to +/-0.5 and squeeze + cascade always sum to 1.
func ScoreMetrics(m eventmodels.MetricBundle) eventmodels.ScoreRecord {
	underpricing := m.HistMove / (m.ImpliedMove + impliedMoveEpsilon)
	tilt := 0.3*math.Tanh(m.Skew) + 0.2*math.Tanh(m.Imbalance)

	return eventmodels.ScoreRecord{
		Underpricing: underpricing,
		SqueezeProb:  0.5 + tilt,
		CascadeProb:  0.5 - tilt,
	}
}
