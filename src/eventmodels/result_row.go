package eventmodels

import "math"

// ResultRow is a qualifying ticker's display/export row. Numeric fields
// are rounded to 2 decimal places at construction and never mutated
// afterwards.
type ResultRow struct {
	Ticker         string  `json:"ticker" csv:"Ticker"`
	Spot           float64 `json:"spot" csv:"Spot"`
	ImpliedMovePct float64 `json:"impliedMovePct" csv:"Implied Move %"`
	HistMovePct    float64 `json:"histMovePct" csv:"Hist Avg Move %"`
	Underpricing   float64 `json:"underpricing" csv:"Underpricing"`
	SqueezeProb    float64 `json:"squeezeProb" csv:"Squeeze Prob"`
	CascadeProb    float64 `json:"cascadeProb" csv:"Cascade Prob"`
}

func NewResultRow(symbol StockSymbol, spot float64, metrics MetricBundle, score ScoreRecord) *ResultRow {
	return &ResultRow{
		Ticker:         symbol.String(),
		Spot:           roundTwoPlaces(spot),
		ImpliedMovePct: roundTwoPlaces(metrics.ImpliedMove * 100),
		HistMovePct:    roundTwoPlaces(metrics.HistMove * 100),
		Underpricing:   roundTwoPlaces(score.Underpricing),
		SqueezeProb:    roundTwoPlaces(score.SqueezeProb),
		CascadeProb:    roundTwoPlaces(score.CascadeProb),
	}
}

func roundTwoPlaces(v float64) float64 {
	return math.Round(v*100) / 100
}
