package eventmodels

// ScoreRecord holds the derived scores for one ticker. SqueezeProb and
// CascadeProb always sum to 1 by construction.
type ScoreRecord struct {
	Underpricing float64
	SqueezeProb  float64
	CascadeProb  float64
}
