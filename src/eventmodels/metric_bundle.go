package eventmodels

// MetricBundle is the per-ticker signal tuple derived from one quote
// snapshot and two years of daily closes.
type MetricBundle struct {
	ImpliedMove float64
	HistMove    float64
	Skew        float64
	Imbalance   float64
}
