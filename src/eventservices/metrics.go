package eventservices

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

// CalcImpliedMove returns the fractional move implied by the at-the-money
// straddle: (atm call last + atm put last) / spot. The ATM contract on
// each side is the one minimizing |strike - spot|, ties broken by
// provider order.
func CalcImpliedMove(spot float64, calls, puts []*eventmodels.OptionChainTickDTO) (float64, error) {
	if spot <= 0 {
		return 0, fmt.Errorf("CalcImpliedMove: invalid spot price %v", spot)
	}

	atmCall, err := findATMContract(spot, calls)
	if err != nil {
		return 0, fmt.Errorf("CalcImpliedMove: call side: %w", err)
	}

	atmPut, err := findATMContract(spot, puts)
	if err != nil {
		return 0, fmt.Errorf("CalcImpliedMove: put side: %w", err)
	}

	return (atmCall.Last + atmPut.Last) / spot, nil
}

func findATMContract(spot float64, chain []*eventmodels.OptionChainTickDTO) (*eventmodels.OptionChainTickDTO, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("findATMContract: empty chain")
	}

	atm := chain[0]
	minDist := math.Abs(chain[0].Strike - spot)

	for _, tick := range chain[1:] {
		if dist := math.Abs(tick.Strike - spot); dist < minDist {
			atm = tick
			minDist = dist
		}
	}

	return atm, nil
}

// CalcHistoricalMove returns the mean absolute day-over-day percentage
// return of the close series.
func CalcHistoricalMove(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("CalcHistoricalMove: need at least 2 closes, got %d", len(closes))
	}

	absReturns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			return 0, fmt.Errorf("CalcHistoricalMove: zero close at index %d", i-1)
		}

		absReturns = append(absReturns, math.Abs((closes[i]-prev)/prev))
	}

	mean, err := stats.Mean(absReturns)
	if err != nil {
		return 0, fmt.Errorf("CalcHistoricalMove: failed to calculate mean: %v", err)
	}

	return mean, nil
}

// CalcSkewProxy returns mean put implied volatility minus mean call
// implied volatility. Positive values indicate a put-side premium.
func CalcSkewProxy(calls, puts []*eventmodels.OptionChainTickDTO) (float64, error) {
	callMean, err := stats.Mean(impliedVols(calls))
	if err != nil {
		return 0, fmt.Errorf("CalcSkewProxy: failed to calculate call iv mean: %v", err)
	}

	putMean, err := stats.Mean(impliedVols(puts))
	if err != nil {
		return 0, fmt.Errorf("CalcSkewProxy: failed to calculate put iv mean: %v", err)
	}

	return putMean - callMean, nil
}

func impliedVols(chain []*eventmodels.OptionChainTickDTO) []float64 {
	vols := make([]float64, 0, len(chain))
	for _, tick := range chain {
		vols = append(vols, tick.ImpliedVolatility())
	}

	return vols
}

// CalcOpenInterestImbalance returns (callOI - putOI) / (callOI + putOI + 1).
// The +1 keeps the denominator positive when both sides have zero open
// interest; the result is always inside (-1, 1).
func CalcOpenInterestImbalance(calls, puts []*eventmodels.OptionChainTickDTO) float64 {
	var callOI, putOI int
	for _, tick := range calls {
		callOI += tick.OpenInterest
	}

	for _, tick := range puts {
		putOI += tick.OpenInterest
	}

	return float64(callOI-putOI) / float64(callOI+putOI+1)
}
