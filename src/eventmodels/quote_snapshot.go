package eventmodels

import "time"

// QuoteSnapshot holds the spot price and the full call/put chains for the
// nearest listed expiration. It is fetched fresh on every scan pass and
// never cached.
type QuoteSnapshot struct {
	Symbol     StockSymbol
	Spot       float64
	Expiration time.Time
	Calls      []*OptionChainTickDTO
	Puts       []*OptionChainTickDTO
}
