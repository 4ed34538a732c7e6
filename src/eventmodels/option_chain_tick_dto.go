package eventmodels

type OptionGreeksDTO struct {
	Delta  float64 `json:"delta"`
	Gamma  float64 `json:"gamma"`
	Theta  float64 `json:"theta"`
	Vega   float64 `json:"vega"`
	BidIV  float64 `json:"bid_iv"`
	MidIV  float64 `json:"mid_iv"`
	AskIV  float64 `json:"ask_iv"`
	SmvVol float64 `json:"smv_vol"`
}

type OptionChainTickDTO struct {
	Symbol         string           `json:"symbol"`
	Description    string           `json:"description"`
	Bid            float64          `json:"bid"`
	Ask            float64          `json:"ask"`
	Last           float64          `json:"last"`
	Volume         int              `json:"volume"`
	OpenInterest   int              `json:"open_interest"`
	Strike         float64          `json:"strike"`
	ContractSize   int              `json:"contract_size"`
	ExpirationDate string           `json:"expiration_date"`
	OptionType     string           `json:"option_type"`
	Greeks         *OptionGreeksDTO `json:"greeks"`
}

// ImpliedVolatility returns the mid implied volatility, or 0 when the
// provider omits greeks for the contract.
func (d *OptionChainTickDTO) ImpliedVolatility() float64 {
	if d.Greeks == nil {
		return 0
	}

	return d.Greeks.MidIV
}
