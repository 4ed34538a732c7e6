package eventmodels

type StockTickItemDTO struct {
	Symbol           string  `json:"symbol"`
	LastPrice        float64 `json:"last"`
	Volume           float64 `json:"volume"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Open             float64 `json:"open"`
	Close            float64 `json:"close"`
	AverageVolume    int     `json:"average_volume"`
	LastVolume       int     `json:"last_volume"`
	ChangePercentage float64 `json:"change_percentage"`
	AskSize          int     `json:"asksize"`
	BidSize          int     `json:"bidsize"`
	Ask              float64 `json:"ask"`
	Bid              float64 `json:"bid"`
}

type StockTickDTO struct {
	Quotes struct {
		Tick StockTickItemDTO `json:"quote"`
	} `json:"quotes"`
}
