package eventmodels

import (
	"fmt"
	"time"
)

type EarningsEventDTO struct {
	Date             string   `json:"date"`
	Symbol           string   `json:"symbol"`
	EPS              *float64 `json:"eps"`
	EPSEstimated     *float64 `json:"epsEstimated"`
	Time             string   `json:"time"`
	Revenue          *float64 `json:"revenue"`
	RevenueEstimated *float64 `json:"revenueEstimated"`
}

// OccursOn reports whether the earnings event falls on the calendar date
// of t, ignoring the time of day.
func (d *EarningsEventDTO) OccursOn(t time.Time) (bool, error) {
	eventDate, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return false, fmt.Errorf("OccursOn: failed to parse event date %s: %w", d.Date, err)
	}

	y1, m1, d1 := eventDate.Date()
	y2, m2, d2 := t.Date()

	return y1 == y2 && m1 == m2 && d1 == d2, nil
}
