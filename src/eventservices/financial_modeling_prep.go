package eventservices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

func FetchEarningsEvents(symbol eventmodels.StockSymbol, fromDate time.Time, toDate time.Time) ([]*eventmodels.EarningsEventDTO, error) {
	apiKey := os.Getenv("FINANCIAL_MODELING_PREP_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing FINANCIAL_MODELING_PREP_API_KEY environment variable")
	}

	parsedURL, err := url.Parse("https://financialmodelingprep.com/api/v3/historical/earning_calendar")
	if err != nil {
		return nil, fmt.Errorf("FetchEarningsEvents: failed to parse base URL: %w", err)
	}

	joinedPath := path.Join(parsedURL.Path, string(symbol))
	parsedURL.Path = joinedPath

	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequest(http.MethodGet, parsedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("FetchEarningsEvents: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("from", fromDate.Format("2006-01-02"))
	q.Add("to", toDate.Format("2006-01-02"))
	q.Add("apikey", apiKey)

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchEarningsEvents: failed to fetch earnings calendar: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchEarningsEvents: failed to fetch earnings calendar, http code %v", res.Status)
	}

	var dto []*eventmodels.EarningsEventDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchEarningsEvents: failed to decode json: %w", err)
	}

	return dto, nil
}
