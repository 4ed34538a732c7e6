package eventservices

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

// LoadUniverse reads the ticker universe from a CSV file with a Symbol
// column and truncates it to maxSymbols, preserving file order.
func LoadUniverse(filename string, maxSymbols int) ([]eventmodels.StockSymbol, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("LoadUniverse: failed to open universe file: %w", err)
	}

	defer file.Close()

	var rows []*eventmodels.UniverseRowDTO
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("LoadUniverse: failed to unmarshal universe file: %w", err)
	}

	symbols := make([]eventmodels.StockSymbol, 0, len(rows))
	for _, row := range rows {
		if row.Symbol == "" {
			continue
		}

		symbols = append(symbols, eventmodels.NewStockSymbol(row.Symbol))
	}

	if len(symbols) > maxSymbols {
		symbols = symbols[:maxSymbols]
	}

	return symbols, nil
}
