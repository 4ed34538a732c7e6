package run

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-scanner/src/config"
	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
	"github.com/jiaming2012/earnings-scanner/src/eventservices"
	"github.com/jiaming2012/earnings-scanner/src/utils"
)

type RunArgs struct {
	GoEnv        string
	ConfigFile   string
	UniverseFile string
	OutputFile   string

	// Negative values mean "use the settings file"
	MinUnderpricing float64
	MinProbability  float64
	MaxSymbols      int
	DelayMs         int
}

type RunResult struct {
	QualifyingRows   int
	ExportedFilepath string
}

func Run(args RunArgs) (RunResult, error) {
	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		log.Fatalf("missing PROJECTS_DIR environment variable")
	}

	if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	settings, err := config.Load(args.ConfigFile)
	if err != nil {
		return RunResult{}, fmt.Errorf("error loading scanner settings: %v", err)
	}

	applyOverrides(settings, args)

	params := eventmodels.ScanParams{
		MinUnderpricing: settings.MinUnderpricing,
		MinProbability:  settings.MinProbability,
		MaxSymbols:      settings.MaxSymbols,
		Delay:           time.Duration(settings.DelayMs) * time.Millisecond,
	}

	if err := params.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("invalid scan params: %v", err)
	}

	universe, err := eventservices.LoadUniverse(settings.UniverseFile, settings.MaxSymbols)
	if err != nil {
		return RunResult{}, fmt.Errorf("error loading universe: %v", err)
	}

	bearerToken := os.Getenv("TRADIER_BEARER_TOKEN")
	if bearerToken == "" {
		log.Fatalf("missing TRADIER_BEARER_TOKEN environment variable")
	}

	stockQuotesURL := os.Getenv("TRADIER_STOCK_QUOTES_URL")
	if stockQuotesURL == "" {
		log.Fatalf("missing TRADIER_STOCK_QUOTES_URL environment variable")
	}

	optionExpirationsURL := os.Getenv("TRADIER_OPTION_EXPIRATIONS_URL")
	if optionExpirationsURL == "" {
		log.Fatalf("missing TRADIER_OPTION_EXPIRATIONS_URL environment variable")
	}

	optionChainsURL := os.Getenv("TRADIER_OPTION_CHAINS_URL")
	if optionChainsURL == "" {
		log.Fatalf("missing TRADIER_OPTION_CHAINS_URL environment variable")
	}

	polygonAPIKey := os.Getenv("POLYGON_API_KEY")
	if polygonAPIKey == "" {
		log.Fatalf("missing POLYGON_API_KEY environment variable")
	}

	estLocation, err := time.LoadLocation("America/New_York")
	if err != nil {
		return RunResult{}, fmt.Errorf("error loading EST location: %v", err)
	}

	fetcher := &eventservices.LiveMarketData{
		StockQuotesURL:       stockQuotesURL,
		OptionExpirationsURL: optionExpirationsURL,
		OptionChainsURL:      optionChainsURL,
		TradierBearerToken:   bearerToken,
		PriceHistory:         eventservices.NewPolygonPriceHistoryMachine(polygonAPIKey),
	}

	scanner := eventservices.NewScanner(fetcher, params.Delay)

	today := time.Now().In(estLocation)

	rows, err := scanner.RunScan(context.Background(), universe, today, params)
	if err != nil {
		return RunResult{}, fmt.Errorf("error running scan: %v", err)
	}

	eventservices.RenderResultsTable(os.Stdout, rows)

	result := RunResult{
		QualifyingRows: len(rows),
	}

	if args.OutputFile != "" && len(rows) > 0 {
		if err := eventservices.ExportResultsCSV(args.OutputFile, rows); err != nil {
			return RunResult{}, fmt.Errorf("error exporting results: %v", err)
		}

		result.ExportedFilepath = args.OutputFile
	}

	return result, nil
}

func applyOverrides(settings *config.ScanSettings, args RunArgs) {
	if args.MinUnderpricing >= 0 {
		settings.MinUnderpricing = args.MinUnderpricing
	}

	if args.MinProbability >= 0 {
		settings.MinProbability = args.MinProbability
	}

	if args.MaxSymbols >= 0 {
		settings.MaxSymbols = args.MaxSymbols
	}

	if args.DelayMs >= 0 {
		settings.DelayMs = args.DelayMs
	}

	if args.UniverseFile != "" {
		settings.UniverseFile = args.UniverseFile
	}
}
