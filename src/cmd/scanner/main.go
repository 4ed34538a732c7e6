package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/earnings-scanner/src/cmd/scanner/run"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/scanner/main.go --min-underpricing 1.0 --min-prob 0.5 --max-symbols 200",
	Short: "Scan the earnings universe for volatility mispricing and rank the results",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		universeFile, err := cmd.Flags().GetString("universe")
		if err != nil {
			log.Fatalf("error getting universe: %v", err)
		}

		outputFile, err := cmd.Flags().GetString("output")
		if err != nil {
			log.Fatalf("error getting output: %v", err)
		}

		minUnderpricing, err := cmd.Flags().GetFloat64("min-underpricing")
		if err != nil {
			log.Fatalf("error getting min-underpricing: %v", err)
		}

		minProb, err := cmd.Flags().GetFloat64("min-prob")
		if err != nil {
			log.Fatalf("error getting min-prob: %v", err)
		}

		maxSymbols, err := cmd.Flags().GetInt("max-symbols")
		if err != nil {
			log.Fatalf("error getting max-symbols: %v", err)
		}

		delayMs, err := cmd.Flags().GetInt("delay-ms")
		if err != nil {
			log.Fatalf("error getting delay-ms: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			GoEnv:           goEnv,
			ConfigFile:      configFile,
			UniverseFile:    universeFile,
			OutputFile:      outputFile,
			MinUnderpricing: minUnderpricing,
			MinProbability:  minProb,
			MaxSymbols:      maxSymbols,
			DelayMs:         delayMs,
		})

		if err != nil {
			log.Errorf("Error: %v", err)
			return
		}

		if result.ExportedFilepath != "" {
			fmt.Printf("Exported rankings to %s\n", result.ExportedFilepath)
		}
	},
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in")
	runCmd.PersistentFlags().String("config", "", "Path to the scanner settings file")
	runCmd.PersistentFlags().String("universe", "", "Path to the universe CSV file. Overrides the settings file.")
	runCmd.PersistentFlags().String("output", "", "Path for the CSV export. No export when empty.")
	runCmd.PersistentFlags().Float64("min-underpricing", -1, "Minimum underpricing ratio. Overrides the settings file when non-negative.")
	runCmd.PersistentFlags().Float64("min-prob", -1, "Minimum squeeze/cascade probability. Overrides the settings file when non-negative.")
	runCmd.PersistentFlags().Int("max-symbols", -1, "Max symbols to scan. Overrides the settings file when non-negative.")
	runCmd.PersistentFlags().Int("delay-ms", -1, "Delay between tickers in milliseconds. Overrides the settings file when non-negative.")

	runCmd.Execute()
}
