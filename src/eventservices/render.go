package eventservices

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-scanner/src/eventmodels"
)

var resultTableHeader = []string{"Ticker", "Spot", "Implied Move %", "Hist Avg Move %", "Underpricing", "Squeeze Prob", "Cascade Prob"}

// RenderResultsTable writes the ranked rows as a table, or the
// no-opportunities message when the result set is empty.
func RenderResultsTable(out io.Writer, rows []*eventmodels.ResultRow) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No qualifying earnings opportunities found.")
		return
	}

	table := tablewriter.NewWriter(out)

	table.SetHeader(resultTableHeader)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, row := range rows {
		table.Append([]string{
			row.Ticker,
			fmt.Sprintf("%.2f", row.Spot),
			fmt.Sprintf("%.2f", row.ImpliedMovePct),
			fmt.Sprintf("%.2f", row.HistMovePct),
			fmt.Sprintf("%.2f", row.Underpricing),
			fmt.Sprintf("%.2f", row.SqueezeProb),
			fmt.Sprintf("%.2f", row.CascadeProb),
		})
	}

	table.Render()
}

// ExportResultsCSV writes the ranked rows to filename with the header
// Ticker,Spot,Implied Move %,Hist Avg Move %,Underpricing,Squeeze Prob,Cascade Prob.
func ExportResultsCSV(filename string, rows []*eventmodels.ResultRow) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("ExportResultsCSV: error creating CSV file: %v", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("ExportResultsCSV: error marshalling file: %v", err)
	}

	log.Infof("Exported %d rows to %s", len(rows), filename)

	return nil
}
