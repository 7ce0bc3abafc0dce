package pricing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"hotelDeskAI/domain"
)

// reportHeader matches the downloadable pricing table column order.
var reportHeader = []string{"Date", "My Price", "Comp P50", "Comp P75", "OccupancyForecast", "Suggested Price"}

// WriteReportCSV serializes the decision table as the flat delimited report
// offered for download.
func WriteReportCSV(w io.Writer, decisions []domain.PricingDecision) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, d := range decisions {
		record := []string{
			d.Date.Format("2006-01-02"),
			strconv.FormatFloat(d.MyPrice, 'f', 0, 64),
			strconv.FormatFloat(d.CompP50, 'f', 0, 64),
			strconv.FormatFloat(d.CompP75, 'f', 0, 64),
			strconv.FormatFloat(d.OccupancyForecast, 'f', 4, 64),
			strconv.Itoa(d.SuggestedPrice),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
