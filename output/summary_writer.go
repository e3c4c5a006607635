package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"logmon/report"
)

// WriteSummary exports the aggregate statistics as a single data row.
func WriteSummary(path, format string, summary report.Summary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeSummaryCSV(path, summary)
	case "excel", "xlsx":
		return writeSummaryExcel(path, summary)
	default:
		return fmt.Errorf("unsupported output format for summary: %s", format)
	}
}

func summaryHeaders() []string {
	return []string{"TotalJobs", "CompletedJobs", "IncompleteJobs", "Warnings", "Errors", "OrphanEnds", "AvgDuration", "MinDuration", "MaxDuration"}
}

func summaryRow(summary report.Summary) []string {
	avg, min, max := "n/a", "n/a", "n/a"
	if summary.HasDurations {
		avg = report.FormatMinutes(summary.AvgDurationMinutes)
		min = report.FormatMinutes(summary.MinDurationMinutes)
		max = report.FormatMinutes(summary.MaxDurationMinutes)
	}
	return []string{
		strconv.Itoa(summary.TotalJobs),
		strconv.Itoa(summary.CompletedJobs),
		strconv.Itoa(summary.IncompleteJobs),
		strconv.Itoa(summary.WarningJobs),
		strconv.Itoa(summary.ErrorJobs),
		strconv.Itoa(summary.OrphanEnds),
		avg,
		min,
		max,
	}
}

func writeSummaryCSV(path string, summary report.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(summaryHeaders()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	if err := writer.Write(summaryRow(summary)); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

func writeSummaryExcel(path string, summary report.Summary) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	for col, header := range summaryHeaders() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}
	for col, value := range summaryRow(summary) {
		cell, _ := excelize.CoordinatesToCellName(col+1, 2)
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set excel value %s: %w", cell, err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
