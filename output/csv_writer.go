package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"logmon/internal/timeutil"
	"logmon/report"
	"logmon/tracker"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, records []tracker.JobRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(detailHeaders()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(detailRow(record)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

func detailHeaders() []string {
	return []string{"PID", "Description", "StartTime", "EndTime", "Duration", "Status", "Alert"}
}

func detailRow(record tracker.JobRecord) []string {
	endTime := ""
	if record.Complete() {
		endTime = timeutil.FormatClock(record.EndTime)
	}
	return []string{
		string(record.PID),
		record.Description,
		timeutil.FormatClock(record.StartTime),
		endTime,
		report.DurationCell(record),
		string(record.Status),
		report.AlertCell(record),
	}
}
