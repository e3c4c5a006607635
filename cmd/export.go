package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"logmon/config"
	"logmon/output"
	"logmon/parser"
	"logmon/report"
	"logmon/tracker"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <log-file>",
	Short: "Export analysis results to CSV/Excel",
	Long: `Analyze a log file and export the results.

Modes:
- detail: one row per job record (pid, description, times, duration, status, alert)
- summary: a single row of aggregate statistics

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export detail rows to CSV
  logmon export ./jobs.log --output ./jobs.csv

  # Export detail rows to Excel
  logmon export ./jobs.log --output ./jobs.xlsx

  # Export aggregate summary to CSV
  logmon export ./jobs.log --mode summary --output ./summary.csv

  # Force Excel format independent of extension
  logmon export ./jobs.log --format excel --output ./jobs.out
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		result, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}

		tr := tracker.New(tracker.Thresholds{
			WarningMinutes: cfg.Thresholds.WarningMinutes,
			ErrorMinutes:   cfg.Thresholds.ErrorMinutes,
		})
		for _, entry := range result.Entries {
			tr.Observe(entry)
		}
		tr.Finalize()
		records := tr.Records()

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "detail":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, records); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: detail, Format: %s, File: %s\n", len(records), format, exportOutput)
		case "summary":
			summary := report.Build(records, len(tr.Orphans()))
			if err := output.WriteSummary(exportOutput, format, summary); err != nil {
				return err
			}
			fmt.Printf("Export completed. Jobs: %d, Mode: summary, Format: %s, File: %s\n", summary.TotalJobs, format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: detail, summary)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "detail", "Export mode: detail|summary")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
