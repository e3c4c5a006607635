package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"logmon/config"
	"logmon/parser"
	"logmon/report"
	"logmon/tracker"
)

var (
	analyzeWarnMinutes  float64
	analyzeErrorMinutes float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <log-file>",
	Short: "Analyze a job lifecycle log and print the report",
	Long: `Parse a CSV log file, match START/END entries per pid, and print summary
statistics plus a per-job detail table.

Malformed lines, orphan END entries, and jobs without an END never abort the
run; they are reported as diagnostics alongside the result.`,
	Example: `
  # Analyze a log file
  logmon analyze ./jobs.log

  # Override alert thresholds for this run
  logmon analyze ./jobs.log --warn-minutes 3 --error-minutes 8
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		thresholds, err := resolveThresholds(cmd, *cfg)
		if err != nil {
			return err
		}

		return runAnalyze(cmd.OutOrStdout(), args[0], thresholds)
	},
}

func runAnalyze(out io.Writer, path string, thresholds tracker.Thresholds) error {
	result, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Entries parsed: %d\n", len(result.Entries))
	for _, malformed := range result.Malformed {
		fmt.Fprintf(os.Stderr, "Warning: skipping malformed line %d: %s\n", malformed.Line, malformed.Reason)
	}

	tr := tracker.New(thresholds)
	for _, entry := range result.Entries {
		tr.Observe(entry)
	}
	tr.Finalize()

	for _, orphan := range tr.Orphans() {
		fmt.Fprintf(os.Stderr, "Warning: END without matching START for pid %s (line %d)\n", orphan.PID, orphan.Line)
	}

	records := tr.Records()
	summary := report.Build(records, len(tr.Orphans()))
	return report.Render(out, summary, records)
}

// resolveThresholds applies per-run flag overrides on top of config values.
func resolveThresholds(cmd *cobra.Command, cfg config.Config) (tracker.Thresholds, error) {
	thresholds := tracker.Thresholds{
		WarningMinutes: cfg.Thresholds.WarningMinutes,
		ErrorMinutes:   cfg.Thresholds.ErrorMinutes,
	}
	if cmd.Flags().Changed("warn-minutes") {
		thresholds.WarningMinutes = analyzeWarnMinutes
	}
	if cmd.Flags().Changed("error-minutes") {
		thresholds.ErrorMinutes = analyzeErrorMinutes
	}

	if thresholds.WarningMinutes <= 0 || thresholds.ErrorMinutes <= 0 {
		return tracker.Thresholds{}, fmt.Errorf("thresholds must be > 0")
	}
	if thresholds.ErrorMinutes < thresholds.WarningMinutes {
		return tracker.Thresholds{}, fmt.Errorf(
			"error threshold (%v) must be >= warning threshold (%v)",
			thresholds.ErrorMinutes,
			thresholds.WarningMinutes,
		)
	}
	return thresholds, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64Var(&analyzeWarnMinutes, "warn-minutes", 5, "Duration above which a completed job is flagged WARNING")
	analyzeCmd.Flags().Float64Var(&analyzeErrorMinutes, "error-minutes", 10, "Duration above which a completed job is flagged ERROR")
}
