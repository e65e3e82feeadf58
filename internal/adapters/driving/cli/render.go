package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/logger"
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Extract the schedule and write the output files",
	Long: `Reads every saved page (or the given files), extracts the course table
and writes one file per configured format next to the output path.

A page without the schedule table is skipped. If the table lacks a required
column the files are still written, empty, and the command fails.`,
	RunE: runRender,
}

func init() {
	addOutputFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, svc, err := buildServices(cmd, args)
	if err != nil {
		return err
	}

	report, err := svc.Report.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	printSummary(cmd, report.Result)
	for _, path := range report.Artifacts {
		cmd.Printf("Wrote %s\n", path)
	}

	if cfg.Metrics.Textfile != "" && svc.Metrics != nil {
		if err := svc.Metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		logger.Debug("Wrote metrics to %s", cfg.Metrics.Textfile)
	}

	if report.SchemaErr != nil {
		return report.SchemaErr
	}
	return nil
}

func printSummary(cmd *cobra.Command, result *domain.ExtractResult) {
	if result == nil {
		return
	}
	cmd.Printf("Read %d files (%d skipped), %d courses", result.FilesRead, result.FilesSkipped, result.Schedule.Len())
	if result.RowsFiltered > 0 {
		cmd.Printf(", %d filtered out", result.RowsFiltered)
	}
	if n := len(result.Diagnostics); n > 0 {
		cmd.Printf(", %d warnings", n)
	}
	cmd.Println()
}

// isSchemaError reports whether err only means the table lacked columns.
func isSchemaError(err error) bool {
	return errors.Is(err, domain.ErrMissingColumn)
}
