package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coursesched/internal/renderers/text"
)

var showCmd = &cobra.Command{
	Use:   "show [files...]",
	Short: "Print the weekly schedule",
	Long: `Extracts the schedule and prints it as text, one section per weekday.
Nothing is written to disk. Day headers are highlighted on a terminal.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, svc, err := buildServices(cmd, args)
	if err != nil {
		return err
	}

	result, err := svc.Report.Schedule(cmd.Context())
	if err != nil && !isSchemaError(err) {
		return fmt.Errorf("show failed: %w", err)
	}

	out := cmd.OutOrStdout()
	r := text.New(cfg.Render.UnitLabel)
	if isTerminal(out) {
		s := styles.DefaultStyles()
		r.DayHeader = func(day string) string { return s.DayHeader.Render(day) }
	}

	if renderErr := r.Render(cmd.Context(), out, result.Schedule); renderErr != nil {
		return renderErr
	}
	if result.Schedule.IsEmpty() {
		cmd.Println("No courses found.")
	}
	return err
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
