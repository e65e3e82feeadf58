package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui"
	"github.com/custodia-labs/coursesched/internal/logger"
)

var browseCmd = &cobra.Command{
	Use:   "browse [files...]",
	Short: "Browse the schedule interactively",
	Long: `Opens the schedule in the terminal with the same filter as the HTML page.

Controls:
  type     - Filter; separate alternatives with the filter delimiter
  tab      - Switch between the weekly view and all courses
  ↑/↓      - Move the selection
  pgup/pgdn - Scroll a page
  ctrl+u   - Clear the filter
  esc      - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, svc, err := buildServices(cmd, args)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Report: svc.Report}, cfg.Render)
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	app.WithContext(cmd.Context())

	// Warnings would draw over the alternate screen; the status bar counts them instead.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(cmd.ErrOrStderr())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
