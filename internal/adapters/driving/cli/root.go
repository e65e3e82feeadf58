// Package cli provides the coursesched command line.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/coursesched/internal/adapters/driven/config/file"
	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driving"
	"github.com/custodia-labs/coursesched/internal/logger"
)

// version is set at build time.
var version = "dev"

// MetricsWriter persists run metrics.
type MetricsWriter interface {
	WriteTextfile(path string) error
}

// Services are the driving ports a command needs for one run.
type Services struct {
	Report  driving.ReportService
	Metrics MetricsWriter
}

// ServiceFactory builds the services for a resolved configuration.
type ServiceFactory func(cfg domain.Config) (*Services, error)

var serviceFactory ServiceFactory

// Persistent flags shared by every command.
var (
	configPath  string
	verbose     bool
	inputDir    string
	courseCodes []string
	tableID     string
	containerID string
	encoding    string
)

// Output flags shared by the root and render commands.
var (
	outputPath  string
	formats     []string
	metricsFile string
)

var rootCmd = &cobra.Command{
	Use:   "coursesched [files...]",
	Short: "Turn saved course-schedule pages into a weekly timetable",
	Long: `coursesched reads course-schedule pages saved from the university
registration portal, groups the offered courses by weekday and writes
a filterable HTML page, plain text or data exports.

Without a subcommand it behaves like "coursesched render".`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runRender,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default ./"+file.DefaultPath+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&inputDir, "input-dir", "i", "", "directory of saved pages")
	pf.StringSliceVar(&courseCodes, "course", nil, "only keep these course codes (repeatable)")
	pf.StringVar(&tableID, "table-id", "", "id of the schedule table")
	pf.StringVar(&containerID, "container-id", "", "id of the element containing the table")
	pf.StringVar(&encoding, "encoding", "", "charset of the saved pages")

	addOutputFlags(rootCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&outputPath, "output", "o", "", "output path without extension")
	f.StringSliceVarP(&formats, "format", "f", nil, "output formats: html, text, csv, arrow, sqlite")
	f.StringVar(&metricsFile, "metrics-file", "", "write run metrics in Prometheus text format")
}

// SetServiceFactory sets how services are built from the configuration.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves defaults, config file, environment and flags, in
// that order. Positional arguments replace the input file list.
func loadConfig(cmd *cobra.Command, args []string) (domain.Config, error) {
	cfg, err := file.NewLoader(configPath).Load()
	if err != nil {
		return domain.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.Input.Dir = inputDir
		cfg.Input.Files = nil
	}
	if len(args) > 0 {
		cfg.Input.Files = args
	}
	if flags.Changed("course") {
		cfg.Filter.CourseCodes = courseCodes
	}
	if flags.Changed("table-id") {
		cfg.Table.ID = tableID
	}
	if flags.Changed("container-id") {
		cfg.Table.ContainerID = containerID
	}
	if flags.Changed("encoding") {
		cfg.Input.Encoding = encoding
	}
	if flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Changed("format") {
		cfg.Output.Formats = formats
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = metricsFile
	}

	return cfg, nil
}

// buildServices loads the configuration and builds the services for cmd.
func buildServices(cmd *cobra.Command, args []string) (domain.Config, *Services, error) {
	if serviceFactory == nil {
		return domain.Config{}, nil, errors.New("services not configured")
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return domain.Config{}, nil, err
	}

	svc, err := serviceFactory(cfg)
	if err != nil {
		return domain.Config{}, nil, err
	}
	return cfg, svc, nil
}
