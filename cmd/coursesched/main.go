// Command coursesched turns saved course-schedule pages into a weekly timetable.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/cli"
	"github.com/custodia-labs/coursesched/internal/bootstrap"
	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/logger"
)

// version is injected with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(func(cfg domain.Config) (*cli.Services, error) {
		svc, err := bootstrap.Build(cfg)
		if err != nil {
			return nil, err
		}
		return &cli.Services{Report: svc.Report, Metrics: svc.Metrics}, nil
	})

	err := cli.Execute(ctx)
	_ = logger.Sync()
	if err != nil {
		stop()
		os.Exit(1)
	}
}
