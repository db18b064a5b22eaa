// Command paystat-validate validates one payment-statistics report file and
// writes the outcome as JSON.
//
// Exit codes: 0 when the report is accepted, 1 when it is rejected, 2 when
// the run could not complete.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-paystat/internal/app"
	"github.com/MKhiriev/go-paystat/internal/config"
	"github.com/MKhiriev/go-paystat/internal/logger"
	"github.com/MKhiriev/go-paystat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitAccepted = 0
	exitRejected = 1
	exitFailure  = 2
)

func main() {
	printBuildInfo(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, logger.NewLogger("paystat-validate"))
	stop()

	os.Exit(code)
}

// run validates the report named by args and returns the exit code.
func run(ctx context.Context, args []string, stdout io.Writer, log *logger.Logger) int {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgConfigFailed)
		return exitFailure
	}

	leveled, err := log.SetLevel(cfg.Log.Level)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgInvalidLogLevel)
		return exitFailure
	}
	log = leveled
	log.Debug().Any("config", cfg).Msg("received configs")

	registry := prometheus.NewRegistry()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := newEngine(ctx, *cfg, buildInfo, registry, log)
	if err != nil {
		return exitFailure
	}
	defer writeMetrics(cfg.Metrics.TextfilePath, registry, log)

	envelope, err := readEnvelope(cfg.Input.ReportPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Input.ReportPath).Msg(app.MsgReportReadFailed)
		return exitFailure
	}

	if cfg.Engine.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Engine.Timeout)
		defer cancel()
	}

	outcome, err := services.ValidationService.ValidateReport(ctx, envelope)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgValidationFailed)
		return exitFailure
	}

	if err := writeOutcome(stdout, cfg.Input.OutputPath, outcome); err != nil {
		log.Error().Err(err).Msg(app.MsgOutcomeWriteFailed)
		return exitFailure
	}

	if !outcome.Accepted {
		return exitRejected
	}
	return exitAccepted
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
