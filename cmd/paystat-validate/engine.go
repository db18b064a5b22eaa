package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-paystat/internal/app"
	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/codelist"
	"github.com/MKhiriev/go-paystat/internal/config"
	"github.com/MKhiriev/go-paystat/internal/dispatch"
	"github.com/MKhiriev/go-paystat/internal/logger"
	"github.com/MKhiriev/go-paystat/internal/metrics"
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/internal/service"
	"github.com/MKhiriev/go-paystat/internal/utils"
	"github.com/MKhiriev/go-paystat/internal/validators"
	"github.com/MKhiriev/go-paystat/internal/workers"
	"github.com/MKhiriev/go-paystat/models"
)

// newEngine loads every registry and wires the services. Failures are
// logged here.
func newEngine(
	ctx context.Context,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	reg prometheus.Registerer,
	log *logger.Logger,
) (*service.Services, error) {
	cat, err := catalog.New()
	if err != nil {
		log.Error().Err(err).Msg(app.MsgCatalogFailed)
		return nil, err
	}

	sources := []codelist.Source{codelist.NewEmbeddedSource()}
	if cfg.CodeLists.Dir != "" {
		sources = append(sources, codelist.NewDirSource(cfg.CodeLists.Dir))
	}
	lists, err := codelist.NewRegistry(ctx, sources...)
	if err != nil {
		log.Error().Err(err).Str("dir", cfg.CodeLists.Dir).Msg(app.MsgCodeListsFailed)
		return nil, err
	}
	for _, name := range codelist.Names() {
		log.Debug().Str("list", string(name)).Int("codes", lists.Len(name)).Msg("code list loaded")
	}

	variants, err := schema.NewRegistry(cat)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgSchemaFailed)
		return nil, err
	}

	dispatcher, err := dispatch.New(variants)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgDispatcherFailed)
		return nil, err
	}

	structural, err := validators.NewStructural(lists, nil)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgServicesFailed)
		return nil, err
	}

	pool := workers.NewPool(cfg.Engine.MaxParallelItems)
	services, err := service.NewServices(service.Dependencies{
		Dispatcher: dispatcher,
		Validator:  validators.NewRecordValidator(structural),
		Worker:     pool,
		IDs:        utils.NewUUIDGenerator(),
		Metrics:    metrics.New(reg),
		BuildInfo:  buildInfo,
	}, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgServicesFailed)
		return nil, err
	}

	log.Info().
		Str("version", services.AppInfoService.GetAppVersion(ctx)).
		Int("concepts", cat.Concepts()).
		Int("scopes", cat.Scopes()).
		Int("families", len(variants.Families())).
		Int("variants", len(variants.Variants())).
		Int("discriminators", dispatcher.Len()).
		Int("workers", pool.Limit()).
		Msg(app.MsgEngineReady)

	return services, nil
}

func readEnvelope(path string) (*models.ReportEnvelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening report: %w", err)
	}
	defer f.Close()

	return models.DecodeEnvelope(f)
}

// writeOutcome writes outcome as indented JSON to path, or to stdout when
// path is empty.
func writeOutcome(stdout io.Writer, path string, outcome *models.ReportOutcome) error {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding outcome: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func writeMetrics(path string, gatherer prometheus.Gatherer, log *logger.Logger) {
	if path == "" {
		return
	}

	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		log.Error().Err(err).Str("path", path).Msg(app.MsgMetricsWriteFailed)
	}
}
