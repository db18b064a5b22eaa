package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-paystat/internal/dispatch"
	"github.com/MKhiriev/go-paystat/internal/logger"
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/internal/utils"
	"github.com/MKhiriev/go-paystat/internal/validators"
	"github.com/MKhiriev/go-paystat/internal/workers"
	"github.com/MKhiriev/go-paystat/models"
)

const tracerName = "github.com/MKhiriev/go-paystat/internal/service"

type validationService struct {
	dispatcher *dispatch.Dispatcher
	validator  validators.Validator
	worker     workers.Worker
	ids        utils.IDGenerator

	tracer trace.Tracer
	logger *logger.Logger
}

// NewValidationService builds the report validation pipeline: family
// resolution, header validation, then every item validated on worker.
func NewValidationService(
	dispatcher *dispatch.Dispatcher,
	validator validators.Validator,
	worker workers.Worker,
	ids utils.IDGenerator,
	logger *logger.Logger,
) (ValidationService, error) {
	if dispatcher == nil || validator == nil || worker == nil || ids == nil || logger == nil {
		return nil, ErrMissingDependency
	}

	return &validationService{
		dispatcher: dispatcher,
		validator:  validator,
		worker:     worker,
		ids:        ids,
		tracer:     otel.Tracer(tracerName),
		logger:     logger,
	}, nil
}

func (s *validationService) ValidateReport(ctx context.Context, envelope *models.ReportEnvelope) (*models.ReportOutcome, error) {
	if envelope == nil {
		return nil, ErrNoEnvelopeProvided
	}

	ctx, runID := s.runID(ctx)
	ctx = s.withRunLogger(ctx, runID)
	ctx, span := s.tracer.Start(ctx, "ValidateReport", trace.WithAttributes(
		attribute.String("paystat.run_id", runID),
		attribute.Int("paystat.items", len(envelope.Items)),
	))
	defer span.End()

	log := logger.FromContext(ctx)
	outcome := &models.ReportOutcome{RunID: runID}

	family, declared, err := s.dispatcher.ResolveFamily(envelope.Header)
	if err != nil {
		log.Debug().Err(err).Msg("report family not resolved")
		outcome.Envelope = []models.Violation{unknownFamily(envelope.Header, s.dispatcher.DeclaredFields())}
		return outcome, nil
	}

	outcome.Family = family.Name
	outcome.DeclaredType = declared
	span.SetAttributes(
		attribute.String("paystat.family", family.Name),
		attribute.String("paystat.declared_type", declared),
	)

	header := s.validator.Validate(ctx, envelope.Header, family.Header, schema.Context{})
	for _, v := range header.Violations {
		v.Kind = models.KindEnvelope
		outcome.Envelope = append(outcome.Envelope, v)
	}
	if len(envelope.Items) == 0 {
		outcome.Envelope = append(outcome.Envelope, models.Violation{
			Kind:     models.KindEnvelope,
			Code:     models.CodeNoItems,
			Location: models.Location{models.ItemsField},
			Value:    "[]",
			Message:  "There are no items in the report.",
		})
	}
	if len(outcome.Envelope) > 0 {
		span.SetAttributes(attribute.Int("paystat.envelope_violations", len(outcome.Envelope)))
		return outcome, nil
	}

	outcome.Header = header.Record.Normalized(family.Header)
	rc := schema.HeaderContext(header.Record, family)
	if rc.DeclaredType == "" {
		rc.DeclaredType = declared
	}

	outcome.Items = make([]models.ItemOutcome, len(envelope.Items))
	err = s.worker.Run(ctx, len(envelope.Items), func(ctx context.Context, i int) error {
		outcome.Items[i] = s.reportItem(ctx, i, envelope.Items[i], family, rc)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation canceled")
		return nil, fmt.Errorf("%w: %w", ErrValidationCanceled, err)
	}

	outcome.Accepted = outcome.RejectedItems() == 0
	span.SetAttributes(attribute.Bool("paystat.accepted", outcome.Accepted))

	return outcome, nil
}

func (s *validationService) ValidateItem(ctx context.Context, raw models.RawRecord, rc schema.Context) (*models.ItemOutcome, error) {
	if raw == nil {
		return nil, ErrNoItemProvided
	}

	ctx, runID := s.runID(ctx)
	ctx = s.withRunLogger(ctx, runID)

	variant, violation := s.dispatcher.ResolveStandalone(raw)
	if violation != nil {
		return &models.ItemOutcome{Violations: []models.Violation{*violation}}, nil
	}

	if rc.DeclaredField == "" {
		if family, ok := s.dispatcher.Family(variant.Family); ok {
			rc.DeclaredField = family.DeclaredField
		}
	}

	outcome := s.check(ctx, raw, variant, rc)
	return &outcome, nil
}

// reportItem validates the item at index of a report of family f. Locations
// of its violations start at the item.
func (s *validationService) reportItem(ctx context.Context, index int, item any, f *schema.Family, rc schema.Context) models.ItemOutcome {
	outcome := s.dispatchItem(ctx, index, item, f, rc)
	outcome.Index = index

	if !outcome.Accepted {
		logger.FromContext(ctx).Debug().
			Int("index", index).
			Str("variant", outcome.Variant).
			Int("violations", len(outcome.Violations)).
			Msg("item rejected")
	}

	return outcome
}

func (s *validationService) dispatchItem(ctx context.Context, index int, item any, f *schema.Family, rc schema.Context) models.ItemOutcome {
	prefix := []any{models.ItemsField, index}

	raw, ok := rawRecord(item)
	if !ok {
		return models.ItemOutcome{
			Violations: []models.Violation{{
				Kind:     models.KindStructural,
				Code:     models.CodeItemType,
				Location: models.Location(prefix),
				Value:    schema.RenderRaw(item),
				Message:  "Input should be a valid dictionary.",
			}},
		}
	}

	variant, violation := s.dispatcher.ResolveItem(f, rc.DeclaredType, raw)
	if violation != nil {
		return models.ItemOutcome{Violations: []models.Violation{violation.At(prefix...)}}
	}

	outcome := s.check(ctx, raw, variant, rc)
	for i := range outcome.Violations {
		outcome.Violations[i] = outcome.Violations[i].At(prefix...)
	}

	return outcome
}

// withRunLogger attaches a child logger tagged with runID to ctx.
func (s *validationService) withRunLogger(ctx context.Context, runID string) context.Context {
	l := s.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})
	return l.WithContext(ctx)
}

func (s *validationService) check(ctx context.Context, raw models.RawRecord, variant *schema.Variant, rc schema.Context) models.ItemOutcome {
	ctx, span := s.tracer.Start(ctx, "ValidateItem", trace.WithAttributes(
		attribute.String("paystat.variant", variant.Name),
	))
	defer span.End()

	result := s.validator.Validate(ctx, raw, variant, rc)
	outcome := models.ItemOutcome{Variant: variant.Name, Accepted: result.Valid()}
	if outcome.Accepted {
		outcome.Record = result.Record.Normalized(variant)
		return outcome
	}

	outcome.Violations = result.Violations
	span.SetAttributes(attribute.Int("paystat.violations", len(result.Violations)))

	return outcome
}

// runID returns the run identifier carried by ctx, generating one when
// absent.
func (s *validationService) runID(ctx context.Context) (context.Context, string) {
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		return ctx, runID
	}

	runID := s.ids.Generate()
	return utils.WithRunID(ctx, runID), runID
}

func rawRecord(item any) (models.RawRecord, bool) {
	switch v := item.(type) {
	case map[string]any:
		return models.RawRecord(v), v != nil
	case models.RawRecord:
		return v, v != nil
	default:
		return nil, false
	}
}

func unknownFamily(header models.RawRecord, declaredFields []string) models.Violation {
	for _, field := range declaredFields {
		if !header.Has(field) {
			continue
		}

		rendered := schema.RenderRaw(header[field])
		return models.Violation{
			Kind:     models.KindEnvelope,
			Code:     models.CodeUnknownFamily,
			Location: models.Location{field},
			Value:    rendered,
			Message:  fmt.Sprintf("Report type %s declared in %s is not known.", rendered, field),
		}
	}

	return models.Violation{
		Kind:     models.KindEnvelope,
		Code:     models.CodeUnknownFamily,
		Location: models.Location{},
		Value:    "null",
		Message:  fmt.Sprintf("Report type can not be determined. One of %s is required.", strings.Join(declaredFields, ", ")),
	}
}
