package saft

import (
	"context"
	"fmt"
	"time"

	"fiskal/internal/core/apperror"
	"fiskal/pkg/logger"
)

const (
	generateAttempts = 3
	retryBackoff     = 200 * time.Millisecond
)

// Service generates audit files. Generation is idempotent: the same request
// against the same book state produces byte-identical output, so callers may
// retry freely.
type Service struct {
	assembler  *Assembler
	serializer *Serializer

	// now is injectable for deterministic tests
	now func() time.Time
}

// NewService creates a new report Service.
func NewService(store Store) *Service {
	return &Service{
		assembler:  NewAssembler(store),
		serializer: NewSerializer(),
		now:        time.Now,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Generate validates the request, assembles the document from a consistent
// snapshot and serializes it. Request validation happens before any data
// access. Transient infrastructure failures are retried; data-integrity
// errors abort immediately.
func (s *Service) Generate(ctx context.Context, req Request) (*File, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	today := s.now().UTC()

	var doc *Document
	var lastErr error
	for attempt := 1; attempt <= generateAttempts; attempt++ {
		var err error
		doc, err = s.assembler.Assemble(ctx, req, today)
		if err == nil {
			lastErr = nil
			break
		}
		if apperror.IsAppError(err) {
			return nil, err
		}

		lastErr = err
		if attempt == generateAttempts {
			break
		}

		logger.Warn(ctx, "report assembly failed, retrying",
			"attempt", attempt,
			"report_type", req.Type.String(),
			"error", err,
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	if lastErr != nil {
		return nil, apperror.NewUnavailable(lastErr)
	}

	data, err := s.serializer.Serialize(doc)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "report generated",
		"report_type", req.Type.String(),
		"year", req.Year,
		"month", req.Month,
		"bytes", len(data),
	)

	return &File{
		Name:        fmt.Sprintf("saft_%s.xml", req.Type),
		ContentType: "application/xml",
		Data:        data,
	}, nil
}

// validate checks the request shape without touching storage.
func validate(req Request) error {
	if !req.Type.valid() {
		return apperror.NewInvalidReportType(req.Type.String())
	}
	if req.Year < 2000 || req.Year > 2100 {
		return apperror.NewValidation("year out of range").WithDetail("field", "year")
	}

	switch req.Type {
	case ReportMonthly:
		if req.Month < 1 || req.Month > 12 {
			return apperror.NewMissingPeriod()
		}
	case ReportAnnual, ReportOnDemand:
		// Month is ignored for these types.
	}

	return nil
}
