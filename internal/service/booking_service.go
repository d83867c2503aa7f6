package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"alafaq/internal/domain"
	"alafaq/internal/events"
	"alafaq/internal/metrics"
	"alafaq/internal/models"
	"alafaq/internal/validation"
)

// BookingService runs one form submission end to end: build the record,
// validate it, persist it to the journal, publish the event and present
// feedback. On any failure nothing is persisted.
type BookingService struct {
	journal      domain.BookingStore
	bus          domain.EventPublisher
	presenter    domain.Presenter
	clock        domain.Clock
	windowMonths int
	logger       *zerolog.Logger
}

func NewBookingService(
	journal domain.BookingStore,
	bus domain.EventPublisher,
	presenter domain.Presenter,
	clock domain.Clock,
	windowMonths int,
	logger *zerolog.Logger,
) *BookingService {
	if clock == nil {
		clock = time.Now
	}
	if windowMonths <= 0 {
		windowMonths = models.DefaultBookingWindowMonths
	}
	return &BookingService{
		journal:      journal,
		bus:          bus,
		presenter:    presenter,
		clock:        clock,
		windowMonths: windowMonths,
		logger:       logger,
	}
}

// Submit processes a booking form of the given kind. The returned record
// is nil when the submission was rejected or persistence failed.
func (s *BookingService) Submit(ctx context.Context, form models.BookingForm, kind models.Kind) (*models.BookingRecord, error) {
	now := s.clock()
	record := models.NewBookingRecord(form, kind, now)
	submissionID := uuid.NewString()

	if err := validation.Validate(record, now); err != nil {
		return nil, s.reject(submissionID, record, err)
	}

	if err := s.checkBookingWindow(record, now); err != nil {
		return nil, s.reject(submissionID, record, err)
	}

	if err := s.journal.Append(ctx, record); err != nil {
		s.logger.Error().Err(err).
			Str("submission_id", submissionID).
			Str("kind", string(kind)).
			Msg("journal append failed")
		s.presenter.ShowFailure(err)
		return nil, err
	}

	s.publishCreated(submissionID, record)
	metrics.IncBookingCreated(string(kind))
	s.presenter.ShowSuccess(record)

	s.logger.Info().
		Str("submission_id", submissionID).
		Str("kind", string(kind)).
		Str("date", record.Date).
		Str("service", record.Service).
		Msg("booking confirmed")

	return &record, nil
}

// checkBookingWindow enforces the upper bound the date widget also applies
// (today plus the configured number of months). The pipeline owns the
// lower bound.
func (s *BookingService) checkBookingWindow(record models.BookingRecord, today time.Time) error {
	date, err := record.DateValue()
	if err != nil {
		// The pipeline already guaranteed the format.
		return nil
	}
	if date.After(today.AddDate(0, s.windowMonths, 0)) {
		return validation.ErrDateTooFar
	}
	return nil
}

func (s *BookingService) reject(submissionID string, record models.BookingRecord, err error) error {
	reason := validation.Reason(err)
	metrics.IncValidationFailure(reason)
	s.logger.Warn().
		Str("submission_id", submissionID).
		Str("kind", string(record.Kind)).
		Str("reason", reason).
		Msg("booking rejected")
	s.presenter.ShowFailure(err)
	return err
}

func (s *BookingService) publishCreated(submissionID string, record models.BookingRecord) {
	if s.bus == nil {
		return
	}

	payload := events.BookingCreatedPayload{
		SubmissionID: submissionID,
		Record:       record,
	}

	if err := s.bus.PublishJSON(events.EventBookingCreated, payload); err != nil {
		s.logger.Error().Err(err).Str("submission_id", submissionID).Msg("publish event error")
	}
}
