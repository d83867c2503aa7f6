package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"alafaq/internal/database"
	"alafaq/internal/events"
	"alafaq/internal/models"
)

// MirrorWorker copies confirmed bookings from the event stream into the
// sqlite mirror the admin tools read. Inserts are throttled and retried
// with backoff; a booking that still fails after the last retry is logged
// and dropped (the journal remains the source of truth).
type MirrorWorker struct {
	db          *database.DB
	retryPolicy RetryPolicy
	limiter     *rate.Limiter
	queue       chan models.BookingRecord
	logger      *zerolog.Logger
}

// NewMirrorWorker builds a worker with sane defaults.
func NewMirrorWorker(db *database.DB, retry RetryPolicy, logger *zerolog.Logger) *MirrorWorker {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 5
	}
	if retry.InitialDelay == 0 {
		retry.InitialDelay = time.Second
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = 30 * time.Second
	}
	if retry.BackoffFactor == 0 {
		retry.BackoffFactor = 2
	}

	return &MirrorWorker{
		db:          db,
		retryPolicy: retry,
		limiter:     rate.NewLimiter(rate.Limit(20), 5),
		queue:       make(chan models.BookingRecord, models.MirrorQueueSize),
		logger:      logger,
	}
}

// Enqueue schedules a record for mirroring. When the queue is full the
// record is dropped with a log line rather than blocking the submit path.
func (w *MirrorWorker) Enqueue(record models.BookingRecord) {
	select {
	case w.queue <- record:
	default:
		w.logger.Error().Str("date", record.Date).Msg("mirror queue full, booking dropped")
	}
}

// Subscribe wires the worker to created-booking events on the bus.
func (w *MirrorWorker) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventBookingCreated, func(ev *events.Event) error {
		var payload events.BookingCreatedPayload
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			w.logger.Error().Err(err).Str("event", ev.Type).Msg("mirror: decode payload")
			return nil
		}
		w.Enqueue(payload.Record)
		return nil
	})
}

// Start runs the main loop; it stops when ctx is done.
func (w *MirrorWorker) Start(ctx context.Context) {
	w.logger.Info().Msg("mirror worker started")
	defer w.logger.Info().Msg("mirror worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case record := <-w.queue:
			w.process(ctx, record)
		}
	}
}

func (w *MirrorWorker) process(ctx context.Context, record models.BookingRecord) {
	for attempt := 1; attempt <= w.retryPolicy.MaxRetries; attempt++ {
		if err := w.limiter.Wait(ctx); err != nil {
			return
		}

		err := w.db.InsertBooking(ctx, record)
		if err == nil {
			return
		}

		w.logger.Warn().Err(err).Int("attempt", attempt).Msg("mirror insert failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.retryPolicy.NextDelay(attempt)):
		}
	}

	w.logger.Error().
		Str("name", record.Name).
		Str("date", record.Date).
		Msg("mirror insert dropped after retries")
}
