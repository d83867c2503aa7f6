package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"alafaq/internal/domain"
	"alafaq/internal/models"
)

// JournalKey is the fixed key the ordered booking sequence is stored under.
const JournalKey = "medicalBookings"

// BookingJournal is the storage sink: an append-only, order-preserving
// sequence of booking records under a single key. Appends read the whole
// sequence, add one record and write it back; with a single kiosk writer
// the last-writer-wins window is acceptable.
type BookingJournal struct {
	store  domain.KeyValueStore
	key    string
	logger *zerolog.Logger
}

func NewBookingJournal(store domain.KeyValueStore, logger *zerolog.Logger) *BookingJournal {
	return &BookingJournal{
		store:  store,
		key:    JournalKey,
		logger: logger,
	}
}

// List returns the persisted sequence in insertion order. A missing key
// reads as an empty journal; a corrupted payload is an error.
func (j *BookingJournal) List(ctx context.Context) ([]models.BookingRecord, error) {
	raw, ok, err := j.store.Get(ctx, j.key)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var records []models.BookingRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode journal: %w", err)
	}
	return records, nil
}

// Append adds one validated record to the end of the sequence.
func (j *BookingJournal) Append(ctx context.Context, record models.BookingRecord) error {
	records, err := j.List(ctx)
	if err != nil {
		return err
	}

	records = append(records, record)
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	if err := j.store.Set(ctx, j.key, string(data)); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}

	j.logger.Debug().Int("journal_size", len(records)).Msg("booking appended")
	return nil
}
