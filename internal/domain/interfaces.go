package domain

import (
	"context"
	"time"

	"alafaq/internal/models"
)

// KeyValueStore is the client-local storage the booking journal lives in.
// Get reports whether the key existed; a missing key is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// BookingStore is the append-only journal sink. Records are never updated
// or removed once appended.
type BookingStore interface {
	Append(ctx context.Context, record models.BookingRecord) error
	List(ctx context.Context) ([]models.BookingRecord, error)
}

// EventPublisher publishes domain events to in-process subscribers.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// Clock supplies the reference "now" so date validation stays deterministic
// in tests.
type Clock func() time.Time

// Presenter surfaces submission feedback to the patient.
type Presenter interface {
	ShowFailure(err error)
	ShowSuccess(record models.BookingRecord)
}

// AlertLevel distinguishes transient notification styles.
type AlertLevel string

const (
	AlertError   AlertLevel = "error"
	AlertSuccess AlertLevel = "success"
)

// Alert is one transient notification.
type Alert struct {
	ID      string
	Level   AlertLevel
	Message string
}

// ModalField is one labelled line of the success summary.
type ModalField struct {
	Label string
	Value string
}

// ModalContent is the rendered success summary.
type ModalContent struct {
	Title  string
	Fields []ModalField
}

// Surface is the UI mount the presenter draws on. Implementations own the
// actual alert and modal widgets; the presenter owns their lifecycle.
type Surface interface {
	ShowAlert(alert Alert)
	HideAlert(id string)
	ShowModal(content ModalContent)
	HideModal()
	SetScrollLock(locked bool)
}
