package presenter

import (
	"sync"

	"github.com/rs/zerolog"

	"alafaq/internal/domain"
	"alafaq/internal/models"
)

// DismissReason records which of the three close affordances was used.
type DismissReason string

const (
	DismissCloseButton  DismissReason = "close_button"
	DismissOutsideClick DismissReason = "outside_click"
	DismissEscapeKey    DismissReason = "escape_key"
)

type modalState int

const (
	modalClosed modalState = iota
	modalOpen
)

// Modal is the single success dialog. Showing it while already open
// replaces the content in place; dismissing while closed is a no-op.
// Background scroll stays locked for as long as the modal is open.
type Modal struct {
	mu      sync.Mutex
	state   modalState
	surface domain.Surface
	logger  *zerolog.Logger
}

func NewModal(surface domain.Surface, logger *zerolog.Logger) *Modal {
	return &Modal{
		surface: surface,
		logger:  logger,
	}
}

// Show populates the modal with the booking summary and opens it.
func (m *Modal) Show(record models.BookingRecord) {
	content := buildModalContent(record)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.surface.ShowModal(content)
	if m.state == modalClosed {
		m.surface.SetScrollLock(true)
		m.state = modalOpen
	}
}

// Dismiss closes the modal and releases the scroll lock.
func (m *Modal) Dismiss(reason DismissReason) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == modalClosed {
		return
	}

	m.surface.HideModal()
	m.surface.SetScrollLock(false)
	m.state = modalClosed
	m.logger.Debug().Str("reason", string(reason)).Msg("success modal dismissed")
}

// IsOpen reports the current modal state.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == modalOpen
}

func buildModalContent(record models.BookingRecord) domain.ModalContent {
	serviceLabel := "نوع التحليل"
	if record.Kind == models.KindDoctor {
		serviceLabel = "الطبيب"
	}

	return domain.ModalContent{
		Title: "تم تأكيد الحجز بنجاح",
		Fields: []domain.ModalField{
			{Label: "الاسم", Value: record.Name},
			{Label: "رقم الهاتف", Value: record.Phone},
			{Label: serviceLabel, Value: ServiceDisplayName(record.Kind, record.Service)},
			{Label: "التاريخ", Value: FormatDate(record.Date)},
			{Label: "الوقت", Value: FormatTime(record.Time)},
		},
	}
}
