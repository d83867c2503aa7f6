package presenter

import (
	"alafaq/internal/models"
)

// Feedback wires the alert center and the success modal into the
// submission pipeline: failures become transient alerts, successes open
// the modal with the booking summary.
type Feedback struct {
	alerts *AlertCenter
	modal  *Modal
}

func NewFeedback(alerts *AlertCenter, modal *Modal) *Feedback {
	return &Feedback{
		alerts: alerts,
		modal:  modal,
	}
}

func (f *Feedback) ShowFailure(err error) {
	f.alerts.Error(MessageFor(err))
}

func (f *Feedback) ShowSuccess(record models.BookingRecord) {
	f.modal.Show(record)
}

// Modal exposes the dialog so the UI layer can wire its dismiss actions.
func (f *Feedback) Modal() *Modal {
	return f.modal
}
