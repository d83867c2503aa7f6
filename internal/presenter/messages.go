package presenter

import (
	"errors"

	"alafaq/internal/validation"
)

// User-facing messages stay in the clinic's locale, matching the public
// site word for word.
const (
	msgMissingRequired = "يرجى ملء جميع الحقول المطلوبة"
	msgMissingService  = "يرجى اختيار الطبيب"
	msgInvalidPhone    = "يرجى إدخال رقم هاتف صحيح"
	msgInvalidAge      = "يرجى إدخال عمر صحيح"
	msgPastDate        = "يرجى اختيار تاريخ مستقبلي"
	msgDateTooFar      = "يرجى اختيار تاريخ خلال ثلاثة أشهر من اليوم"
	msgGenericFailure  = "حدث خطأ أثناء معالجة طلبك، يرجى المحاولة مرة أخرى"
)

// MessageFor maps a submission error to the alert text shown to the
// patient. Unknown errors (storage and the like) get the generic message.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, validation.ErrMissingRequiredField):
		return msgMissingRequired
	case errors.Is(err, validation.ErrMissingService):
		return msgMissingService
	case errors.Is(err, validation.ErrInvalidPhone):
		return msgInvalidPhone
	case errors.Is(err, validation.ErrInvalidAge):
		return msgInvalidAge
	case errors.Is(err, validation.ErrPastDate):
		return msgPastDate
	case errors.Is(err, validation.ErrDateTooFar):
		return msgDateTooFar
	default:
		return msgGenericFailure
	}
}
