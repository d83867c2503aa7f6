package kiosk

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"alafaq/internal/models"
	"alafaq/internal/presenter"
	"alafaq/internal/service"
)

// Kiosk drives the interactive booking flow on a terminal: it collects the
// form fields, hands them to the booking service and waits for the visitor
// to dismiss the confirmation modal.
type Kiosk struct {
	in      *bufio.Scanner
	out     io.Writer
	service *service.BookingService
	modal   *presenter.Modal
	doctors []models.Doctor
	logger  *zerolog.Logger
}

func New(in io.Reader, out io.Writer, svc *service.BookingService, modal *presenter.Modal, doctors []models.Doctor, logger *zerolog.Logger) *Kiosk {
	return &Kiosk{
		in:      bufio.NewScanner(in),
		out:     out,
		service: svc,
		modal:   modal,
		doctors: doctors,
		logger:  logger,
	}
}

// Run loops over the main menu until the visitor exits or ctx is cancelled.
func (k *Kiosk) Run(ctx context.Context) error {
	fmt.Fprintln(k.out, "مركز الآفاق الطبي - نظام الحجز")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fmt.Fprintln(k.out, "\n1) حجز تحليل")
		fmt.Fprintln(k.out, "2) حجز موعد مع طبيب")
		fmt.Fprintln(k.out, "3) خروج")

		choice, ok := k.prompt("اختر")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			k.submit(ctx, models.KindAnalysis)
		case "2":
			k.submit(ctx, models.KindDoctor)
		case "3", "خروج":
			fmt.Fprintln(k.out, "مع السلامة")
			return nil
		default:
			fmt.Fprintln(k.out, "اختيار غير معروف")
		}
	}
}

func (k *Kiosk) submit(ctx context.Context, kind models.Kind) {
	form, ok := k.collectForm(kind)
	if !ok {
		return
	}

	record, err := k.service.Submit(ctx, form, kind)
	if err != nil {
		// The presenter has already shown the failure alert.
		return
	}

	k.logger.Debug().Str("date", record.Date).Msg("kiosk submission confirmed")
	k.awaitModalDismiss()
}

func (k *Kiosk) collectForm(kind models.Kind) (models.BookingForm, bool) {
	var form models.BookingForm
	var ok bool

	if form.PatientName, ok = k.prompt("الاسم الكامل"); !ok {
		return form, false
	}
	if form.PatientPhone, ok = k.prompt("رقم الهاتف"); !ok {
		return form, false
	}

	today := time.Now()
	dateHint := fmt.Sprintf("التاريخ (%s - %s)",
		today.Format(time.DateOnly),
		today.AddDate(0, models.DefaultBookingWindowMonths, 0).Format(time.DateOnly))

	switch kind {
	case models.KindDoctor:
		k.printDoctors()
		if form.DoctorSelect, ok = k.prompt("اسم الطبيب"); !ok {
			return form, false
		}
		if form.BookingDate, ok = k.prompt(dateHint); !ok {
			return form, false
		}
		if form.BookingTime, ok = k.prompt("الوقت (HH:MM)"); !ok {
			return form, false
		}
		if form.Symptoms, ok = k.prompt("الأعراض (اختياري)"); !ok {
			return form, false
		}
	default:
		k.printAnalyses()
		if form.AnalysisType, ok = k.prompt("رمز التحليل"); !ok {
			return form, false
		}
		if form.PatientAge, ok = k.prompt("العمر"); !ok {
			return form, false
		}
		if form.BookingDate, ok = k.prompt(dateHint); !ok {
			return form, false
		}
		if form.BookingTime, ok = k.prompt("الوقت (HH:MM)"); !ok {
			return form, false
		}
		if form.Notes, ok = k.prompt("ملاحظات (اختياري)"); !ok {
			return form, false
		}
	}

	return form, true
}

func (k *Kiosk) printAnalyses() {
	fmt.Fprintln(k.out, "التحاليل المتاحة:")
	for _, a := range models.AnalysisCatalog {
		fmt.Fprintf(k.out, "  %s - %s\n", a.Code, a.Name)
	}
}

func (k *Kiosk) printDoctors() {
	if len(k.doctors) == 0 {
		return
	}
	fmt.Fprintln(k.out, "الأطباء المتاحون:")
	for _, d := range k.doctors {
		fmt.Fprintf(k.out, "  %s - %s\n", d.Name, d.Specialty)
	}
}

// awaitModalDismiss keeps the confirmation on screen until the visitor
// closes it. An empty line acts as the close button, "esc" as the Escape
// key and anything else as a click outside the dialog.
func (k *Kiosk) awaitModalDismiss() {
	if !k.modal.IsOpen() {
		return
	}

	input, ok := k.prompt("اضغط Enter للإغلاق")
	reason := presenter.DismissCloseButton
	switch {
	case !ok || input == "":
		// keep close button
	case strings.EqualFold(input, "esc"):
		reason = presenter.DismissEscapeKey
	default:
		reason = presenter.DismissOutsideClick
	}
	k.modal.Dismiss(reason)
}

func (k *Kiosk) prompt(label string) (string, bool) {
	fmt.Fprintf(k.out, "%s: ", label)
	if !k.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(k.in.Text()), true
}
