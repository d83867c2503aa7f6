package admin

import (
	"fmt"
	"io"
	"text/tabwriter"

	"alafaq/internal/models"
	"alafaq/internal/presenter"
)

// KindLabel renders a booking kind for the admin view.
func KindLabel(kind models.Kind) string {
	if kind == models.KindDoctor {
		return "طبيب"
	}
	return "تحليل"
}

// RenderList writes mirrored bookings as an aligned table.
func RenderList(out io.Writer, records []models.BookingRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "لا توجد حجوزات")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tالتاريخ\tالوقت\tالنوع\tالخدمة\tالاسم\tالهاتف\tالحالة")
	for i, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			r.Date,
			r.Time,
			KindLabel(r.Kind),
			presenter.ServiceDisplayName(r.Kind, r.Service),
			r.Name,
			r.Phone,
			r.Status,
		)
	}
	return w.Flush()
}
