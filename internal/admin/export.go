package admin

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"alafaq/internal/models"
	"alafaq/internal/presenter"
)

var exportHeaders = []string{
	"التاريخ", "الوقت", "النوع", "الخدمة", "الاسم", "الهاتف", "العمر", "ملاحظات", "الحالة", "تاريخ الإنشاء",
}

// ExportToExcel writes mirrored bookings to a date-stamped xlsx workbook
// under dir and returns the file path.
func ExportToExcel(dir string, records []models.BookingRecord) (string, error) {
	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, fileName)
	if err := ExportToFile(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// ExportToFile writes mirrored bookings to the exact xlsx path given.
func ExportToFile(path string, records []models.BookingRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating export directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "الحجوزات"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, r := range records {
		row := i + 2
		values := []interface{}{
			r.Date,
			r.Time,
			KindLabel(r.Kind),
			presenter.ServiceDisplayName(r.Kind, r.Service),
			r.Name,
			r.Phone,
			r.Age,
			r.Notes,
			r.Status,
			r.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	for col := range exportHeaders {
		name, _ := excelize.ColumnNumberToName(col + 1)
		_ = f.SetColWidth(sheetName, name, name, 18)
	}

	_ = f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
