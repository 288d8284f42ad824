package reader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

const csvHeader = "day,slot,code,activityType,location,course_name,main_tutor,helping_stuff,speciality,level"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, csvHeader+"\n"+
		"الأحد,1,ELE101,lecture,قاعة 1,دوائر كهربية,د. أحمد,م. سارة,pow,300\n"+
		"الاثنين,2,ELE102,lecture,قاعة 2,مجالات,د. منى,م. كريم,comm,100\n")

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Day != models.Sunday || rows[0].Slot != 1 {
		t.Errorf("Row 0 = (%s, %d), want (الأحد, 1)", rows[0].Day, rows[0].Slot)
	}
	if rows[1].Speciality != "comm" || rows[1].Level != "100" {
		t.Errorf("Row 1 group = (%s, %s)", rows[1].Speciality, rows[1].Level)
	}
}

func TestReadCSVInvalidRowFailsFast(t *testing.T) {
	path := writeCSV(t, csvHeader+"\n"+
		"الأحد,1,ELE101,lecture,قاعة 1,دوائر كهربية,د. أحمد,,pow,300\n"+
		"الاثنين,9,ELE102,lecture,قاعة 2,مجالات,د. منى,,comm,100\n")

	_, err := ReadCSV(path)
	if !errors.Is(err, models.ErrInvalidSlot) {
		t.Fatalf("Expected ErrInvalidSlot, got %v", err)
	}
	// The message names the file and the offending row.
	if got := err.Error(); !containsAll(got, path, "row 3", "slot") {
		t.Errorf("Error message %q should name file, row and column", got)
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestReadDispatch(t *testing.T) {
	if _, err := Read("schedule.pdf"); err == nil {
		t.Error("Expected an error for unsupported extensions")
	}
}

func scheduleWorkbook(t *testing.T, sheetName string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		if _, err := f.NewSheet(sheetName); err != nil {
			t.Fatalf("Failed to create sheet: %v", err)
		}
	}
	header := []interface{}{"day", "slot", "code", "activityType", "location", "course_name", "main_tutor", "helping_stuff", "speciality", "level"}
	data := []interface{}{"الثلاثاء", 3, "ELE201", "lab", "معمل 1", "إلكترونيات", "د. هالة", "م. عمر", "comp", "200"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		t.Fatalf("Failed to set header row: %v", err)
	}
	if err := f.SetSheetRow(sheetName, "A2", &data); err != nil {
		t.Fatalf("Failed to set data row: %v", err)
	}

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test workbook: %v", err)
	}
	return path
}

func TestReadExcel(t *testing.T) {
	path := scheduleWorkbook(t, ScheduleSheet)

	rows, err := ReadExcel(path)
	if err != nil {
		t.Fatalf("ReadExcel failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Day != models.Tuesday || rows[0].Slot != 3 {
		t.Errorf("Row = (%s, %d), want (الثلاثاء, 3)", rows[0].Day, rows[0].Slot)
	}
	if rows[0].CourseName != "إلكترونيات" {
		t.Errorf("Course name = %q", rows[0].CourseName)
	}
}

func TestReadExcelMissingSheet(t *testing.T) {
	path := scheduleWorkbook(t, "Sheet1")

	_, err := ReadExcel(path)
	if !errors.Is(err, ErrUnsupportedSheet) {
		t.Fatalf("Expected ErrUnsupportedSheet, got %v", err)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
