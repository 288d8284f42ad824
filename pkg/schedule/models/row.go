// Package models defines the data structures flowing through a conversion run.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Day is an Arabic weekday name.
type Day string

const (
	Sunday    Day = "الأحد"
	Monday    Day = "الاثنين"
	Tuesday   Day = "الثلاثاء"
	Wednesday Day = "الأربعاء"
	Thursday  Day = "الخميس"
	Friday    Day = "الجمعة"
	Saturday  Day = "السبت"
)

// Days lists all weekdays in canonical order (Sunday first). The matrix
// is dense over all seven; the rendered timetable covers WorkingDays only.
var Days = [7]Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WorkingDays are the days that appear in the rendered timetable.
var WorkingDays = [5]Day{Sunday, Monday, Tuesday, Wednesday, Thursday}

var dayByName = map[string]Day{
	string(Sunday):    Sunday,
	string(Monday):    Monday,
	string(Tuesday):   Tuesday,
	string(Wednesday): Wednesday,
	string(Thursday):  Thursday,
	string(Friday):    Friday,
	string(Saturday):  Saturday,
}

// ParseDay maps an Arabic weekday string to a Day.
func ParseDay(s string) (Day, bool) {
	d, ok := dayByName[strings.TrimSpace(s)]
	return d, ok
}

// SlotCount is the number of lecture periods per day.
const SlotCount = 4

// SlotLabels are the display strings for the four lecture periods,
// indexed by slot-1.
var SlotLabels = [SlotCount]string{
	"المحاضرة الأولى 8.50-10.30",
	"المحاضرة الثانية 10.40 - 12.10",
	"المحاضرة الثالثة 12.20 - 1.50",
	"المحاضرة الرابعة 2.00 - 3.30",
}

// Category is one of the four detail kinds shown per (day, slot) cell.
type Category int

const (
	CourseName Category = iota
	Location
	Instructor
	Assistant

	// CategoryCount is the number of detail categories.
	CategoryCount = 4
)

// Categories lists the detail categories in display order.
var Categories = [CategoryCount]Category{CourseName, Location, Instructor, Assistant}

var categoryLabels = [CategoryCount]string{
	"اسم المادة",
	"المكان",
	"استاذ المادة",
	"الهيئة المعاونة",
}

// Label returns the Arabic display label for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Validation errors for a single input record.
var (
	ErrMissingField = errors.New("required field is missing or empty")
	ErrInvalidDay   = errors.New("day is not a recognized weekday")
	ErrInvalidSlot  = errors.New("slot must be an integer between 1 and 4")
)

// FieldError reports which input column violated which validation rule.
type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("column %q (value %q): %v", e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Row is one validated input record.
type Row struct {
	Day          Day
	Slot         int
	Code         string
	ActivityType string
	Location     string
	CourseName   string
	Instructor   string
	Assistant    string
	Speciality   string
	Level        string
	// Extra holds recognized-but-unused columns, passed through untouched.
	Extra map[string]string
}

// requiredColumns must be present and non-empty on every record.
var requiredColumns = []string{
	"day", "slot", "code", "activityType", "location", "course_name", "main_tutor",
}

// passthroughColumns are recognized metadata columns that the pivot
// logic never reads. They are the fixed set carried over on Row.Extra.
var passthroughColumns = []string{
	"day_slot", "time", "day_order", "is_valid", "active_tutor",
	"confirmed_by_tutor", "teaching_hours", "teachin_hourse_printalble", "sp_code",
}

// Validate normalizes one raw record into a Row. It has no side effects;
// optional fields default to the empty string.
func Validate(raw map[string]string) (Row, error) {
	for _, col := range requiredColumns {
		if strings.TrimSpace(raw[col]) == "" {
			return Row{}, &FieldError{Column: col, Err: ErrMissingField}
		}
	}

	dayStr := strings.TrimSpace(raw["day"])
	day, ok := ParseDay(dayStr)
	if !ok {
		return Row{}, &FieldError{Column: "day", Value: dayStr, Err: ErrInvalidDay}
	}

	slotStr := strings.TrimSpace(raw["slot"])
	slot, err := strconv.Atoi(slotStr)
	if err != nil || slot < 1 || slot > SlotCount {
		return Row{}, &FieldError{Column: "slot", Value: slotStr, Err: ErrInvalidSlot}
	}

	speciality := strings.TrimSpace(raw["speciality"])
	if speciality == "" {
		speciality = strings.TrimSpace(raw["specialy_level"])
	}

	row := Row{
		Day:          day,
		Slot:         slot,
		Code:         strings.TrimSpace(raw["code"]),
		ActivityType: strings.TrimSpace(raw["activityType"]),
		Location:     strings.TrimSpace(raw["location"]),
		CourseName:   strings.TrimSpace(raw["course_name"]),
		Instructor:   strings.TrimSpace(raw["main_tutor"]),
		Assistant:    strings.TrimSpace(raw["helping_stuff"]),
		Speciality:   speciality,
		Level:        strings.TrimSpace(raw["level"]),
	}

	for _, col := range passthroughColumns {
		if v, ok := raw[col]; ok && v != "" {
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[col] = v
		}
	}

	return row, nil
}
