package models

import (
	"errors"
	"testing"
)

func validRaw() map[string]string {
	return map[string]string{
		"day":           "الأحد",
		"slot":          "1",
		"code":          "ELE101",
		"activityType":  "lecture",
		"location":      "قاعة 1",
		"course_name":   "دوائر كهربية",
		"main_tutor":    "د. أحمد",
		"helping_stuff": "م. سارة",
		"speciality":    "pow",
		"level":         "300",
	}
}

func TestValidate(t *testing.T) {
	row, err := Validate(validRaw())
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if row.Day != Sunday {
		t.Errorf("Expected day %q, got %q", Sunday, row.Day)
	}
	if row.Slot != 1 {
		t.Errorf("Expected slot 1, got %d", row.Slot)
	}
	if row.Instructor != "د. أحمد" {
		t.Errorf("Expected instructor mapped from main_tutor, got %q", row.Instructor)
	}
	if row.Assistant != "م. سارة" {
		t.Errorf("Expected assistant mapped from helping_stuff, got %q", row.Assistant)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
		want   error
	}{
		{"missing day", func(r map[string]string) { delete(r, "day") }, ErrMissingField},
		{"empty course name", func(r map[string]string) { r["course_name"] = "  " }, ErrMissingField},
		{"missing instructor", func(r map[string]string) { delete(r, "main_tutor") }, ErrMissingField},
		{"unknown day", func(r map[string]string) { r["day"] = "Sunday" }, ErrInvalidDay},
		{"slot not a number", func(r map[string]string) { r["slot"] = "first" }, ErrInvalidSlot},
		{"slot zero", func(r map[string]string) { r["slot"] = "0" }, ErrInvalidSlot},
		{"slot out of range", func(r map[string]string) { r["slot"] = "5" }, ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(raw)
			_, err := Validate(raw)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate error = %v, want %v", err, tt.want)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Errorf("Expected *FieldError, got %T", err)
			}
		})
	}
}

func TestValidateOptionalDefaults(t *testing.T) {
	raw := validRaw()
	delete(raw, "helping_stuff")
	delete(raw, "speciality")
	delete(raw, "level")

	row, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if row.Assistant != "" || row.Speciality != "" || row.Level != "" {
		t.Errorf("Optional fields should default to empty, got %q/%q/%q",
			row.Assistant, row.Speciality, row.Level)
	}
}

func TestValidateSpecialityFallback(t *testing.T) {
	raw := validRaw()
	delete(raw, "speciality")
	raw["specialy_level"] = "comm-3"

	row, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if row.Speciality != "comm-3" {
		t.Errorf("Expected specialy_level fallback, got %q", row.Speciality)
	}
}

func TestValidatePassthrough(t *testing.T) {
	raw := validRaw()
	raw["teaching_hours"] = "3"
	raw["day_order"] = "1"
	raw["unknown_column"] = "dropped"

	row, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if row.Extra["teaching_hours"] != "3" || row.Extra["day_order"] != "1" {
		t.Errorf("Expected recognized metadata passed through, got %v", row.Extra)
	}
	if _, ok := row.Extra["unknown_column"]; ok {
		t.Error("Unrecognized columns must not be carried on Extra")
	}
}

func TestNewDayMatrixDense(t *testing.T) {
	m := NewDayMatrix()
	for _, d := range Days {
		for s := 1; s <= SlotCount; s++ {
			for _, c := range Categories {
				v, ok := m[d][s][c]
				if !ok {
					t.Fatalf("Missing entry for (%s, %d, %d)", d, s, c)
				}
				if v != "" {
					t.Fatalf("Expected empty default for (%s, %d, %d), got %q", d, s, c, v)
				}
			}
		}
	}
}
