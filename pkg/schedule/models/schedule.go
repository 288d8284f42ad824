package models

// GroupKey identifies one timetable page. For the speciality/level view
// both fields are set; rows carrying neither fall into the zero-value
// default group, which preserves single-table behavior.
type GroupKey struct {
	Speciality string
	Level      string
}

// DayMatrix maps day -> slot (1-based) -> category -> cell text.
// A well-formed matrix is fully dense: every one of the 7x4x4
// combinations exists, defaulting to the empty string.
type DayMatrix map[Day]map[int]map[Category]string

// NewDayMatrix returns a fully dense matrix with every cell empty.
func NewDayMatrix() DayMatrix {
	m := make(DayMatrix, len(Days))
	for _, d := range Days {
		slots := make(map[int]map[Category]string, SlotCount)
		for s := 1; s <= SlotCount; s++ {
			cats := make(map[Category]string, CategoryCount)
			for _, c := range Categories {
				cats[c] = ""
			}
			slots[s] = cats
		}
		m[d] = slots
	}
	return m
}

// Set stores the cell text for one (day, slot, category) intersection.
func (m DayMatrix) Set(d Day, slot int, c Category, text string) {
	m[d][slot][c] = text
}

// Get returns the cell text for one (day, slot, category) intersection.
func (m DayMatrix) Get(d Day, slot int, c Category) string {
	return m[d][slot][c]
}

// ScheduleGroup pairs a group key with its matrix. Groups are built once
// per conversion run and never mutated afterwards.
type ScheduleGroup struct {
	Key    GroupKey
	Matrix DayMatrix
}
