// Package pivot folds validated rows into per-group day/slot/category matrices.
package pivot

import (
	"errors"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

// ErrEmptyInput indicates the row sequence had no records to convert.
var ErrEmptyInput = errors.New("no schedule rows to convert")

// KeyFunc derives the grouping key for a row.
type KeyFunc func(models.Row) models.GroupKey

// ByLevel groups rows by (speciality, level). Rows carrying neither
// fall into the default group.
func ByLevel(r models.Row) models.GroupKey {
	return models.GroupKey{Speciality: r.Speciality, Level: r.Level}
}

// ByLocation groups rows by room, for the occupancy view. The location
// is carried on the key's Speciality field; Level stays empty.
func ByLocation(r models.Row) models.GroupKey {
	return models.GroupKey{Speciality: r.Location}
}

// SingleGroup collapses every row into the default group.
func SingleGroup(models.Row) models.GroupKey {
	return models.GroupKey{}
}

// Build partitions rows by key and folds each partition into a dense
// DayMatrix. Group order is first-seen order, which determines page
// order in the final document. One row supplies all four category cells
// of its (day, slot); a later row for the same (day, slot) overwrites
// an earlier one (last write wins).
func Build(rows []models.Row, key KeyFunc) ([]models.ScheduleGroup, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	var order []models.GroupKey
	matrices := make(map[models.GroupKey]models.DayMatrix)

	for _, r := range rows {
		k := key(r)
		m, ok := matrices[k]
		if !ok {
			m = models.NewDayMatrix()
			matrices[k] = m
			order = append(order, k)
		}
		m.Set(r.Day, r.Slot, models.CourseName, r.CourseName)
		m.Set(r.Day, r.Slot, models.Location, r.Location)
		m.Set(r.Day, r.Slot, models.Instructor, r.Instructor)
		m.Set(r.Day, r.Slot, models.Assistant, r.Assistant)
	}

	groups := make([]models.ScheduleGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, models.ScheduleGroup{Key: k, Matrix: matrices[k]})
	}
	return groups, nil
}
