package pivot

import (
	"errors"
	"testing"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

func row(day models.Day, slot int, course, speciality, level string) models.Row {
	return models.Row{
		Day:        day,
		Slot:       slot,
		Code:       "C1",
		Location:   "room " + course,
		CourseName: course,
		Instructor: "tutor " + course,
		Assistant:  "staff " + course,
		Speciality: speciality,
		Level:      level,
	}
}

func TestBuildEmptyInput(t *testing.T) {
	if _, err := Build(nil, ByLevel); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestBuildGroupOrder(t *testing.T) {
	rows := []models.Row{
		row(models.Sunday, 1, "A", "comm", "300"),
		row(models.Monday, 2, "B", "pow", "100"),
		row(models.Tuesday, 3, "C", "comm", "300"),
		row(models.Sunday, 4, "D", "comp", "400"),
	}

	groups, err := Build(rows, ByLevel)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []models.GroupKey{
		{Speciality: "comm", Level: "300"},
		{Speciality: "pow", Level: "100"},
		{Speciality: "comp", Level: "400"},
	}
	if len(groups) != len(want) {
		t.Fatalf("Expected %d groups, got %d", len(want), len(groups))
	}
	for i, g := range groups {
		if g.Key != want[i] {
			t.Errorf("Group %d key = %v, want %v (first-seen order)", i, g.Key, want[i])
		}
	}
}

func TestBuildFillsAllCategories(t *testing.T) {
	rows := []models.Row{row(models.Sunday, 1, "A", "", "")}

	groups, err := Build(rows, ByLevel)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(groups) != 1 || groups[0].Key != (models.GroupKey{}) {
		t.Fatalf("Expected a single default group, got %v", groups)
	}

	m := groups[0].Matrix
	if got := m.Get(models.Sunday, 1, models.CourseName); got != "A" {
		t.Errorf("course name = %q, want A", got)
	}
	if got := m.Get(models.Sunday, 1, models.Location); got != "room A" {
		t.Errorf("location = %q, want room A", got)
	}
	if got := m.Get(models.Sunday, 1, models.Instructor); got != "tutor A" {
		t.Errorf("instructor = %q, want tutor A", got)
	}
	if got := m.Get(models.Sunday, 1, models.Assistant); got != "staff A" {
		t.Errorf("assistant = %q, want staff A", got)
	}

	// Untouched intersections stay dense and empty.
	if got := m.Get(models.Thursday, 4, models.CourseName); got != "" {
		t.Errorf("Expected empty cell, got %q", got)
	}
}

func TestBuildLastWriteWins(t *testing.T) {
	rows := []models.Row{
		row(models.Monday, 2, "first", "pow", "200"),
		row(models.Monday, 2, "second", "pow", "200"),
	}

	groups, err := Build(rows, ByLevel)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	m := groups[0].Matrix
	if got := m.Get(models.Monday, 2, models.CourseName); got != "second" {
		t.Errorf("Duplicate (day, slot) should keep the later row, got %q", got)
	}
	if got := m.Get(models.Monday, 2, models.Instructor); got != "tutor second" {
		t.Errorf("All four categories must come from the later row, got %q", got)
	}
}

func TestBuildByLocation(t *testing.T) {
	rows := []models.Row{
		row(models.Sunday, 1, "A", "comm", "300"),
		row(models.Sunday, 2, "B", "pow", "100"),
	}

	groups, err := Build(rows, ByLocation)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("Expected one group per room, got %d", len(groups))
	}
	if groups[0].Key.Speciality != "room A" || groups[1].Key.Speciality != "room B" {
		t.Errorf("Unexpected location keys: %v, %v", groups[0].Key, groups[1].Key)
	}
}

func TestBuildSingleGroup(t *testing.T) {
	rows := []models.Row{
		row(models.Sunday, 1, "A", "comm", "300"),
		row(models.Monday, 2, "B", "pow", "100"),
	}

	groups, err := Build(rows, SingleGroup)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("Expected one collapsed group, got %d", len(groups))
	}
	m := groups[0].Matrix
	if m.Get(models.Sunday, 1, models.CourseName) != "A" || m.Get(models.Monday, 2, models.CourseName) != "B" {
		t.Error("Collapsed group must hold every row's cells")
	}
}
