// Package config holds the institutional text printed on every page.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Signer is one signature column in the page footer.
type Signer struct {
	Title string
	Name  string
}

// Config carries the institution identity and decoration text. It is
// passed explicitly into the document assembler so deployments can
// override it without touching code.
type Config struct {
	UniversityName string
	FacultyName    string
	Department     string
	AcademicYear   string
	Semester       string
	// ScheduleTitle is the fixed center line of the page header.
	ScheduleTitle string
	// SystemName is the fixed string printed next to the generation
	// timestamp in the page footer.
	SystemName string
	Signers    []Signer
}

// Default returns the built-in institution identity.
func Default() Config {
	return Config{
		UniversityName: "جامعة الفيوم",
		FacultyName:    "كلية الهندسة",
		Department:     "قسم الهندسة الكهربية",
		AcademicYear:   "العام الجامعي 2025 - 2026",
		Semester:       "الفصل الدراسي الأول",
		ScheduleTitle:  "شئون التعليم والطلاب الجداول الدراسية",
		SystemName:     "نظام إدارة الجداول الدراسية",
		Signers: []Signer{
			{Title: "عميد الكلية", Name: "ا.د. رانيا احمد عبدالعظيم"},
			{Title: "وكيل الكلية لشئون التعليم والطلاب", Name: "ا.د. احمد سرج فريد"},
			{Title: "رئيس قسم الهندسة الكهربية", Name: "ا.د. عمرو رفعت"},
		},
	}
}

// Load reads configuration overrides from the environment, after
// loading an optional .env file. Missing variables keep the defaults;
// godotenv never overrides variables already set in the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	setIfPresent(&cfg.UniversityName, "UNIVERSITY_NAME")
	setIfPresent(&cfg.FacultyName, "FACULTY_NAME")
	setIfPresent(&cfg.Department, "DEPARTMENT")
	setIfPresent(&cfg.AcademicYear, "ACADEMIC_YEAR")
	setIfPresent(&cfg.Semester, "SEMESTER")
	setIfPresent(&cfg.ScheduleTitle, "SCHEDULE_TITLE")
	setIfPresent(&cfg.SystemName, "SYSTEM_NAME")
	return cfg, nil
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
