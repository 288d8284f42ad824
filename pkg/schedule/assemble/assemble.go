// Package assemble sequences rendered tables into a multi-page document plan.
package assemble

import (
	"fmt"
	"time"

	"github.com/abdo1819/schudle-managment/pkg/schedule/config"
	"github.com/abdo1819/schudle-managment/pkg/schedule/layout"
	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

// timestampFormat is the footer generation-time format.
const timestampFormat = "2006-01-02 15:04:05"

// Arabic display names for academic levels.
var levelNames = map[string]string{
	"100": "الأول",
	"200": "الثاني",
	"300": "الثالث",
	"400": "الرابع",
}

// Arabic display names for specialities.
var specialityNames = map[string]string{
	"pow":  "القوي والآلات الكهربية",
	"comm": "الاتصالات",
	"comp": "الحاسبات",
}

// Level-dependent speciality names. The communications division shares
// its first two levels with computers, so those pages carry a combined name.
var levelSpecialityNames = map[string]map[string]string{
	"comm": {
		"100": "الاتصالات والحاسبات",
		"200": "الاتصالات والحاسبات",
	},
}

// Levels 100 and 200 are program levels, not faculty years, and use a
// different prefix on the header group line.
var programLevels = map[string]bool{"100": true, "200": true}

func displayLevel(level string) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return level
}

func displaySpeciality(speciality, level string) string {
	if byLevel, ok := levelSpecialityNames[speciality]; ok {
		if name, ok := byLevel[level]; ok {
			return name
		}
	}
	if name, ok := specialityNames[speciality]; ok {
		return name
	}
	return speciality
}

func levelPrefix(level string) string {
	if programLevels[level] {
		return "المستوي"
	}
	return "الفرقة"
}

// Assemble builds the full document plan: one title page of static
// institutional text, then one decorated table page per group, in the
// order the pivot produced them. The clock is injected so repeated runs
// over the same input differ only in the footer timestamp.
func Assemble(groups []models.ScheduleGroup, cfg config.Config, now func() time.Time) (models.DocumentPlan, error) {
	if now == nil {
		now = time.Now
	}
	generatedAt := now().Format(timestampFormat)

	plan := models.DocumentPlan{Pages: []models.Page{titlePage(cfg)}}

	for _, g := range groups {
		td, err := layout.Layout(g.Matrix)
		if err != nil {
			return models.DocumentPlan{}, fmt.Errorf("layout group %s-%s: %w", g.Key.Speciality, g.Key.Level, err)
		}

		speciality := displaySpeciality(g.Key.Speciality, g.Key.Level)
		level := displayLevel(g.Key.Level)

		plan.Pages = append(plan.Pages, models.Page{
			Kind:   models.TablePage,
			Header: headerBlock(cfg, fmt.Sprintf("%s %s شعبة %s", levelPrefix(g.Key.Level), level, speciality)),
			Title:  fmt.Sprintf("جدول %s - %s", speciality, level),
			Table:  td,
			Footer: footerBlock(cfg, generatedAt),
		})
	}

	return plan, nil
}

// AssembleLocations builds the room-occupancy view: one page per
// location, titled by room instead of speciality and level.
func AssembleLocations(groups []models.ScheduleGroup, cfg config.Config, now func() time.Time) (models.DocumentPlan, error) {
	if now == nil {
		now = time.Now
	}
	generatedAt := now().Format(timestampFormat)

	plan := models.DocumentPlan{Pages: []models.Page{titlePage(cfg)}}

	for _, g := range groups {
		td, err := layout.Layout(g.Matrix)
		if err != nil {
			return models.DocumentPlan{}, fmt.Errorf("layout location %s: %w", g.Key.Speciality, err)
		}

		title := fmt.Sprintf("جدول إشغال %s", g.Key.Speciality)
		plan.Pages = append(plan.Pages, models.Page{
			Kind:   models.TablePage,
			Header: headerBlock(cfg, title),
			Title:  title,
			Table:  td,
			Footer: footerBlock(cfg, generatedAt),
		})
	}

	return plan, nil
}

// AssembleSingle builds the legacy single-table plan: the bare table
// only, with no title page and no header or footer decoration.
func AssembleSingle(group models.ScheduleGroup) (models.DocumentPlan, error) {
	td, err := layout.Layout(group.Matrix)
	if err != nil {
		return models.DocumentPlan{}, err
	}
	return models.DocumentPlan{
		Pages: []models.Page{{Kind: models.TablePage, Table: td}},
	}, nil
}

func titlePage(cfg config.Config) models.Page {
	return models.Page{
		Kind: models.TitlePage,
		TitleLines: []string{
			cfg.UniversityName,
			cfg.FacultyName,
			cfg.ScheduleTitle,
			cfg.AcademicYear,
			cfg.Semester,
		},
	}
}

func headerBlock(cfg config.Config, groupLine string) models.HeaderBlock {
	return models.HeaderBlock{
		University:   cfg.UniversityName,
		Faculty:      cfg.FacultyName,
		Department:   cfg.Department,
		Title:        cfg.ScheduleTitle,
		AcademicYear: cfg.AcademicYear,
		Semester:     cfg.Semester,
		GroupLine:    groupLine,
	}
}

func footerBlock(cfg config.Config, generatedAt string) models.FooterBlock {
	signers := make([]models.Signer, 0, len(cfg.Signers))
	for _, s := range cfg.Signers {
		signers = append(signers, models.Signer{Title: s.Title, Name: s.Name})
	}
	return models.FooterBlock{
		Signers:     signers,
		GeneratedAt: generatedAt,
		SystemName:  cfg.SystemName,
	}
}
