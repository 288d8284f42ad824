// Package schedule converts tabular timetable data into Word documents.
//
// A conversion run flows one way: raw records are validated into rows,
// folded into per-group day/slot/category matrices, rendered as
// merged-cell table grids, sequenced into a document plan, and written
// out as a .docx package. Each stage owns the structure it produces;
// nothing is mutated after being handed downstream.
package schedule

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abdo1819/schudle-managment/pkg/schedule/assemble"
	"github.com/abdo1819/schudle-managment/pkg/schedule/config"
	"github.com/abdo1819/schudle-managment/pkg/schedule/docx"
	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
	"github.com/abdo1819/schudle-managment/pkg/schedule/pivot"
	"github.com/abdo1819/schudle-managment/pkg/schedule/reader"
)

var log = logrus.StandardLogger()

// ConvertSingle is the legacy single-table entry point: all rows are
// collapsed into one group and rendered as a bare table with no title
// page or page decoration.
func ConvertSingle(inputPath, outputPath string) error {
	rows, err := reader.Read(inputPath)
	if err != nil {
		return err
	}
	log.WithField("rows", len(rows)).Debugf("validated %s", inputPath)

	groups, err := pivot.Build(rows, pivot.SingleGroup)
	if err != nil {
		return err
	}

	plan, err := assemble.AssembleSingle(groups[0])
	if err != nil {
		return err
	}

	if err := docx.WriteFile(outputPath, plan); err != nil {
		return err
	}
	log.Infof("wrote %s", outputPath)
	return nil
}

// ConvertMultiLevel converts the input into one decorated timetable
// page per (speciality, level) group, preceded by a title page.
func ConvertMultiLevel(inputPath, outputPath string) error {
	return convertGrouped(inputPath, outputPath, pivot.ByLevel, assemble.Assemble)
}

// ConvertByLocation converts the input into the room-occupancy view:
// one page per location.
func ConvertByLocation(inputPath, outputPath string) error {
	return convertGrouped(inputPath, outputPath, pivot.ByLocation, assemble.AssembleLocations)
}

type assembleFunc func([]models.ScheduleGroup, config.Config, func() time.Time) (models.DocumentPlan, error)

func convertGrouped(inputPath, outputPath string, key pivot.KeyFunc, build assembleFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rows, err := reader.Read(inputPath)
	if err != nil {
		return err
	}
	log.WithField("rows", len(rows)).Debugf("validated %s", inputPath)

	groups, err := pivot.Build(rows, key)
	if err != nil {
		return err
	}
	for _, g := range groups {
		log.WithFields(logrus.Fields{
			"speciality": g.Key.Speciality,
			"level":      g.Key.Level,
		}).Info("generating table")
	}

	plan, err := build(groups, cfg, time.Now)
	if err != nil {
		return err
	}

	if err := docx.WriteFile(outputPath, plan); err != nil {
		return err
	}
	log.WithField("pages", len(plan.Pages)).Infof("wrote %s", outputPath)
	return nil
}
