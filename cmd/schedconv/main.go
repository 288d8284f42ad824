// Package main provides the CLI entry point for schedconv.
package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdo1819/schudle-managment/pkg/schedule"
)

func main() {
	_ = godotenv.Load()
	initLogging()

	rootCmd := &cobra.Command{
		Use:           "schedconv",
		Short:         "Convert schedule CSV/Excel files into Word timetables",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "convert <input> <output.docx>",
			Short: "Legacy single-table conversion (no page decoration)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return schedule.ConvertSingle(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "convert-multi <input> <output.docx>",
			Short: "One decorated timetable page per speciality-level group",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return schedule.ConvertMultiLevel(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "convert-locations <input> <output.docx>",
			Short: "Room occupancy view: one timetable page per location",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return schedule.ConvertByLocation(args[0], args[1])
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if lvlStr := strings.ToLower(os.Getenv("LOG_LEVEL")); lvlStr != "" {
		if lvl, err := logrus.ParseLevel(lvlStr); err == nil {
			logrus.SetLevel(lvl)
		} else {
			logrus.Warnf("invalid LOG_LEVEL %q, using info", lvlStr)
		}
	}
}
