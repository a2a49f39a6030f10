package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
)

// errRecordsFailed indicates that at least one record of the batch was skipped
var errRecordsFailed = errors.New("some workout records failed")

func newRootCmd() *cobra.Command {
	var failFast bool

	cmd := &cobra.Command{
		Use:   "ftracker [CODE:readings...]",
		Short: "ftracker calculates distance, speed and calories of workouts",
		Long: `ftracker reads workout packages and prints one report per package.

A package is a workout code followed by comma separated readings:
` + usageCodes() + `
Without arguments the built-in sample packages are processed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, failFast)
		},
	}

	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first invalid package")

	return cmd
}

func run(cmd *cobra.Command, args []string, failFast bool) error {
	logger := log.New(cmd.ErrOrStderr(), "ftracker: ", 0)

	records, err := parseRecords(args)
	if err != nil {
		return err
	}

	return process(cmd.OutOrStdout(), logger, records, failFast)
}

func parseRecords(args []string) ([]ftracker.Record, error) {
	if len(args) == 0 {
		return ftracker.SamplePackages, nil
	}

	records := make([]ftracker.Record, 0, len(args))
	for _, arg := range args {
		rec, err := ftracker.ParseRecord(arg)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// process prints a report for every record in order.
// A failing record is logged and skipped unless failFast is set.
func process(w io.Writer, logger *log.Logger, records []ftracker.Record, failFast bool) error {
	failed := 0
	for _, rec := range records {
		workout, err := rec.Workout()
		if err != nil {
			logger.Printf("cannot process package %s: %s", rec, err)
			if failFast {
				return fmt.Errorf("package %s: %w", rec, err)
			}
			failed++
			continue
		}

		info := ftracker.ShowTrainingInfo(workout)
		if _, err := fmt.Fprintln(w, info.Message()); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errRecordsFailed, failed, len(records))
	}
	return nil
}

func usageCodes() string {
	var b strings.Builder
	for _, code := range ftracker.WorkoutCodes() {
		arity, _ := ftracker.Arity(code)
		fmt.Fprintf(&b, "\t%s\t%d readings\n", code, arity)
	}
	return b.String()
}
