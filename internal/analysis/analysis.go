// analysis.go: orchestration for the analyze command
package analysis

import (
	"log/slog"

	"github.com/atcc-vision/atcc-go/internal/conf"
	"github.com/atcc-vision/atcc-go/internal/errors"
)

// Result carries everything the analyze command reports.
type Result struct {
	Reports   int
	ADT       []CategoryADT
	PeakHours []PeakHourRow // all days concatenated, day order preserved
	Morning   PeakWindow    // busiest morning hour across all days
	Evening   PeakWindow    // busiest evening hour across all days
	Files     []string      // written summary file paths
}

// Run loads every interval report under the configured input directory,
// computes the summary tables and writes them next to the input data.
func Run(settings *conf.AnalysisSettings, log *slog.Logger) (*Result, error) {
	reports, err := LoadReports(settings.InputDir, log)
	if err != nil {
		return nil, errors.New(err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Context("inputdir", settings.InputDir).
			Build()
	}
	if len(reports) == 0 {
		return &Result{}, nil
	}

	adt := ComputeADT(reports, settings.PCU)

	var allPeaks []PeakHourRow
	for _, report := range reports {
		allPeaks = append(allPeaks, PeakHours(report)...)
	}

	morningStart, morningEnd, err := conf.ParseHourRange(settings.Morning)
	if err != nil {
		return nil, err
	}
	eveningStart, eveningEnd, err := conf.ParseHourRange(settings.Evening)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Reports:   len(reports),
		ADT:       adt,
		PeakHours: allPeaks,
		Morning:   PeakInWindow(allPeaks, morningStart, morningEnd, "Morning"),
		Evening:   PeakInWindow(allPeaks, eveningStart, eveningEnd, "Evening"),
	}

	files, err := WriteSummary(settings.InputDir, adt, allPeaks)
	if err != nil {
		return nil, errors.New(err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Context("operation", "write-summary").
			Build()
	}
	result.Files = files

	return result, nil
}
