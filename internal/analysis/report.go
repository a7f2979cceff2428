// Package analysis computes traffic summaries from daily interval count
// reports: average daily traffic per vehicle category, PCU-converted volumes,
// and per-day peak hour with peak hour factor.
package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// reportPrefix and reportSuffix identify daily interval report files produced
// by the counting pipeline.
const (
	reportPrefix = "Traffic_Count_Report_"
	reportSuffix = ".csv"
)

// dailyTotalLabel marks the aggregate row appended to each daily report.
const dailyTotalLabel = "Daily Total"

// CategoryColumns are the vehicle category columns of an interval report, in
// report column order. Total and Pedestrian are handled separately.
var CategoryColumns = []string{"2W", "3W", "Car", "LCV", "Bus", "Truck", "Others"}

// IntervalRow is one counting interval of a daily report.
type IntervalRow struct {
	Interval string         // e.g. "08:15-08:30"
	StartMin int            // interval start in minutes from midnight
	Counts   map[string]int // per-column counts, including Total and Pedestrian
}

// Total returns the interval's vehicle total (pedestrians excluded by the
// reporting convention).
func (r *IntervalRow) Total() int {
	return r.Counts["Total"]
}

// Report is one parsed daily interval report.
type Report struct {
	Source  string // base name of the CSV file
	Columns []string
	Rows    []IntervalRow // interval rows, Daily Total row excluded
	Totals  map[string]int
}

// LoadReports finds and parses every interval report under dir, recursively.
// Files that cannot be parsed are skipped with a log entry.
func LoadReports(dir string, log *slog.Logger) ([]*Report, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, reportPrefix) && strings.HasSuffix(name, reportSuffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var reports []*Report
	for _, path := range paths {
		report, err := parseReport(path)
		if err != nil {
			log.Warn("skipping unreadable report", "report", path, "error", err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// parseReport reads one daily interval CSV.
func parseReport(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("report %s has no data rows", path)
	}

	header := records[0]
	if len(header) == 0 || header[0] != "Interval" {
		return nil, fmt.Errorf("report %s: first column must be Interval", path)
	}

	report := &Report{
		Source:  filepath.Base(path),
		Columns: header[1:],
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("report %s: row width mismatch", path)
		}
		counts := make(map[string]int, len(header)-1)
		for i, col := range header[1:] {
			// The Daily Total row repeats its label in count cells in some
			// report revisions; treat unparsable cells as zero.
			n, _ := strconv.Atoi(strings.TrimSpace(record[i+1]))
			counts[col] = n
		}

		if record[0] == dailyTotalLabel {
			report.Totals = counts
			continue
		}

		startMin, err := parseIntervalStart(record[0])
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", path, err)
		}
		report.Rows = append(report.Rows, IntervalRow{
			Interval: record[0],
			StartMin: startMin,
			Counts:   counts,
		})
	}

	if report.Totals == nil {
		// Older reports lack the aggregate row; synthesize it.
		report.Totals = make(map[string]int, len(report.Columns))
		for _, row := range report.Rows {
			for col, n := range row.Counts {
				report.Totals[col] += n
			}
		}
	}

	return report, nil
}

// parseIntervalStart extracts minutes from midnight out of an interval label
// such as "08:15-08:30".
func parseIntervalStart(interval string) (int, error) {
	if len(interval) < 5 || interval[2] != ':' {
		return 0, fmt.Errorf("invalid interval label %q", interval)
	}
	hours, err := strconv.Atoi(interval[0:2])
	if err != nil {
		return 0, fmt.Errorf("invalid interval label %q", interval)
	}
	minutes, err := strconv.Atoi(interval[3:5])
	if err != nil {
		return 0, fmt.Errorf("invalid interval label %q", interval)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("interval label %q out of range", interval)
	}
	return hours*60 + minutes, nil
}
