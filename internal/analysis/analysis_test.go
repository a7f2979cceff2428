package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atcc-vision/atcc-go/internal/conf"
)

const sampleReport = `Interval,2W,3W,Car,LCV,Bus,Truck,Others,Total,Pedestrian
08:00-08:15,10,2,20,3,1,2,0,38,5
08:15-08:30,12,1,25,2,0,1,1,42,3
08:30-08:45,8,3,15,1,2,0,0,29,2
08:45-09:00,9,2,18,2,1,1,0,33,4
09:00-09:15,5,1,10,1,0,0,0,17,1
Daily Total,44,9,88,9,4,4,1,159,15
`

func writeReport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeReport(t, dir, "Traffic_Count_Report_20260801.csv", sampleReport)

	report, err := parseReport(path)
	require.NoError(t, err)

	assert.Equal(t, "Traffic_Count_Report_20260801.csv", report.Source)
	require.Len(t, report.Rows, 5)
	assert.Equal(t, 480, report.Rows[0].StartMin)
	assert.Equal(t, 38, report.Rows[0].Total())
	assert.Equal(t, 159, report.Totals["Total"])
	assert.Equal(t, 44, report.Totals["2W"])
}

func TestParseReport_SynthesizesMissingTotals(t *testing.T) {
	t.Parallel()

	content := strings.Join(strings.Split(sampleReport, "\n")[:6], "\n") + "\n" // drop Daily Total row
	dir := t.TempDir()
	path := writeReport(t, dir, "Traffic_Count_Report_20260802.csv", content)

	report, err := parseReport(path)
	require.NoError(t, err)
	assert.Equal(t, 159, report.Totals["Total"])
	assert.Equal(t, 15, report.Totals["Pedestrian"])
}

func TestLoadReports_SkipsMalformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeReport(t, dir, "Traffic_Count_Report_good.csv", sampleReport)
	writeReport(t, dir, "Traffic_Count_Report_bad.csv", "not,a\nreport\n")
	writeReport(t, dir, "unrelated.csv", sampleReport)

	reports, err := LoadReports(dir, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Traffic_Count_Report_good.csv", reports[0].Source)
}

func TestComputeADT(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeReport(t, dir, "Traffic_Count_Report_d1.csv", sampleReport)

	// Second day with doubled counts.
	doubled := strings.ReplaceAll(sampleReport, "Daily Total,44,9,88,9,4,4,1,159,15",
		"Daily Total,88,18,176,18,8,8,2,318,30")
	writeReport(t, dir, "Traffic_Count_Report_d2.csv", doubled)

	reports, err := LoadReports(dir, nil)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	pcu := map[string]float64{"2W": 0.5, "Car": 1.0, "Bus": 3.0}
	adt := ComputeADT(reports, pcu)

	byCategory := make(map[string]CategoryADT, len(adt))
	for _, row := range adt {
		byCategory[row.Category] = row
	}

	assert.Equal(t, 66, byCategory["2W"].AvgDaily) // (44+88)/2
	assert.Equal(t, 33, byCategory["2W"].AvgPCU)
	assert.Equal(t, 132, byCategory["Car"].AvgDaily)
	assert.Equal(t, 6, byCategory["Bus"].AvgDaily)
	assert.Equal(t, 18, byCategory["Bus"].AvgPCU)
	// Categories without a PCU factor default to 1.0.
	assert.Equal(t, byCategory["LCV"].AvgDaily, byCategory["LCV"].AvgPCU)
}

func TestPeakHours(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeReport(t, dir, "Traffic_Count_Report_d1.csv", sampleReport)
	report, err := parseReport(path)
	require.NoError(t, err)

	rows := PeakHours(report)
	require.Len(t, rows, 2)

	assert.Equal(t, "08:00-09:00", rows[0].Hour)
	assert.Equal(t, 142, rows[0].HourlyTotal) // 38+42+29+33
	assert.Equal(t, 42, rows[0].MaxQuarter)
	assert.InDelta(t, 42.0*4/142.0, rows[0].PHF, 0.001)

	assert.Equal(t, "09:00-10:00", rows[1].Hour)
	assert.Equal(t, 17, rows[1].HourlyTotal)
}

func TestPeakInWindow(t *testing.T) {
	t.Parallel()

	rows := []PeakHourRow{
		{Hour: "07:00-08:00", HourlyTotal: 50},
		{Hour: "08:00-09:00", HourlyTotal: 142},
		{Hour: "17:00-18:00", HourlyTotal: 90},
	}

	morning := PeakInWindow(rows, 6, 12, "Morning")
	assert.Equal(t, "08:00-09:00", morning.Interval)
	assert.Equal(t, 142, morning.Total)

	evening := PeakInWindow(rows, 16, 21, "Evening")
	assert.Equal(t, "17:00-18:00", evening.Interval)

	night := PeakInWindow(rows, 0, 5, "Night")
	assert.Equal(t, "N/A", night.Interval)
	assert.Equal(t, 0, night.Total)
}

func TestRun_WritesSummaryFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeReport(t, dir, "Traffic_Count_Report_d1.csv", sampleReport)

	settings := &conf.AnalysisSettings{
		InputDir: dir,
		PCU:      map[string]float64{"2W": 0.5, "Car": 1.0},
		Morning:  "6-12",
		Evening:  "16-21",
	}

	result, err := Run(settings, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Reports)
	assert.Equal(t, "08:00-09:00", result.Morning.Interval)
	assert.Equal(t, "N/A", result.Evening.Interval)
	require.Len(t, result.Files, 3)
	for _, path := range result.Files {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRun_NoReports(t *testing.T) {
	t.Parallel()

	settings := &conf.AnalysisSettings{
		InputDir: t.TempDir(),
		Morning:  "6-12",
		Evening:  "16-21",
	}

	result, err := Run(settings, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Reports)
	assert.Empty(t, result.Files)
}

func TestParseIntervalStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		interval string
		want     int
		wantErr  bool
	}{
		{"00:00-00:15", 0, false},
		{"08:15-08:30", 495, false},
		{"23:45-00:00", 1425, false},
		{"8:15-8:30", 0, true},
		{"25:00-26:00", 0, true},
		{"garbage", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.interval, func(t *testing.T) {
			got, err := parseIntervalStart(tt.interval)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
