// summary.go: ADT, PCU and peak hour computations plus CSV export
package analysis

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// CategoryADT is the average daily count of one vehicle category across all
// loaded reports, optionally converted to passenger car units.
type CategoryADT struct {
	Category string
	AvgDaily int
	AvgPCU   int
}

// PeakHourRow is one clock hour of one day with its hourly total and peak
// hour factor.
type PeakHourRow struct {
	Day         string
	Hour        string // e.g. "08:00-09:00"
	HourlyTotal int
	MaxQuarter  int     // highest single interval volume within the hour
	PHF         float64 // 4 x MaxQuarter / HourlyTotal, 0 when the hour is empty
}

// PeakWindow is the busiest hour within a morning or evening window.
type PeakWindow struct {
	Label    string // "Morning" or "Evening"
	Interval string // "08:00-09:00", or "N/A" when the window has no data
	Total    int
}

// ComputeADT averages each report's daily totals per category. Categories
// absent from every report are omitted.
func ComputeADT(reports []*Report, pcu map[string]float64) []CategoryADT {
	if len(reports) == 0 {
		return nil
	}

	sums := make(map[string]int)
	for _, report := range reports {
		for _, col := range report.Columns {
			sums[col] += report.Totals[col]
		}
	}

	columns := append(append([]string{}, CategoryColumns...), "Total", "Pedestrian")
	var out []CategoryADT
	for _, col := range columns {
		if _, present := sums[col]; !present {
			continue
		}
		avg := int(math.Round(float64(sums[col]) / float64(len(reports))))
		factor, ok := pcu[col]
		if !ok {
			factor = 1.0
		}
		out = append(out, CategoryADT{
			Category: col,
			AvgDaily: avg,
			AvgPCU:   int(math.Round(float64(avg) * factor)),
		})
	}
	return out
}

// PeakHours buckets a report's intervals into clock hours and computes the
// hourly totals and peak hour factors.
func PeakHours(report *Report) []PeakHourRow {
	hourTotals := make(map[int]int)
	hourMax := make(map[int]int)
	for i := range report.Rows {
		row := &report.Rows[i]
		hour := row.StartMin / 60
		hourTotals[hour] += row.Total()
		if row.Total() > hourMax[hour] {
			hourMax[hour] = row.Total()
		}
	}

	hours := make([]int, 0, len(hourTotals))
	for hour := range hourTotals {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	out := make([]PeakHourRow, 0, len(hours))
	for _, hour := range hours {
		total := hourTotals[hour]
		phf := 0.0
		if total > 0 {
			phf = float64(hourMax[hour]) * 4 / float64(total)
		}
		out = append(out, PeakHourRow{
			Day:         report.Source,
			Hour:        fmt.Sprintf("%02d:00-%02d:00", hour, (hour+1)%24),
			HourlyTotal: total,
			MaxQuarter:  hourMax[hour],
			PHF:         math.Round(phf*1000) / 1000,
		})
	}
	return out
}

// PeakInWindow returns the busiest hour of rows within [startHour, endHour).
func PeakInWindow(rows []PeakHourRow, startHour, endHour int, label string) PeakWindow {
	best := PeakWindow{Label: label, Interval: "N/A"}
	for i := range rows {
		row := &rows[i]
		hour, err := strconv.Atoi(row.Hour[0:2])
		if err != nil || hour < startHour || hour >= endHour {
			continue
		}
		if best.Interval == "N/A" || row.HourlyTotal > best.Total {
			best.Interval = row.Hour
			best.Total = row.HourlyTotal
		}
	}
	return best
}

// WriteSummary exports the summary tables as CSV files under dir and returns
// their paths. (The Python predecessor wrote one xlsx workbook; one CSV per
// sheet keeps the output dependency free.)
func WriteSummary(dir string, adt []CategoryADT, peaks []PeakHourRow) ([]string, error) {
	adtPath := filepath.Join(dir, "ATCC_Summary_ADT.csv")
	adtRows := [][]string{{"Vehicle Category", "Avg Daily Count"}}
	for i := range adt {
		adtRows = append(adtRows, []string{adt[i].Category, strconv.Itoa(adt[i].AvgDaily)})
	}
	if err := writeCSV(adtPath, adtRows); err != nil {
		return nil, err
	}

	pcuPath := filepath.Join(dir, "ATCC_Summary_PCU_ADT.csv")
	pcuRows := [][]string{{"Vehicle Category", "Avg Daily Count", "Avg Daily PCU"}}
	for i := range adt {
		pcuRows = append(pcuRows, []string{
			adt[i].Category,
			strconv.Itoa(adt[i].AvgDaily),
			strconv.Itoa(adt[i].AvgPCU),
		})
	}
	if err := writeCSV(pcuPath, pcuRows); err != nil {
		return nil, err
	}

	peakPath := filepath.Join(dir, "ATCC_Summary_PeakHour.csv")
	peakRows := [][]string{{"Day", "Hour", "Hourly Total", "Highest 15-min Volume", "PHF"}}
	for i := range peaks {
		peakRows = append(peakRows, []string{
			peaks[i].Day,
			peaks[i].Hour,
			strconv.Itoa(peaks[i].HourlyTotal),
			strconv.Itoa(peaks[i].MaxQuarter),
			strconv.FormatFloat(peaks[i].PHF, 'f', 3, 64),
		})
	}
	if err := writeCSV(peakPath, peakRows); err != nil {
		return nil, err
	}

	return []string{adtPath, pcuPath, peakPath}, nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
