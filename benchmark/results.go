package benchmark

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"
)

// Summary holds latency percentiles over a set of timed operations.
type Summary struct {
	Count int           `json:"count"`
	Total time.Duration `json:"total_ns"`
	P50   time.Duration `json:"p50_ns"`
	P90   time.Duration `json:"p90_ns"`
	P99   time.Duration `json:"p99_ns"`
	Max   time.Duration `json:"max_ns"`
}

// Summarize sorts a copy of durations and picks nearest-rank percentiles.
func Summarize(durations []time.Duration, total time.Duration) Summary {
	s := Summary{Count: len(durations), Total: total}
	if len(durations) == 0 {
		return s
	}

	sorted := append([]time.Duration(nil), durations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	getPercentile := func(p float64) time.Duration {
		index := int(float64(len(sorted)) * p)
		if index >= len(sorted) {
			index = len(sorted) - 1
		}
		return sorted[index]
	}

	s.P50 = getPercentile(0.50)
	s.P90 = getPercentile(0.90)
	s.P99 = getPercentile(0.99)
	s.Max = sorted[len(sorted)-1]
	return s
}

// WriteCSV appends one row for s, writing the header first on a fresh file.
func WriteCSV(s Summary, records int, outputCSVPath string, startFreshCSVFile bool) (err error) {
	mode := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if startFreshCSVFile {
		mode = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	f, err := os.OpenFile(outputCSVPath, mode, 0644)
	if err != nil {
		return fmt.Errorf("open results csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close results csv: %w", cerr)
		}
	}()

	writer := csv.NewWriter(f)
	if startFreshCSVFile {
		_ = writer.Write([]string{"Timestamp", "Records", "Batches", "TotalTime", "p50", "p90", "p99", "Max"})
	}

	_ = writer.Write([]string{
		time.Now().Format("2006-01-02 15:04:05"),
		fmt.Sprintf("%d", records),
		fmt.Sprintf("%d", s.Count),
		s.Total.String(),
		s.P50.String(),
		s.P90.String(),
		s.P99.String(),
		s.Max.String(),
	})

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write results csv: %w", err)
	}
	return nil
}
