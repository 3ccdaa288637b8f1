package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// metricColumns are the fixed metric headers following the swept parameter
// and policy columns in every results file.
var metricColumns = []string{"hit_ratio", "avg_latency", "p95_latency", "origin_load"}

// ResultRow is one parsed row of a sweep results file.
type ResultRow struct {
	SweptValue string
	Policy     string
	HitRatio   float64
	AvgLatency float64
	P95Latency float64
	OriginLoad float64
}

// ResultTable is the parsed form of a sweep results file.
type ResultTable struct {
	SweptColumn string
	Rows        []ResultRow
}

// WriteResults persists sweep results as CSV: a header naming the swept
// column, the policy, and the metric columns, then one row per grid point.
// The output directory is created if missing.
func WriteResults(path string, sweptColumn string, results []Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	if err := writeResultsTo(file, sweptColumn, results); err != nil {
		file.Close() //nolint:errcheck // write error takes precedence
		return err
	}
	return file.Close()
}

func writeResultsTo(w io.Writer, sweptColumn string, results []Result) error {
	writer := csv.NewWriter(w)

	header := append([]string{sweptColumn, "policy"}, metricColumns...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, res := range results {
		row := []string{
			res.Point.SweptValue,
			res.Point.Policy,
			strconv.FormatFloat(res.Metrics.HitRatio, 'f', -1, 64),
			strconv.FormatFloat(res.Metrics.AvgLatencyMs, 'f', -1, 64),
			strconv.FormatFloat(res.Metrics.P95LatencyMs, 'f', -1, 64),
			strconv.Itoa(res.Metrics.OriginLoad),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadResults loads a sweep results file written by WriteResults.
func ReadResults(path string) (*ResultTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file; close error is not actionable

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) < 2+len(metricColumns) {
		return nil, fmt.Errorf("results header has %d columns, want at least %d", len(header), 2+len(metricColumns))
	}

	table := &ResultTable{SweptColumn: header[0]}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		row := ResultRow{SweptValue: record[0], Policy: record[1]}
		fields := []*float64{&row.HitRatio, &row.AvgLatency, &row.P95Latency, &row.OriginLoad}
		for i, dst := range fields {
			v, err := strconv.ParseFloat(record[2+i], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %s is not numeric: %w", len(table.Rows)+1, metricColumns[i], err)
			}
			*dst = v
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
