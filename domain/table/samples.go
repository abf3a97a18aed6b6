package table

import (
	"fmt"
	"strconv"
	"strings"

	"statplug/domain/core"
)

// Sample is a named column of numeric observations
type Sample struct {
	Name   string
	Values []float64
}

// Len returns the number of observations
func (s Sample) Len() int { return len(s.Values) }

// ParseColumn parses display cells into a numeric sample. Blank cells are
// skipped; any other non-numeric cell fails the whole column.
func ParseColumn(name string, cells []string) (Sample, error) {
	values := make([]float64, 0, len(cells))
	for i, cell := range cells {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Sample{}, fmt.Errorf("%w %q at row %d of column %q", core.ErrNonNumericCell, cell, i+1, name)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return Sample{}, fmt.Errorf("%w: column %q", core.ErrEmptySample, name)
	}
	return Sample{Name: name, Values: values}, nil
}

// SamplesFromRows extracts one sample per column from table rows. When the
// first row contains any non-numeric, non-blank cell it is treated as a
// header row and used for sample names.
func SamplesFromRows(rows [][]string) ([]Sample, error) {
	if len(rows) == 0 {
		return nil, core.NewInvalidInputError("table has no rows")
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, core.NewInvalidInputError("table has no columns")
	}

	header := rows[0]
	hasHeader := false
	for _, cell := range header {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			continue
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			hasHeader = true
			break
		}
	}
	body := rows
	if hasHeader {
		body = rows[1:]
	}

	samples := make([]Sample, 0, width)
	for col := 0; col < width; col++ {
		name := fmt.Sprintf("col%d", col+1)
		if hasHeader && col < len(header) && strings.TrimSpace(header[col]) != "" {
			name = strings.TrimSpace(header[col])
		}
		cells := make([]string, 0, len(body))
		for _, row := range body {
			if col < len(row) {
				cells = append(cells, row[col])
			}
		}
		sample, err := ParseColumn(name, cells)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// SplitByGroup partitions a value column by the label found at the same
// index of a group column. Group order follows first occurrence.
func SplitByGroup(values Sample, groups []string) ([]Sample, error) {
	if len(values.Values) != len(groups) {
		return nil, fmt.Errorf("%w: %d values vs %d group labels", core.ErrLengthMismatch, len(values.Values), len(groups))
	}
	order := make([]string, 0)
	byLabel := make(map[string][]float64)
	for i, raw := range groups {
		label := strings.TrimSpace(raw)
		if label == "" {
			return nil, core.NewInvalidInputError(fmt.Sprintf("blank group label at row %d", i+1))
		}
		if _, seen := byLabel[label]; !seen {
			order = append(order, label)
		}
		byLabel[label] = append(byLabel[label], values.Values[i])
	}
	samples := make([]Sample, 0, len(order))
	for _, label := range order {
		samples = append(samples, Sample{Name: label, Values: byLabel[label]})
	}
	return samples, nil
}

// RequirePaired validates that two samples can feed a paired test
func RequirePaired(x, y Sample) error {
	if x.Len() == 0 || y.Len() == 0 {
		return core.ErrEmptySample
	}
	if x.Len() != y.Len() {
		return fmt.Errorf("%w: %q has %d, %q has %d", core.ErrLengthMismatch, x.Name, x.Len(), y.Name, y.Len())
	}
	return nil
}
