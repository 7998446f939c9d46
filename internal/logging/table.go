// Package logging handles generation of analysis reports for room noise
// samples. This file contains the table formatting infrastructure used by
// the report writer.

package logging

import (
	"fmt"
	"math"
	"strings"
)

// MetricRow represents a single row in a metric table.
// Values are pre-formatted strings to allow for mixed formatting.
type MetricRow struct {
	Label          string // Row label, e.g., "Centre Frequency"
	Value          string // Formatted measurement
	Unit           string // Unit suffix, e.g., "Hz", "dB", "" for unitless
	Interpretation string // Optional interpretation text (only shown if non-empty)
}

// MetricTable formats aligned label/value/unit/interpretation columns.
type MetricTable struct {
	Rows []MetricRow
}

// String renders the table with aligned columns.
// - Labels are left-aligned
// - Values are right-aligned within their column
// - Units are appended after the value column
// - Interpretation column only shown if any row has one
func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	hasInterpretation := false
	for _, row := range t.Rows {
		if row.Interpretation != "" {
			hasInterpretation = true
			break
		}
	}

	labelWidth := 0
	valueWidth := 0
	unitWidth := 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
		if len(row.Unit) > unitWidth {
			unitWidth = len(row.Unit)
		}
	}

	var sb strings.Builder
	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  ", labelWidth, row.Label))

		val := MissingValue
		if row.Value != "" {
			val = row.Value
		}
		sb.WriteString(fmt.Sprintf("%*s", valueWidth, val))

		if unitWidth > 0 {
			sb.WriteString(fmt.Sprintf(" %-*s", unitWidth, row.Unit))
		}

		if hasInterpretation && row.Interpretation != "" {
			sb.WriteString("  ")
			sb.WriteString(row.Interpretation)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// AddRow adds a row with a pre-formatted value.
func (t *MetricTable) AddRow(label, value, unit, interpretation string) {
	t.Rows = append(t.Rows, MetricRow{
		Label:          label,
		Value:          value,
		Unit:           unit,
		Interpretation: interpretation,
	})
}

// AddMetricRow adds a row with a numeric value, formatting it automatically.
// Pass math.NaN() for missing values - they will display as "-".
func (t *MetricTable) AddMetricRow(label string, value float64, decimals int, unit, interpretation string) {
	t.Rows = append(t.Rows, MetricRow{
		Label:          label,
		Value:          formatMetric(value, decimals),
		Unit:           unit,
		Interpretation: interpretation,
	})
}

// MissingValue is the placeholder for unavailable measurements
const MissingValue = "-"

// formatMetric formats a numeric value with appropriate precision.
// Handles:
// - Regular floats: formatted to specified decimal places
// - Very small values (< 0.0001): scientific notation
// - NaN/Inf: returns MissingValue
func formatMetric(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}

	if value != 0 && math.Abs(value) < 0.0001 {
		return fmt.Sprintf("%.2e", value)
	}

	format := fmt.Sprintf("%%.%df", decimals)
	return fmt.Sprintf(format, value)
}

// formatMetricSigned formats a value with explicit sign for positive values.
// Useful for showing levels like "+2.5 dB" or "-31.2 dB".
func formatMetricSigned(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}

	format := fmt.Sprintf("%%+.%df", decimals)
	return fmt.Sprintf(format, value)
}
