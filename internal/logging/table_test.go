package logging

import (
	"math"
	"strings"
	"testing"
)

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"zero", 0.0, 2, "0.00"},
		{"positive", 3.14159, 2, "3.14"},
		{"negative", -16.5, 1, "-16.5"},
		{"large", 12345.6789, 2, "12345.68"},
		{"small_normal", 0.001, 3, "0.001"},
		{"very_small_scientific", 0.00001, 2, "1.00e-05"},
		{"very_small_negative", -0.00001, 2, "-1.00e-05"},
		{"nan", math.NaN(), 2, MissingValue},
		{"positive_inf", math.Inf(1), 2, MissingValue},
		{"negative_inf", math.Inf(-1), 2, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetric(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetric(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatMetricSigned(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"positive", 2.5, 1, "+2.5"},
		{"negative", -1.2, 1, "-1.2"},
		{"zero", 0.0, 1, "+0.0"},
		{"nan", math.NaN(), 1, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetricSigned(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetricSigned(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestMetricTableAlignment(t *testing.T) {
	table := &MetricTable{}
	table.AddMetricRow("Centre Frequency", 412.3, 1, "Hz", "low rumble")
	table.AddMetricRow("Spread", 87.0, 1, "Hz", "")
	table.AddRow("Level", "-31.2", "dB", "quiet room")

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	// Labels padded to the same width
	for _, line := range lines {
		if !strings.HasPrefix(line, "Centre Frequency") && len(line) < len("Centre Frequency") {
			t.Errorf("line %q shorter than widest label", line)
		}
	}

	if !strings.Contains(lines[0], "412.3 Hz") {
		t.Errorf("first row missing value: %q", lines[0])
	}
	if !strings.Contains(lines[0], "low rumble") {
		t.Errorf("first row missing interpretation: %q", lines[0])
	}
	if !strings.Contains(lines[2], "-31.2 dB") {
		t.Errorf("third row missing value: %q", lines[2])
	}
}

func TestMetricTableMissingValue(t *testing.T) {
	table := &MetricTable{}
	table.AddMetricRow("Spread", math.NaN(), 1, "Hz", "")

	if !strings.Contains(table.String(), MissingValue) {
		t.Errorf("NaN value should render as %q, got:\n%s", MissingValue, table.String())
	}
}

func TestMetricTableEmpty(t *testing.T) {
	table := &MetricTable{}
	if table.String() != "" {
		t.Errorf("empty table should render nothing, got %q", table.String())
	}
}
