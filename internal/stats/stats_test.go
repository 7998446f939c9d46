package stats

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// closeTo reports whether got is within tolerance of want.
func closeTo(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestAnalyze(t *testing.T) {
	t.Run("zero amplitude table fails with no signal", func(t *testing.T) {
		bins := []Bin{
			{Frequency: 100, Amplitude: 0},
			{Frequency: 300, Amplitude: 0},
		}
		_, err := Analyze(bins)
		if !errors.Is(err, ErrNoSignal) {
			t.Fatalf("Analyze with silent table: got %v, want ErrNoSignal", err)
		}
	})

	t.Run("empty table is an error", func(t *testing.T) {
		if _, err := Analyze(nil); err == nil {
			t.Fatal("Analyze with empty table should fail")
		}
	})

	t.Run("uniform amplitudes give arithmetic mean frequency", func(t *testing.T) {
		bins := []Bin{
			{Frequency: 100, Amplitude: 0.5},
			{Frequency: 200, Amplitude: 0.5},
			{Frequency: 600, Amplitude: 0.5},
		}
		profile, err := Analyze(bins)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if !closeTo(profile.MeanFrequency, 300) {
			t.Errorf("MeanFrequency = %f, want 300 (arithmetic mean)", profile.MeanFrequency)
		}
	})

	t.Run("two equal bins", func(t *testing.T) {
		bins := []Bin{
			{Frequency: 100, Amplitude: 1},
			{Frequency: 300, Amplitude: 1},
		}
		profile, err := Analyze(bins)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if !closeTo(profile.MeanFrequency, 200) {
			t.Errorf("MeanFrequency = %f, want 200", profile.MeanFrequency)
		}
		if !closeTo(profile.StdDev, 100) {
			t.Errorf("StdDev = %f, want 100", profile.StdDev)
		}
		if !closeTo(profile.MeanAmplitude, 1.0) {
			t.Errorf("MeanAmplitude = %f, want 1.0", profile.MeanAmplitude)
		}
		if !closeTo(profile.VolumeDB, 0) {
			t.Errorf("VolumeDB = %f, want 0", profile.VolumeDB)
		}
	})

	t.Run("loud bin dominates the weighted mean", func(t *testing.T) {
		bins := []Bin{
			{Frequency: 100, Amplitude: 3},
			{Frequency: 500, Amplitude: 1},
		}
		profile, err := Analyze(bins)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		// (100*3 + 500*1) / 4 = 200
		if !closeTo(profile.MeanFrequency, 200) {
			t.Errorf("MeanFrequency = %f, want 200", profile.MeanFrequency)
		}
	})
}

func TestAmplitudeToDB(t *testing.T) {
	tests := []struct {
		amplitude float64
		want      float64
	}{
		{1.0, 0},
		{10.0, 10},
		{100.0, 20},
	}

	for _, tt := range tests {
		if got := AmplitudeToDB(tt.amplitude); !closeTo(got, tt.want) {
			t.Errorf("AmplitudeToDB(%f) = %f, want %f", tt.amplitude, got, tt.want)
		}
	}
}

func TestDBToLinear(t *testing.T) {
	tests := []struct {
		db   float64
		want float64
	}{
		{0, 1.0},
		{20, 10.0},
		{-20, 0.1},
	}

	for _, tt := range tests {
		if got := DBToLinear(tt.db); !closeTo(got, tt.want) {
			t.Errorf("DBToLinear(%f) = %f, want %f", tt.db, got, tt.want)
		}
	}
}

func TestParseTable(t *testing.T) {
	t.Run("skips the trailing summary block", func(t *testing.T) {
		table := strings.Join([]string{
			"0.000000  0.000210",
			"43.066406  0.001320",
			"86.132812  0.000874",
			"Samples read:            441000",
			"Length (seconds):     10.000000",
			"Maximum amplitude:     0.312714",
			"Rough frequency:            430",
		}, "\n")

		bins, err := ParseTable(strings.NewReader(table))
		if err != nil {
			t.Fatalf("ParseTable failed: %v", err)
		}
		if len(bins) != 3 {
			t.Fatalf("got %d bins, want 3", len(bins))
		}
		if !closeTo(bins[1].Frequency, 43.066406) || !closeTo(bins[1].Amplitude, 0.001320) {
			t.Errorf("bins[1] = %+v, want {43.066406 0.001320}", bins[1])
		}
	})

	t.Run("table with no frequency rows is an error", func(t *testing.T) {
		table := "Samples read: 441000\nLength (seconds): 10.0\n"
		if _, err := ParseTable(strings.NewReader(table)); err == nil {
			t.Fatal("ParseTable with no rows should fail")
		}
	})

	t.Run("empty input is an error", func(t *testing.T) {
		if _, err := ParseTable(strings.NewReader("")); err == nil {
			t.Fatal("ParseTable with empty input should fail")
		}
	})
}
