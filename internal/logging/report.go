// Package logging handles generation of analysis reports for room noise samples

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/morganrivers/noisemask/internal/stats"
)

// ============================================================================
// Noise Profile Interpretation Functions
// ============================================================================
// These functions interpret spectral measurements of the room sample and
// return human-readable descriptions of the noise character.

// describeCentre describes the spectral centre of gravity of the room noise.
//
// Reference values for common background noise:
// - HVAC rumble, traffic through walls: 20-120 Hz
// - Fan and ventilation noise: 120-500 Hz
// - Voices, appliances: 500-2000 Hz
// - Broadband hiss: 2000+ Hz
func describeCentre(hz float64) string {
	switch {
	case hz < 120:
		return "low rumble, HVAC or traffic"
	case hz < 500:
		return "fan or ventilation band"
	case hz < 2000:
		return "mid band, voices or appliances"
	case hz < 6000:
		return "upper mid, broadband activity"
	default:
		return "high frequency hiss"
	}
}

// describeSpread describes the bandwidth of the noise around its centre.
// Narrow spread indicates a tonal source; wide spread indicates broadband
// room tone that masks more naturally.
func describeSpread(hz float64) string {
	switch {
	case hz < 30:
		return "very narrow, single tonal source"
	case hz < 150:
		return "narrow band, dominant source"
	case hz < 600:
		return "moderate bandwidth, mixed sources"
	default:
		return "broadband room tone"
	}
}

// describeLevel describes the overall sample level in dB.
// The generator plays at this level, so very quiet samples produce masking
// that sits near the audibility threshold.
func describeLevel(db float64) string {
	switch {
	case db < -60:
		return "near silent, masking may be inaudible"
	case db < -35:
		return "quiet room"
	case db < -15:
		return "audible background"
	case db < 0:
		return "loud environment"
	default:
		return "very loud, check the capture chain"
	}
}

// =============================================================================
// Report Writer
// =============================================================================

// writeSection writes a section header with title and dashed underline.
// The underline length matches the title length.
func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

// ReportData contains all the information needed to generate a sample report
type ReportData struct {
	SamplePath   string
	SpectrumPath string
	StatsPath    string
	RecordedNew  bool // false when the sample was reused from a previous run

	Profile      *stats.Profile
	MainsHz      int
	HumDominated bool

	GeneratedAt time.Time
}

// WriteReport creates a noise profile report at the given path.
//
// Report structure:
// 1. Header - sample info and timestamp
// 2. Sample Files - where the capture artifacts live
// 3. Noise Profile - measured spectrum table with interpretations
// 4. Mains Hum Check - harmonic proximity verdict
// 5. Recording Tips - prioritised advice derived from the profile
func WriteReport(path string, data ReportData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeSampleFiles(f, data)
	writeNoiseProfile(f, data.Profile)
	writeMainsHumCheck(f, data)
	writeRecordingTips(f, data)

	return nil
}

// writeReportHeader outputs the report header with sample info and timestamp.
func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, "Noisemask Sample Report")
	fmt.Fprintln(f, "=======================")
	fmt.Fprintf(f, "Sample: %s\n", filepath.Base(data.SamplePath))
	fmt.Fprintf(f, "Generated: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if data.RecordedNew {
		fmt.Fprintln(f, "Source: freshly recorded")
	} else {
		fmt.Fprintln(f, "Source: reused previous sample")
	}
	fmt.Fprintln(f, "")
}

// writeSampleFiles outputs the capture artifact locations.
func writeSampleFiles(f *os.File, data ReportData) {
	writeSection(f, "Sample Files")
	fmt.Fprintf(f, "Audio:       %s\n", data.SamplePath)
	fmt.Fprintf(f, "Spectrogram: %s\n", data.SpectrumPath)
	fmt.Fprintf(f, "Statistics:  %s\n", data.StatsPath)
	fmt.Fprintln(f, "")
}

// writeNoiseProfile outputs the measured spectrum table.
func writeNoiseProfile(f *os.File, p *stats.Profile) {
	writeSection(f, "Noise Profile")

	if p == nil {
		fmt.Fprintln(f, "No profile available - analysis did not complete")
		fmt.Fprintln(f, "")
		return
	}

	table := &MetricTable{}
	table.AddMetricRow("Centre Frequency", p.MeanFrequency, 1, "Hz", describeCentre(p.MeanFrequency))
	table.AddMetricRow("Spread", p.StdDev, 1, "Hz", describeSpread(p.StdDev))
	table.AddMetricRow("Mean Amplitude", p.MeanAmplitude, 4, "", "")
	table.AddRow("Level", formatMetricSigned(p.VolumeDB, 1), "dB", describeLevel(p.VolumeDB))

	fmt.Fprint(f, table.String())
	fmt.Fprintln(f, "")
}

// writeMainsHumCheck outputs the mains harmonic proximity verdict.
func writeMainsHumCheck(f *os.File, data ReportData) {
	writeSection(f, "Mains Hum Check")

	if data.Profile == nil {
		fmt.Fprintln(f, "Skipped - no profile available")
		fmt.Fprintln(f, "")
		return
	}

	fmt.Fprintf(f, "Local mains frequency: %d Hz\n", data.MainsHz)
	if data.HumDominated {
		fmt.Fprintf(f, "Result: ⚠ spectrum centre %.1f Hz sits on a mains harmonic\n", data.Profile.MeanFrequency)
		fmt.Fprintln(f, "The sample is likely dominated by electrical hum rather than room tone.")
	} else {
		fmt.Fprintln(f, "Result: ✓ spectrum clear of mains harmonics")
	}
	fmt.Fprintln(f, "")
}

// writeRecordingTips outputs prioritised advice derived from the profile.
func writeRecordingTips(f *os.File, data ReportData) {
	tips := GenerateSampleTips(data.Profile, data.HumDominated, data.MainsHz)
	if len(tips) == 0 {
		return
	}

	writeSection(f, "Recording Tips")
	for i, tip := range tips {
		fmt.Fprintf(f, "%d. %s\n", i+1, tip.Message)
	}
	fmt.Fprintln(f, "")
}
