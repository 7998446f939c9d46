// Package stats derives the noise profile from SoX frequency statistics.
package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoSignal indicates the captured sample carried no measurable energy.
var ErrNoSignal = errors.New("no audio input signal")

// Bin is a single row of the analyzer's frequency table.
type Bin struct {
	Frequency float64 // Hz
	Amplitude float64 // linear amplitude
}

// Profile describes the spectral shape of the captured ambient noise.
// MeanFrequency and StdDev parameterise the band-noise generator;
// VolumeDB sets its initial output level.
type Profile struct {
	MeanFrequency float64 // Hz, amplitude-weighted
	StdDev        float64 // Hz, amplitude-weighted
	MeanAmplitude float64 // linear
	VolumeDB      float64 // 10*log10(mean amplitude)
}

// ParseTable reads the analyzer's "stat -freq" output and returns the usable
// (frequency, amplitude) rows.
//
// SoX appends a multi-line summary block after the table; those lines do not
// parse as a float pair and are skipped. A table with no usable rows at all
// is an explicit error rather than a divide-by-zero further down the
// pipeline.
func ParseTable(r io.Reader) ([]Bin, error) {
	var bins []Bin
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		freq, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		amp, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		bins = append(bins, Bin{Frequency: freq, Amplitude: amp})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statistics table: %w", err)
	}
	if len(bins) == 0 {
		return nil, errors.New("statistics table contains no frequency rows")
	}
	return bins, nil
}

// Analyze computes the noise profile from the frequency table.
//
// Mean frequency and its standard deviation are amplitude-weighted, so loud
// bins pull the band centre towards themselves. With uniform amplitudes the
// weighted mean reduces to the plain arithmetic mean of the frequency
// column. A table whose amplitudes sum to zero fails with ErrNoSignal.
func Analyze(bins []Bin) (*Profile, error) {
	if len(bins) == 0 {
		return nil, errors.New("statistics table contains no frequency rows")
	}

	var ampSum float64
	for _, b := range bins {
		ampSum += b.Amplitude
	}
	if ampSum == 0 {
		return nil, ErrNoSignal
	}

	meanAmplitude := ampSum / float64(len(bins))

	var weighted float64
	for _, b := range bins {
		weighted += b.Frequency * b.Amplitude
	}
	mean := weighted / ampSum

	// Weighted variance around the weighted mean
	var varSum float64
	for _, b := range bins {
		d := b.Frequency - mean
		varSum += d * d * b.Amplitude
	}
	stdDev := math.Sqrt(varSum / ampSum)

	return &Profile{
		MeanFrequency: mean,
		StdDev:        stdDev,
		MeanAmplitude: meanAmplitude,
		VolumeDB:      AmplitudeToDB(meanAmplitude),
	}, nil
}

// AmplitudeToDB converts a linear mean amplitude to a level in decibels.
func AmplitudeToDB(amplitude float64) float64 {
	return 10 * math.Log10(amplitude)
}

// DBToLinear converts a decibel value to a linear scale factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
