package logging

import (
	"fmt"
	"sort"

	"github.com/morganrivers/noisemask/internal/stats"
)

// SampleTip represents a single piece of actionable advice about the
// room sample, derived from the measured noise profile.
type SampleTip struct {
	Priority int    // Higher = more important (1-10)
	Message  string // Human-readable advice (1-2 sentences)
	RuleID   string // Identifier for testing/logging (e.g., "mains_hum")
}

// MaxSampleTips is the maximum number of tips to return.
const MaxSampleTips = 4

// GenerateSampleTips analyses the noise profile and returns prioritised
// suggestions for improving the sample or the masking result.
func GenerateSampleTips(p *stats.Profile, humDominated bool, mainsHz int) []SampleTip {
	if p == nil {
		return nil
	}

	var tips []SampleTip

	rules := []func(*stats.Profile, bool, int) *SampleTip{
		tipMainsHum,
		tipNearSilent,
		tipLoudRoom,
		tipNarrowSpectrum,
		tipSubBassCentre,
	}

	for _, rule := range rules {
		if tip := rule(p, humDominated, mainsHz); tip != nil {
			tips = append(tips, *tip)
		}
	}

	// Sort by priority (descending)
	sort.Slice(tips, func(i, j int) bool {
		return tips[i].Priority > tips[j].Priority
	})

	if len(tips) > MaxSampleTips {
		tips = tips[:MaxSampleTips]
	}

	return tips
}

// tipMainsHum fires when the spectrum centre sits on a mains harmonic.
func tipMainsHum(p *stats.Profile, humDominated bool, mainsHz int) *SampleTip {
	if !humDominated {
		return nil
	}
	return &SampleTip{
		Priority: 9,
		Message: fmt.Sprintf("The sample is dominated by %d Hz mains hum. "+
			"Check for ground loops or unshielded cables near the microphone, then record again.", mainsHz),
		RuleID: "mains_hum",
	}
}

// tipNearSilent fires for samples so quiet the masking noise would sit at
// the edge of audibility.
func tipNearSilent(p *stats.Profile, _ bool, _ int) *SampleTip {
	if p.VolumeDB >= -60 {
		return nil
	}
	return &SampleTip{
		Priority: 7,
		Message: fmt.Sprintf("The sample level is very low (%.1f dB), so the generated noise may be inaudible. "+
			"Record closer to the noise source or raise the capture gain.", p.VolumeDB),
		RuleID: "near_silent",
	}
}

// tipLoudRoom fires when the room is loud enough that masking on top of it
// adds little.
func tipLoudRoom(p *stats.Profile, _ bool, _ int) *SampleTip {
	if p.VolumeDB <= -10 {
		return nil
	}
	return &SampleTip{
		Priority: 5,
		Message: fmt.Sprintf("The room is already loud (%.1f dB). "+
			"Masking on top of strong background noise mostly adds level, not cover.", p.VolumeDB),
		RuleID: "loud_room",
	}
}

// tipNarrowSpectrum fires for tonal noise a narrow band mask tracks poorly.
func tipNarrowSpectrum(p *stats.Profile, _ bool, _ int) *SampleTip {
	if p.StdDev >= 30 {
		return nil
	}
	return &SampleTip{
		Priority: 4,
		Message: fmt.Sprintf("The noise is very tonal (spread ±%.0f Hz). "+
			"Band noise matched this narrowly can beat against the source; a longer sample may average it out.", p.StdDev),
		RuleID: "narrow_spectrum",
	}
}

// tipSubBassCentre fires when the energy sits below what small speakers
// reproduce.
func tipSubBassCentre(p *stats.Profile, _ bool, _ int) *SampleTip {
	if p.MeanFrequency >= 60 {
		return nil
	}
	return &SampleTip{
		Priority: 3,
		Message: fmt.Sprintf("The spectrum centre is at %.0f Hz, below what most small speakers reproduce. "+
			"The mask may be inaudible on laptop or desktop speakers.", p.MeanFrequency),
		RuleID: "sub_bass_centre",
	}
}
