// Package mixer reads the host output volume through the ALSA amixer binary.
package mixer

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

// Volume is a snapshot of the host mixer control state.
type Volume struct {
	Percent int // 0-100
	Muted   bool
}

// Gain converts the snapshot to a linear playback gain in [0,1].
// Mute wins unconditionally: a muted host means a silent mask, whatever the
// volume slider says.
func (v Volume) Gain() float64 {
	if v.Muted {
		return 0
	}
	return float64(v.Percent) / 100.0
}

var (
	percentRe = regexp.MustCompile(`\[(\d{1,3})%\]`)
	switchRe  = regexp.MustCompile(`\[(on|off)\]`)
)

// Mixer wraps the amixer binary for a single playback control.
type Mixer struct {
	binary  string
	control string
}

// New returns a Mixer for the given amixer binary and control name
// (typically "amixer" and "Master").
func New(binary, control string) *Mixer {
	return &Mixer{binary: binary, control: control}
}

// Status invokes `amixer sget <control>` and parses the current volume
// percentage and mute switch from its output.
func (m *Mixer) Status(ctx context.Context) (Volume, error) {
	out, err := exec.CommandContext(ctx, m.binary, "sget", m.control).Output()
	if err != nil {
		return Volume{}, fmt.Errorf("amixer sget %s: %w", m.control, err)
	}
	return parseStatus(string(out))
}

// parseStatus extracts the first "[NN%]" and "[on|off]" markers from amixer
// output. A missing percentage or one outside [0,100] is an error.
func parseStatus(out string) (Volume, error) {
	pm := percentRe.FindStringSubmatch(out)
	if pm == nil {
		return Volume{}, fmt.Errorf("no volume percentage in mixer output")
	}
	pct, err := strconv.Atoi(pm[1])
	if err != nil || pct < 0 || pct > 100 {
		return Volume{}, fmt.Errorf("volume percentage %q out of range", pm[1])
	}

	v := Volume{Percent: pct}
	if sm := switchRe.FindStringSubmatch(out); sm != nil {
		v.Muted = sm[1] == "off"
	}
	return v, nil
}
