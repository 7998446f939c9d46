// Package pulse drives per-stream playback volume on the PulseAudio server
// through the pactl binary.
package pulse

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// SinkInput is one active playback stream tracked by the sound server.
type SinkInput struct {
	Index   int
	AppName string
}

// Client wraps the pactl binary.
type Client struct {
	binary string
}

// New returns a Client invoking the given pactl binary.
func New(binary string) *Client {
	return &Client{binary: binary}
}

var (
	indexRe = regexp.MustCompile(`^Sink Input #(\d+)`)
	appRe   = regexp.MustCompile(`application\.name = "(.*)"`)
)

// SinkInputs lists the server's active playback streams with their
// application names.
func (c *Client) SinkInputs(ctx context.Context) ([]SinkInput, error) {
	out, err := exec.CommandContext(ctx, c.binary, "list", "sink-inputs").Output()
	if err != nil {
		return nil, fmt.Errorf("pactl list sink-inputs: %w", err)
	}
	return parseSinkInputs(string(out))
}

// parseSinkInputs walks pactl's indented listing. Each "Sink Input #N"
// header opens a new entry; the application.name property within the
// following block is attached to it.
func parseSinkInputs(out string) ([]SinkInput, error) {
	var inputs []SinkInput
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if m := indexRe.FindStringSubmatch(line); m != nil {
			idx, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("bad sink input index %q", m[1])
			}
			inputs = append(inputs, SinkInput{Index: idx})
			continue
		}
		if m := appRe.FindStringSubmatch(line); m != nil && len(inputs) > 0 {
			inputs[len(inputs)-1].AppName = m[1]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pactl output: %w", err)
	}
	return inputs, nil
}

// FindByAppName returns the first stream registered under the given
// application name.
func FindByAppName(inputs []SinkInput, name string) (SinkInput, bool) {
	for _, si := range inputs {
		if si.AppName == name {
			return si, true
		}
	}
	return SinkInput{}, false
}

// SetVolume overwrites the stream's volume with a linear gain in [0,1].
// Each call is a full overwrite; there is no smoothing between polls.
func (c *Client) SetVolume(ctx context.Context, index int, gain float64) error {
	arg := gainToPercent(gain)
	cmd := exec.CommandContext(ctx, c.binary, "set-sink-input-volume", strconv.Itoa(index), arg)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pactl set-sink-input-volume %d %s: %w", index, arg, err)
	}
	return nil
}

// gainToPercent renders a linear gain as the percentage argument pactl
// expects, clamped to [0,1] first.
func gainToPercent(gain float64) string {
	if gain < 0 {
		gain = 0
	} else if gain > 1 {
		gain = 1
	}
	return strconv.Itoa(int(math.Round(gain*100))) + "%"
}
