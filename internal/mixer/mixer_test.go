package mixer

import (
	"math"
	"strings"
	"testing"
)

const amixerOutput = `Simple mixer control 'Master',0
  Capabilities: pvolume pswitch pswitch-joined
  Playback channels: Front Left - Front Right
  Limits: Playback 0 - 65536
  Mono:
  Front Left: Playback 32768 [50%] [on]
  Front Right: Playback 32768 [50%] [on]
`

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    Volume
		wantErr bool
	}{
		{
			name:   "unmuted at 50 percent",
			output: amixerOutput,
			want:   Volume{Percent: 50, Muted: false},
		},
		{
			name:   "muted control",
			output: strings.ReplaceAll(amixerOutput, "[on]", "[off]"),
			want:   Volume{Percent: 50, Muted: true},
		},
		{
			name:   "full volume",
			output: strings.ReplaceAll(amixerOutput, "[50%]", "[100%]"),
			want:   Volume{Percent: 100, Muted: false},
		},
		{
			name:    "percentage out of range",
			output:  strings.ReplaceAll(amixerOutput, "[50%]", "[150%]"),
			wantErr: true,
		},
		{
			name:    "no percentage marker",
			output:  "Simple mixer control 'Master',0\n  Capabilities: pswitch\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStatus(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseStatus should have failed")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseStatus failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseStatus = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGain(t *testing.T) {
	tests := []struct {
		name string
		vol  Volume
		want float64
	}{
		{"muted overrides percentage", Volume{Percent: 70, Muted: true}, 0.0},
		{"unmuted full volume", Volume{Percent: 100, Muted: false}, 1.0},
		{"unmuted half volume", Volume{Percent: 50, Muted: false}, 0.5},
		{"unmuted zero volume", Volume{Percent: 0, Muted: false}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vol.Gain(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Gain() = %f, want %f", got, tt.want)
			}
		})
	}
}
