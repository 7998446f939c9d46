package ui

import (
	"github.com/morganrivers/noisemask/internal/mixer"
	"github.com/morganrivers/noisemask/internal/stats"
)

// StageMsg announces that the pipeline has moved on to a new stage
type StageMsg struct {
	Stage Stage
}

// ProfileMsg carries the measured room noise profile after analysis
type ProfileMsg struct {
	Profile      *stats.Profile
	MainsHz      int
	HumDominated bool
}

// VolumeMsg is one observation from the volume mirroring loop
type VolumeMsg struct {
	Volume mixer.Volume
	Gain   float64
}

// ErrorMsg indicates the pipeline failed and the UI should shut down
type ErrorMsg struct {
	Err error
}

// DoneMsg indicates the pipeline finished cleanly
type DoneMsg struct{}
