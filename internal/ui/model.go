// Package ui provides the Bubbletea terminal user interface for noisemask
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganrivers/noisemask/internal/mixer"
	"github.com/morganrivers/noisemask/internal/stats"
)

// Stage identifies where the masking pipeline currently is
type Stage int

const (
	StageRecording Stage = iota
	StageAnalyzing
	StageStarting
	StagePlaying
)

// String returns the display name for a stage
func (s Stage) String() string {
	switch s {
	case StageRecording:
		return "Recording room sample"
	case StageAnalyzing:
		return "Analyzing noise spectrum"
	case StageStarting:
		return "Starting noise generator"
	case StagePlaying:
		return "Playing masking noise"
	default:
		return "Unknown"
	}
}

// Model is the Bubbletea model for the masking UI. It is driven entirely by
// messages the pipeline goroutine pushes via Program.Send.
type Model struct {
	// Pipeline state
	Stage       Stage
	RecordedNew bool // false when reusing a previous sample
	RecordSecs  int

	// Analysis results
	Profile      *stats.Profile
	MainsHz      int
	HumDominated bool

	// Volume mirroring state
	Volume     mixer.Volume
	Gain       float64
	HaveVolume bool
	Mirroring  bool // false on hosts where we only play, no gain control

	// Global state
	StartTime time.Time
	Done      bool
	Err       error

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model
func NewModel(recordedNew bool, recordSecs int, mirroring bool) Model {
	stage := StageRecording
	if !recordedNew {
		stage = StageAnalyzing
	}
	return Model{
		Stage:       stage,
		RecordedNew: recordedNew,
		RecordSecs:  recordSecs,
		Mirroring:   mirroring,
		StartTime:   time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StageMsg:
		m.Stage = msg.Stage

	case ProfileMsg:
		m.Profile = msg.Profile
		m.MainsHz = msg.MainsHz
		m.HumDominated = msg.HumDominated

	case VolumeMsg:
		m.Volume = msg.Volume
		m.Gain = msg.Gain
		m.HaveVolume = true

	case ErrorMsg:
		m.Err = msg.Err
		m.Done = true
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Width == 0 {
		return "Initializing...\n"
	}

	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderRunningView(m)
}
