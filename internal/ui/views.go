package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderRunningView renders the main pipeline view
func renderRunningView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// Stage checklist
	b.WriteString(renderStageList(m))
	b.WriteString("\n")

	// Measured profile, once analysis is done
	if m.Profile != nil {
		b.WriteString(renderProfileBox(m))
		b.WriteString("\n")
	}

	// Live gain mirror while playing
	if m.Stage == StagePlaying && m.Mirroring {
		b.WriteString(renderGainBox(m))
		b.WriteString("\n")
	}

	// Footer
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render("Press q to stop masking and quit")
	b.WriteString("\n")
	b.WriteString(footer)
	b.WriteString("\n")

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#005F87")).
		Render("Noisemask 🎧 - Adaptive Background Noise Masker")

	var note string
	if m.RecordedNew {
		note = fmt.Sprintf("Sampling the room for %d seconds, then matching its spectrum", m.RecordSecs)
	} else {
		note = "Reusing the previous room sample"
	}
	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(note)

	return title + "\n" + subtitle
}

// renderStageList renders the pipeline stages with their status icons
func renderStageList(m Model) string {
	var b strings.Builder

	stages := []Stage{StageRecording, StageAnalyzing, StageStarting, StagePlaying}
	for _, s := range stages {
		if s == StageRecording && !m.RecordedNew {
			continue
		}
		b.WriteString(renderStageEntry(s, m.Stage))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStageEntry renders a single stage line
func renderStageEntry(s, current Stage) string {
	switch {
	case s < current:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		return fmt.Sprintf(" %s %s", icon, s)
	case s == current:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s...", icon, s)
	default:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s", icon, s)
	}
}

// renderProfileBox renders the measured noise profile
func renderProfileBox(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#005F87")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder
	content.WriteString("Room noise profile\n")
	content.WriteString(fmt.Sprintf("🎯 Centre: %.0f Hz | Spread: ±%.0f Hz\n",
		m.Profile.MeanFrequency, m.Profile.StdDev))
	content.WriteString(fmt.Sprintf("🔊 Level: %.1f dB", m.Profile.VolumeDB))

	if m.HumDominated {
		warn := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Render(fmt.Sprintf("\n⚠  Spectrum sits on a %d Hz mains harmonic - likely electrical hum", m.MainsHz))
		content.WriteString(warn)
	}

	return box.Render(content.String())
}

// renderGainBox renders the live volume mirror
func renderGainBox(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder
	content.WriteString("Mirroring host volume onto the noise stream\n")

	if !m.HaveVolume {
		content.WriteString("Waiting for first volume reading...")
		return box.Render(content.String())
	}

	content.WriteString(renderGainBar(m.Gain, 40))
	if m.Volume.Muted {
		muted := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000")).
			Render(" MUTED")
		content.WriteString(muted)
	}

	return box.Render(content.String())
}

// renderGainBar renders a gain bar
func renderGainBar(gain float64, width int) string {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}
	filled := int(gain * float64(width))
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentage := int(gain * 100)

	return fmt.Sprintf("%s %d%%", bar, percentage)
}

// renderCompletionSummary renders the final screen after the pipeline stops
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	if m.Err != nil {
		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000")).
			Render("✗ Masking stopped with an error")
		b.WriteString(header)
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("   %v\n", m.Err))
		return b.String()
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Masking stopped")
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.Profile != nil {
		b.WriteString(fmt.Sprintf(" ✓ Matched noise centred at %.0f Hz (±%.0f Hz) at %.1f dB\n",
			m.Profile.MeanFrequency, m.Profile.StdDev, m.Profile.VolumeDB))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	b.WriteString("The noise generator has been shut down ✓\n")

	return b.String()
}
