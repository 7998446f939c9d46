package sox

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"syscall"
)

// leadInSeconds of silence played before the noise starts, giving the sound
// server time to register the stream before the first gain overwrite lands.
const leadInSeconds = "2.0"

// reducedDB is subtracted from the measured level when the stream is started
// for the mirroring path, so the opening moments are not startling.
const reducedDB = 20.0

// Player owns the band-noise generator subprocess. The process runs in its
// own process group so Stop can signal the generator together with any
// children it spawned.
type Player struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

// StartBand starts the generator at the given output level with its console
// output attached, and returns immediately. Used by the one-shot playback
// path.
func (p *Player) StartBand(playBin string, centreHz, spreadHz, volumeDB float64) error {
	return p.start(playBin, bandArgs(centreHz, spreadHz, volumeDB), false)
}

// StartBandReduced starts the generator 20dB below the measured level with a
// short silent lead-in and its output discarded. The mirroring path then
// takes over the stream's gain through the sound server.
func (p *Player) StartBandReduced(playBin string, centreHz, spreadHz, volumeDB float64) error {
	args := append([]string{"-n", "trim", "0.0", leadInSeconds, ":"},
		synthArgs(centreHz, spreadHz, volumeDB-reducedDB)...)
	return p.start(playBin, args, true)
}

// bandArgs builds `play -n synth noise band <centre> <spread> vol <dB>dB`.
func bandArgs(centreHz, spreadHz, volumeDB float64) []string {
	return append([]string{"-n"}, synthArgs(centreHz, spreadHz, volumeDB)...)
}

func synthArgs(centreHz, spreadHz, volumeDB float64) []string {
	return []string{
		"synth", "noise", "band",
		formatHz(centreHz), formatHz(spreadHz),
		"vol", formatDB(volumeDB),
	}
}

func formatHz(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDB(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "dB"
}

func (p *Player) start(playBin string, args []string, discardOutput bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil {
		return errors.New("noise generator already started")
	}

	cmd := exec.Command(playBin, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if !discardOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start noise generator: %w", err)
	}
	p.cmd = cmd
	return nil
}

// Wait blocks until the generator exits and reaps it.
func (p *Player) Wait() error {
	p.mu.Lock()
	cmd := p.cmd
	p.mu.Unlock()

	if cmd == nil {
		return errors.New("noise generator not started")
	}
	return cmd.Wait()
}

// Stop sends SIGTERM to the generator's process group. Safe to call when the
// generator was never started or has already exited.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	pgid, err := syscall.Getpgid(p.cmd.Process.Pid)
	if err != nil {
		return nil // already gone
	}
	if err := syscall.Kill(-pgid, syscall.SIGTERM); err != nil && !errors.Is(err, syscall.ESRCH) {
		return fmt.Errorf("failed to terminate noise generator: %w", err)
	}
	return nil
}

// Running reports whether the generator was started and has not yet been
// reaped.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil && p.cmd.Process != nil && p.cmd.ProcessState == nil
}
