// Package masker runs the playback stage: it keeps the band-noise
// generator's stream gain mirroring the host output volume until cancelled.
package masker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/morganrivers/noisemask/internal/mixer"
	"github.com/morganrivers/noisemask/internal/pulse"
	"github.com/morganrivers/noisemask/internal/sox"
	"github.com/morganrivers/noisemask/internal/stats"
)

// VolumeReader yields the current host mixer state.
type VolumeReader interface {
	Status(ctx context.Context) (mixer.Volume, error)
}

// StreamControl enumerates playback streams and sets their gain on the
// sound server.
type StreamControl interface {
	SinkInputs(ctx context.Context) ([]pulse.SinkInput, error)
	SetVolume(ctx context.Context, index int, gain float64) error
}

// Masker owns the generator process and the volume mirroring loop.
type Masker struct {
	Mixer   VolumeReader
	Streams StreamControl
	Player  *sox.Player
	PlayBin string

	AppName  string        // application.name the generator registers under
	Interval time.Duration // poll period
	Settle   time.Duration // wait after starting the generator

	Log zerolog.Logger
}

// Update is one observation of the mirroring loop, reported after every
// successful poll.
type Update struct {
	Volume mixer.Volume
	Gain   float64
}

// EnsureStream finds the generator's sink input on the sound server,
// starting the generator at a reduced level first if it is not yet playing.
// If the generator was started here but its stream never appears, it is
// terminated before the error is returned.
func (m *Masker) EnsureStream(ctx context.Context, profile *stats.Profile) (pulse.SinkInput, error) {
	if si, ok := m.findStream(ctx); ok {
		return si, nil
	}

	if err := m.Player.StartBandReduced(m.PlayBin, profile.MeanFrequency, profile.StdDev, profile.VolumeDB); err != nil {
		return pulse.SinkInput{}, err
	}
	m.Log.Info().
		Float64("centre_hz", profile.MeanFrequency).
		Float64("spread_hz", profile.StdDev).
		Msg("started noise generator")

	// Give the server a moment to register the new stream.
	select {
	case <-ctx.Done():
		m.StopPlayer()
		return pulse.SinkInput{}, ctx.Err()
	case <-time.After(m.Settle):
	}

	if si, ok := m.findStream(ctx); ok {
		return si, nil
	}
	m.StopPlayer()
	return pulse.SinkInput{}, fmt.Errorf("generator stream %q not found on sound server", m.AppName)
}

func (m *Masker) findStream(ctx context.Context) (pulse.SinkInput, bool) {
	inputs, err := m.Streams.SinkInputs(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.Log.Warn().Err(err).Msg("failed to list sink inputs")
		}
		return pulse.SinkInput{}, false
	}
	return pulse.FindByAppName(inputs, m.AppName)
}

// Monitor mirrors the host volume onto the generator stream until ctx is
// cancelled. Each poll is an unconditional overwrite; the most recent
// successful poll wins. Poll errors are logged and the loop carries on.
// The generator's process group is terminated on the way out.
func (m *Masker) Monitor(ctx context.Context, sink pulse.SinkInput, onUpdate func(Update)) error {
	defer m.StopPlayer()

	// Push the current volume immediately rather than waiting a full tick.
	m.pollOnce(ctx, sink, onUpdate)

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.pollOnce(ctx, sink, onUpdate)
		}
	}
}

func (m *Masker) pollOnce(ctx context.Context, sink pulse.SinkInput, onUpdate func(Update)) {
	vol, err := m.Mixer.Status(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.Log.Warn().Err(err).Msg("failed to read host volume")
		}
		return
	}

	gain := vol.Gain()
	if err := m.Streams.SetVolume(ctx, sink.Index, gain); err != nil {
		if ctx.Err() == nil {
			m.Log.Warn().Err(err).Int("sink", sink.Index).Msg("failed to set stream volume")
		}
		return
	}

	if onUpdate != nil {
		onUpdate(Update{Volume: vol, Gain: gain})
	}
}

// PlayOnce starts the generator at the measured level and blocks until it
// exits or ctx is cancelled. Used on hosts without a controllable sound
// server.
func (m *Masker) PlayOnce(ctx context.Context, profile *stats.Profile) error {
	if err := m.Player.StartBand(m.PlayBin, profile.MeanFrequency, profile.StdDev, profile.VolumeDB); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- m.Player.Wait() }()

	select {
	case <-ctx.Done():
		m.StopPlayer()
		<-done // reap before returning
		return nil
	case err := <-done:
		return err
	}
}

// StopPlayer terminates the generator's process group, logging rather than
// failing when the signal cannot be delivered.
func (m *Masker) StopPlayer() {
	if err := m.Player.Stop(); err != nil {
		m.Log.Warn().Err(err).Msg("failed to terminate noise generator")
	}
}
