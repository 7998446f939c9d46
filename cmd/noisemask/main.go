package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/morganrivers/noisemask/internal/cli"
	"github.com/morganrivers/noisemask/internal/config"
	"github.com/morganrivers/noisemask/internal/hum"
	"github.com/morganrivers/noisemask/internal/logging"
	"github.com/morganrivers/noisemask/internal/masker"
	"github.com/morganrivers/noisemask/internal/mixer"
	"github.com/morganrivers/noisemask/internal/pulse"
	"github.com/morganrivers/noisemask/internal/sox"
	"github.com/morganrivers/noisemask/internal/stats"
	"github.com/morganrivers/noisemask/internal/store"
	"github.com/morganrivers/noisemask/internal/ui"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version  bool   `short:"v" help:"Show version information"`
	Config   string `short:"c" type:"path" help:"Path to TOML config file (optional)"`
	Logs     bool   `help:"Write a noise profile report next to the sample"`
	Duration int    `short:"d" help:"Seconds of room noise to record (overrides config)"`
	DataDir  string `help:"Directory for samples and reports (overrides config)"`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("noisemask"),
		kong.Description("Adaptive background noise masker"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// The capture and playback chain shells out to sox/play, and volume
	// mirroring needs amixer and pactl. Neither exists on Windows.
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		cli.PrintError(fmt.Sprintf("unsupported platform %q - noisemask needs SoX and a Unix audio stack", runtime.GOOS))
		os.Exit(1)
	}

	cfg, err := config.Load(cliArgs.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	if cliArgs.Duration > 0 {
		cfg.RecordSeconds = cliArgs.Duration
	}
	if cliArgs.DataDir != "" {
		cfg.DataDir = cliArgs.DataDir
	}

	// Debug log file; the terminal belongs to the TUI
	log := zerolog.Nop()
	if logFile, err := os.OpenFile("noisemask-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer logFile.Close()
		log = zerolog.New(logFile).With().Timestamp().Logger()
	}

	st := store.New(cfg.DataDir)
	if err := st.Ensure(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	// Ask about reusing the previous sample before the TUI takes the terminal
	recordNew := true
	if st.HasStats() {
		choice, err := cli.PromptSampleChoice(os.Stdin, os.Stdout)
		if err != nil {
			cli.PrintError(fmt.Sprintf("could not read answer: %v", err))
			os.Exit(1)
		}
		recordNew = choice == cli.RecordNew
	}

	// Mirroring needs an ALSA mixer and a PulseAudio server; macOS has
	// neither, so there we just play at the measured level.
	mirroring := runtime.GOOS == "linux"

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := ui.NewModel(recordNew, cfg.RecordSeconds, mirroring)
	p := tea.NewProgram(model, tea.WithAltScreen())

	pipelineDone := make(chan error, 1)
	go func() {
		pipelineDone <- runPipeline(ctx, p, pipelineEnv{
			cfg:       cfg,
			store:     st,
			log:       log,
			recordNew: recordNew,
			mirroring: mirroring,
			writeLogs: cliArgs.Logs,
		})
	}()

	finalModel, uiErr := p.Run()

	// Quitting the UI stops the pipeline and the generator with it
	cancel()
	pipelineErr := <-pipelineDone

	if uiErr != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", uiErr))
		os.Exit(1)
	}
	if m, ok := finalModel.(ui.Model); ok && m.Err != nil {
		cli.PrintError(m.Err.Error())
		os.Exit(1)
	}
	if pipelineErr != nil {
		cli.PrintError(pipelineErr.Error())
		os.Exit(1)
	}
}

// pipelineEnv bundles everything the background pipeline needs.
type pipelineEnv struct {
	cfg       *config.Config
	store     *store.Store
	log       zerolog.Logger
	recordNew bool
	mirroring bool
	writeLogs bool
}

// runPipeline records (or reuses) the room sample, analyses it, then plays
// matched band noise until ctx is cancelled. Every state change is pushed to
// the UI via p.Send; errors are both sent and returned.
func runPipeline(ctx context.Context, p *tea.Program, env pipelineEnv) error {
	fail := func(err error) error {
		if ctx.Err() != nil {
			// Shutting down; whatever failed, failed because of it
			return nil
		}
		env.log.Error().Err(err).Msg("pipeline failed")
		p.Send(ui.ErrorMsg{Err: err})
		return err
	}

	tool := sox.New(env.cfg.SoxBin, env.cfg.PlayBin)

	if env.recordNew {
		p.Send(ui.StageMsg{Stage: ui.StageRecording})
		env.log.Info().Int("seconds", env.cfg.RecordSeconds).Msg("recording room sample")
		if err := tool.Record(ctx, env.store.InputPath(), env.cfg.RecordSeconds); err != nil {
			return fail(fmt.Errorf("recording failed: %w", err))
		}
		if _, err := env.store.ArchiveInput(time.Now()); err != nil {
			env.log.Warn().Err(err).Msg("failed to archive sample copy")
		}
	}

	p.Send(ui.StageMsg{Stage: ui.StageAnalyzing})
	if err := tool.Spectrogram(ctx, env.store.InputPath(), env.store.SpectrumPath()); err != nil {
		return fail(fmt.Errorf("spectrogram failed: %w", err))
	}
	table, err := tool.Stats(ctx, env.store.InputPath())
	if err != nil {
		return fail(fmt.Errorf("spectrum analysis failed: %w", err))
	}
	if err := env.store.WriteStats(table); err != nil {
		return fail(err)
	}

	r, err := env.store.OpenStats()
	if err != nil {
		return fail(err)
	}
	bins, err := stats.ParseTable(r)
	r.Close()
	if err != nil {
		return fail(err)
	}
	profile, err := stats.Analyze(bins)
	if err != nil {
		return fail(err)
	}

	mainsHz := hum.LocalMainsHz()
	dominated := hum.Dominated(profile.MeanFrequency, mainsHz)
	env.log.Info().
		Float64("centre_hz", profile.MeanFrequency).
		Float64("spread_hz", profile.StdDev).
		Float64("volume_db", profile.VolumeDB).
		Int("mains_hz", mainsHz).
		Bool("hum_dominated", dominated).
		Msg("analysed room sample")
	p.Send(ui.ProfileMsg{Profile: profile, MainsHz: mainsHz, HumDominated: dominated})

	if env.writeLogs {
		reportData := logging.ReportData{
			SamplePath:   env.store.InputPath(),
			SpectrumPath: env.store.SpectrumPath(),
			StatsPath:    env.store.StatsPath(),
			RecordedNew:  env.recordNew,
			Profile:      profile,
			MainsHz:      mainsHz,
			HumDominated: dominated,
			GeneratedAt:  time.Now(),
		}
		if err := logging.WriteReport(env.store.ReportPath(), reportData); err != nil {
			env.log.Warn().Err(err).Msg("failed to write report")
		}
	}

	p.Send(ui.StageMsg{Stage: ui.StageStarting})
	mk := &masker.Masker{
		Mixer:    mixer.New(env.cfg.AmixerBin, env.cfg.MixerControl),
		Streams:  pulse.New(env.cfg.PactlBin),
		Player:   &sox.Player{},
		PlayBin:  env.cfg.PlayBin,
		AppName:  env.cfg.SinkAppName,
		Interval: env.cfg.PollInterval,
		Settle:   env.cfg.SettleDelay,
		Log:      env.log,
	}

	if !env.mirroring {
		p.Send(ui.StageMsg{Stage: ui.StagePlaying})
		if err := mk.PlayOnce(ctx, profile); err != nil {
			return fail(fmt.Errorf("playback failed: %w", err))
		}
		p.Send(ui.DoneMsg{})
		return nil
	}

	si, err := mk.EnsureStream(ctx, profile)
	if err != nil {
		return fail(fmt.Errorf("could not start masking stream: %w", err))
	}

	p.Send(ui.StageMsg{Stage: ui.StagePlaying})
	err = mk.Monitor(ctx, si, func(u masker.Update) {
		p.Send(ui.VolumeMsg{Volume: u.Volume, Gain: u.Gain})
	})
	if err != nil {
		return fail(err)
	}

	p.Send(ui.DoneMsg{})
	return nil
}
