package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/daycycle/audio"
	"github.com/lixenwraith/daycycle/constant"
	"github.com/lixenwraith/daycycle/core"
	"github.com/lixenwraith/daycycle/engine"
	"github.com/lixenwraith/daycycle/input"
	"github.com/lixenwraith/daycycle/phase"
	"github.com/lixenwraith/daycycle/render"
	"github.com/lixenwraith/daycycle/solar"
)

const startAuto = "auto"

type options struct {
	start         string
	lat, lon      float64
	phaseDuration time.Duration
	transition    time.Duration
	tick          time.Duration
	hud           bool
	chime         bool
	debug         bool
}

func defaultOptions() *options {
	return &options{
		start:         phase.Dawn.String(),
		phaseDuration: constant.PhaseDuration,
		transition:    constant.TransitionDuration,
		tick:          constant.FrameUpdateInterval,
	}
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.start, "start", o.start, "starting phase: dawn, day, dusk, night or auto (sun position at --lat/--lon)")
	fs.Float64Var(&o.lat, "lat", o.lat, "latitude in decimal degrees, used by --start auto")
	fs.Float64Var(&o.lon, "lon", o.lon, "longitude in decimal degrees, used by --start auto")
	fs.DurationVar(&o.phaseDuration, "phase-duration", o.phaseDuration, "length of each named phase")
	fs.DurationVar(&o.transition, "transition", o.transition, "glide time after a manual phase jump")
	fs.DurationVar(&o.tick, "tick", o.tick, "render interval")
	fs.BoolVar(&o.hud, "hud", o.hud, "show phase name and color in the bottom-left corner")
	fs.BoolVar(&o.chime, "chime", o.chime, "play a tone when a phase begins")
	fs.BoolVar(&o.debug, "debug", o.debug, "write a debug log to logs/daycycle.log")
}

// resolveStart turns --start into a named phase, consulting the sun for auto
func (o *options) resolveStart(now time.Time) (phase.ID, error) {
	if strings.EqualFold(o.start, startAuto) {
		loc := solar.Location{Lat: o.lat, Lon: o.lon}
		if err := loc.Validate(); err != nil {
			return phase.None, fmt.Errorf("--start auto: %w", err)
		}
		return solar.PhaseAt(now, loc), nil
	}

	id, err := phase.ParseID(o.start)
	if err != nil {
		return phase.None, fmt.Errorf("--start: %w", err)
	}
	if !id.Named() {
		return phase.None, fmt.Errorf("--start: %w: %s is not on the cycle", phase.ErrInvalidPhase, id)
	}
	return id, nil
}

func (o *options) validate() error {
	if o.tick <= 0 {
		return fmt.Errorf("--tick must be positive, got %s", o.tick)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "daycycle",
		Short: "Full-screen color cycling through dawn, day, dusk and night",
		Long: `daycycle fills the terminal with a single color that glides through
dawn → day → dusk → night and back again.

Keys:
  a  dawn      s  day
  d  dusk      f  night
  p, Space        pause / resume
  q, Esc, Ctrl+C  quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	bindFlags(cmd.Flags(), opts)
	return cmd
}

// prepare builds the scheduler; everything that can fail before the screen opens happens here
func prepare(opts *options, clock engine.TimeProvider) (*engine.Scheduler, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	table, err := phase.NewTable(opts.phaseDuration, opts.transition)
	if err != nil {
		return nil, err
	}

	start, err := opts.resolveStart(clock.Now())
	if err != nil {
		return nil, err
	}

	scheduler := engine.NewScheduler(table, clock)
	if err := scheduler.Initialize(start); err != nil {
		return nil, err
	}
	return scheduler, nil
}

func run(ctx context.Context, opts *options) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	clock := engine.NewPausableClock(nil)
	scheduler, err := prepare(opts, clock)
	if err != nil {
		return err
	}

	screen, err := render.OpenScreen()
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	sink := render.NewScreenSink(screen, opts.hud)
	defer sink.Close()

	observers := []render.Observer{sink, render.ObserverFunc(logPhase)}
	if opts.chime {
		sm := audio.NewSoundManager(audio.LoadAudioConfig())
		if err := sm.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without chime)", err)
		} else {
			defer sm.Cleanup()
			observers = append(observers, sm)
		}
	}

	var shutdown atomic.Bool
	renderLoop := render.NewLoop(scheduler, sink, opts.tick, &shutdown, observers...)
	inputLoop := input.NewLoop(input.NewScreenSource(screen), scheduler, nil, &shutdown).WithPauser(clock)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderDone := make(chan struct{})
	core.Go(func() {
		defer close(renderDone)
		renderLoop.Run()
	})

	inputDone := make(chan struct{})
	core.Go(func() {
		defer close(inputDone)
		inputLoop.Run()
	})

	select {
	case <-inputDone:
	case <-sigCtx.Done():
		log.Printf("signal received, shutting down")
		shutdown.Store(true)
	}

	// Finalize only after the last frame so Fini never races Show
	<-renderDone
	sink.Close()
	<-inputDone

	log.Printf("exit: %d frames, %d advances, %d forced, paused %s",
		renderLoop.Frames(), scheduler.Advances(), scheduler.Forced(), clock.TotalPauseDuration())
	return nil
}

func logPhase(p phase.Phase) {
	log.Printf("phase %s started at %s: %s → %s over %s (next %s)",
		p.ID, p.StartedAt.Format(time.TimeOnly), p.Start.Hex(), p.End.Hex(), p.Duration, p.Next)
}
