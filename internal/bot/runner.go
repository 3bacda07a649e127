package bot

import (
	"context"
	"image"
	"time"

	"github.com/softpedal/lanebot/internal/capture"
	"github.com/softpedal/lanebot/internal/frame"
	"github.com/softpedal/lanebot/internal/inject"
	"github.com/softpedal/lanebot/internal/lane"
	"github.com/softpedal/lanebot/internal/reduce"
	"github.com/softpedal/lanebot/internal/syncx"
	"github.com/softpedal/lanebot/internal/trace"
)

// Binarizer reduces a capture to a two-level frame.
type Binarizer interface {
	Binarize(img *image.RGBA) (*frame.Frame, error)
}

// Event mirrors one applied key action for observers.
type Event struct {
	Time   time.Time `json:"time"`
	Kind   string    `json:"kind"`
	Column int       `json:"column"`
	Key    string    `json:"key"`
}

// Status is a point-in-time view of the loop for diagnostics.
type Status struct {
	Frames        uint64 `json:"frames"`
	ChangedFrames uint64 `json:"changed_frames"`
	Held          []bool `json:"held"`
	Stuck         []int  `json:"stuck,omitempty"`
}

// Config tunes the control loop.
type Config struct {
	PollWait     time.Duration // per-iteration wait; <=0 uses the default
	StartDelay   time.Duration // grace before the first frame; 0 uses the default, <0 means none
	HoldLimit    time.Duration // watchdog hold threshold
	WarnCooldown time.Duration // watchdog warning cooldown
	TrackChanges bool          // per-frame change stats for the monitor
}

// Runner executes the per-frame decision loop: grab, binarize, reduce,
// update lane state, inject. Strictly sequential, single goroutine; lane
// state is owned here for the lifetime of a run.
type Runner struct {
	grabber  capture.Grabber
	binarize Binarizer
	machine  *lane.Machine
	injector inject.Injector
	watchdog *Watchdog
	detector *capture.Detector

	pollWait   time.Duration
	startDelay time.Duration

	status   *syncx.RWGuard[Status]
	eventsCh chan Event
}

// New wires the collaborators into a runner. All validation happened at
// collaborator construction; the first frame can only fail operationally.
func New(grabber capture.Grabber, binarizer Binarizer, machine *lane.Machine, injector inject.Injector, cfg Config) *Runner {
	if cfg.PollWait <= 0 {
		cfg.PollWait = DefaultPollWait
	}
	if cfg.StartDelay == 0 {
		cfg.StartDelay = DefaultStartDelay
	}
	r := &Runner{
		grabber:    grabber,
		binarize:   binarizer,
		machine:    machine,
		injector:   injector,
		watchdog:   NewWatchdog(machine.Lanes(), cfg.HoldLimit, cfg.WarnCooldown),
		pollWait:   cfg.PollWait,
		startDelay: cfg.StartDelay,
		status:     syncx.NewGuard(Status{Held: machine.Held()}),
		eventsCh:   make(chan Event, eventBuffer),
	}
	if cfg.TrackChanges {
		r.detector = capture.NewDetector()
	}
	return r
}

// Events returns the channel observers read applied actions from.
func (r *Runner) Events() <-chan Event { return r.eventsCh }

// Status returns a snapshot of loop state for observers.
func (r *Runner) Status() Status { return r.status.Get() }

// Run executes the loop until ctx is cancelled or a collaborator fails.
// Cancellation is cooperative, checked once per iteration; there is no
// mid-iteration cancellation and no recovery from a failed iteration.
func (r *Runner) Run(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "bot_run")
	defer span.End()
	log := trace.Logger(ctx)

	if r.startDelay > 0 {
		log.Info("waiting before first frame", "delay", r.startDelay)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(r.startDelay):
		}
	}

	log.Info("bot loop running", "lanes", r.machine.Lanes(), "poll_wait", r.pollWait)

	for {
		if ctx.Err() != nil {
			log.Info("bot loop stopped", "frames", r.Status().Frames)
			return nil
		}
		if err := r.step(); err != nil {
			log.Error("bot iteration failed", "error", err)
			return err
		}
		time.Sleep(r.pollWait)
	}
}

// step runs one frame: the whole image-to-state, state-to-action pipeline.
func (r *Runner) step() error {
	img, err := r.grabber.Grab()
	if err != nil {
		return err
	}

	f, err := r.binarize.Binarize(img)
	if err != nil {
		return err
	}

	signals, err := reduce.Reduce(f, r.machine.Lanes())
	if err != nil {
		return err
	}

	actions, err := r.machine.Update(signals)
	if err != nil {
		return err
	}
	for _, a := range actions {
		if err := r.apply(a); err != nil {
			return err
		}
	}

	held := r.machine.Held()
	r.watchdog.Observe(held)

	changed := r.detector != nil && r.detector.Changed(img)
	r.status.Write(func(s *Status) {
		s.Frames++
		if changed {
			s.ChangedFrames++
		}
		s.Held = held
		s.Stuck = r.watchdog.stuckLanes()
	})
	return nil
}

// apply injects one action and mirrors it to observers without blocking.
func (r *Runner) apply(a lane.Action) error {
	var err error
	switch a.Kind {
	case lane.Press:
		err = r.injector.Press(a.Key)
	case lane.Release:
		err = r.injector.Release(a.Key)
	}
	if err != nil {
		return err
	}

	select {
	case r.eventsCh <- Event{Time: time.Now(), Kind: a.Kind.String(), Column: a.Column, Key: a.Key}:
	default:
	}
	return nil
}
