// Lanebot holds one key per lit lane of a rhythm-game play area. It samples
// a thin strip on the judgment line, binarizes it, and presses or releases
// each lane's key on signal edges until the quit key is pressed.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/softpedal/lanebot/internal/bot"
	"github.com/softpedal/lanebot/internal/capture"
	"github.com/softpedal/lanebot/internal/config"
	"github.com/softpedal/lanebot/internal/errors"
	"github.com/softpedal/lanebot/internal/inject"
	"github.com/softpedal/lanebot/internal/keymap"
	"github.com/softpedal/lanebot/internal/lane"
	"github.com/softpedal/lanebot/internal/monitor"
	"github.com/softpedal/lanebot/internal/vision"
)

var (
	cfg = config.Load()

	flagRegion      string
	flagColumns     int
	flagThreshold   int
	flagPollWaitMS  int
	flagStartDelay  float64
	flagQuitKey     string
	flagHoldWarn    float64
	flagMonitorAddr string
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:           "lanebot",
		Short:         "Hold keys for lit lanes of a rhythm-game play area",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagRegion, "region", cfg.Region, "capture rectangle x1,y1,x2,y2 on the judgment line")
	pf.IntVar(&flagColumns, "columns", cfg.Columns, "number of lanes in the map")
	pf.IntVar(&flagThreshold, "threshold", cfg.Threshold, "grayscale binarization cutoff")
	pf.StringVar(&flagQuitKey, "quit-key", cfg.QuitKey, "key that stops the bot")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bot against the configured region",
		RunE:  runBot,
	}
	runCmd.Flags().IntVar(&flagPollWaitMS, "poll-wait-ms", cfg.PollWaitMS, "per-iteration wait in milliseconds")
	runCmd.Flags().Float64Var(&flagStartDelay, "start-delay", cfg.StartDelaySec, "seconds to wait before the first frame")
	runCmd.Flags().Float64Var(&flagHoldWarn, "hold-warn", cfg.HoldWarnSec, "seconds a lane may stay held before warning")
	runCmd.Flags().StringVar(&flagMonitorAddr, "monitor-addr", cfg.MonitorAddr, "status server address; empty disables it")

	calibrateCmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Show the live thresholded strip to tune the capture region",
		RunE:  runCalibrate,
	}

	root.AddCommand(runCmd, calibrateCmd)

	if err := root.Execute(); err != nil {
		slog.Error("lanebot failed", "error", err)
		os.Exit(1)
	}
}

// buildPipeline constructs the validated capture and vision collaborators
// shared by both commands. All precondition checks happen here, before the
// first frame.
func buildPipeline() (*capture.ScreenGrabber, *vision.Binarizer, error) {
	region, err := capture.ParseRegion(flagRegion)
	if err != nil {
		return nil, nil, err
	}
	if flagQuitKey == "" {
		return nil, nil, errors.New(errors.CodeConfigInvalid, "quit key must not be empty")
	}
	binarizer, err := vision.NewBinarizer(flagThreshold)
	if err != nil {
		return nil, nil, err
	}
	return capture.NewScreenGrabber(region), binarizer, nil
}

func runBot(_ *cobra.Command, _ []string) error {
	grabber, binarizer, err := buildPipeline()
	if err != nil {
		return err
	}
	bindings, err := keymap.New(flagColumns)
	if err != nil {
		return err
	}

	runner := bot.New(grabber, binarizer, lane.NewMachine(bindings), inject.NewRobot(), bot.Config{
		PollWait:     time.Duration(flagPollWaitMS) * time.Millisecond,
		StartDelay:   time.Duration(flagStartDelay * float64(time.Second)),
		HoldLimit:    time.Duration(flagHoldWarn * float64(time.Second)),
		TrackChanges: flagMonitorAddr != "",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Quit key and OS signals both stop the loop cooperatively.
	go inject.WatchQuit(flagQuitKey, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down...")
		cancel()
	}()

	var httpServer *http.Server
	var mon *monitor.Server
	if flagMonitorAddr != "" {
		mon = monitor.New(runner)
		httpServer = &http.Server{
			Addr:         flagMonitorAddr,
			Handler:      mon.Handler(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("monitor listening", "addr", flagMonitorAddr)
			if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
				slog.Error("monitor server error", "error", err)
			}
		}()
	}

	slog.Info("lanebot starting", "region", flagRegion, "columns", flagColumns,
		"threshold", flagThreshold, "quit_key", flagQuitKey)

	runErr := runner.Run(ctx)

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("monitor shutdown error", "error", err)
		}
		mon.Stop()
	}

	return runErr
}

func runCalibrate(_ *cobra.Command, _ []string) error {
	grabber, binarizer, err := buildPipeline()
	if err != nil {
		return err
	}

	slog.Info("calibrating; place the region on the judgment line",
		"region", flagRegion, "threshold", flagThreshold)

	return binarizer.Preview(grabber, rune(flagQuitKey[0]))
}
