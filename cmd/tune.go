package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chording/constants"
	"github.com/jsphweid/chording/logger"
	"github.com/jsphweid/chording/mic"
	"github.com/jsphweid/chording/pitch"
	"github.com/jsphweid/chording/tuner"
	"github.com/jsphweid/chording/tuning"
	"github.com/spf13/cobra"
)

var (
	tuneTuning string
	tuneWindow int
	tuneRate   float64
	tuneHold   time.Duration
)

func init() {
	tuneCmd.Flags().StringVarP(&tuneTuning, "tuning", "t", constants.DefaultTuning, "tuning to tune against")
	tuneCmd.Flags().IntVarP(&tuneWindow, "window", "w", constants.DefaultWindowSize, "samples per analysis window")
	tuneCmd.Flags().Float64VarP(&tuneRate, "rate", "r", constants.DefaultSampleRate, "input sample rate")
	tuneCmd.Flags().DurationVar(&tuneHold, "hold", time.Second, "how long the last reading stays on screen")
	rootCmd.AddCommand(tuneCmd)
}

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Tunes from the microphone",
	Long:  `Listens on the default input device and shows the closest string and how far off it is. Ctrl-C stops.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := lookupTuning(tuneTuning)
		if err != nil {
			return err
		}

		src := &mic.Source{SampleRate: tuneRate, FramesPerBuffer: tuneWindow}
		tu := tuner.New(src,
			tuner.WithProfile(profile),
			tuner.WithWindowSize(tuneWindow),
			tuner.WithLogger(logger.Get()),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		screen := newHoldingScreen(cmd.OutOrStdout(), profile, tuneHold)
		if err := tu.Start(ctx, screen.show); err != nil {
			return err
		}
		err = tu.Wait()
		screen.stop()
		return err
	},
}

// holdingScreen redraws one terminal line. A detection stays visible until
// no new detection has arrived for hold.
type holdingScreen struct {
	mu      sync.Mutex
	out     io.Writer
	profile tuning.Profile
	blank   func(f func())
	stopped bool
}

func newHoldingScreen(out io.Writer, profile tuning.Profile, hold time.Duration) *holdingScreen {
	return &holdingScreen{out: out, profile: profile, blank: debounce.New(hold)}
}

func (s *holdingScreen) show(res pitch.Result) {
	if !res.Detected() {
		return
	}
	s.draw(formatResult(res, s.profile))
	s.blank(func() {
		s.draw(formatResult(pitch.Result{Reason: pitch.InsufficientSignal}, s.profile))
	})
}

func (s *holdingScreen) draw(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	fmt.Fprintf(s.out, "\r\033[K%s", line)
}

// stop ends the line; a blank still pending from the debouncer is dropped.
func (s *holdingScreen) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		s.stopped = true
		fmt.Fprintln(s.out)
	}
}

// run an already configured tuner to completion; used by detect
func runToEnd(ctx context.Context, tu *tuner.Tuner, emit func(pitch.Result)) error {
	if err := tu.Start(ctx, emit); err != nil {
		return err
	}
	return tu.Wait()
}
