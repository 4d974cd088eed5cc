package cmd

import (
	"fmt"
	"time"

	"github.com/jsphweid/chording/constants"
	"github.com/jsphweid/chording/logger"
	"github.com/jsphweid/chording/pitch"
	"github.com/jsphweid/chording/tuner"
	"github.com/jsphweid/chording/wavfile"
	"github.com/spf13/cobra"
)

var (
	detectTuning string
	detectWindow int
	detectAll    bool
)

func init() {
	detectCmd.Flags().StringVarP(&detectTuning, "tuning", "t", constants.DefaultTuning, "tuning to compare against")
	detectCmd.Flags().IntVarP(&detectWindow, "window", "w", constants.DefaultWindowSize, "samples per analysis window")
	detectCmd.Flags().BoolVarP(&detectAll, "all", "a", false, "also print windows without a detection")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <file.wav>",
	Short: "Runs the tuner over a wav file",
	Long:  `Runs the tuner over a wav file window by window and prints one line per window.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := lookupTuning(detectTuning)
		if err != nil {
			return err
		}

		tu := tuner.New(wavfile.Source{Path: args[0]},
			tuner.WithProfile(profile),
			tuner.WithWindowSize(detectWindow),
			tuner.WithFrameInterval(time.Microsecond),
			tuner.WithLogger(logger.Get()),
		)

		out := cmd.OutOrStdout()
		window := 0
		detected := 0
		err = runToEnd(cmd.Context(), tu, func(res pitch.Result) {
			window++
			if res.Detected() {
				detected++
			} else if !detectAll {
				return
			}
			fmt.Fprintf(out, "%4d  %s\n", window, formatResult(res, profile))
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d of %d windows detected\n", detected, window)
		return nil
	},
}
