package cmd

import (
	"fmt"

	"github.com/jsphweid/chording/constants"
	"github.com/jsphweid/chording/tone"
	"github.com/spf13/cobra"
)

var (
	toneOut     string
	toneSeconds float64

	clickOut    string
	clickBPM    float64
	clickBeats  int
	clickBars   int
	clickAccent bool
)

func init() {
	toneCmd.Flags().StringVarP(&toneOut, "out", "o", "", "wav file to write, defaults to <note>.wav")
	toneCmd.Flags().Float64VarP(&toneSeconds, "duration", "d", 2, "length in seconds")
	rootCmd.AddCommand(toneCmd)

	clickCmd.Flags().StringVarP(&clickOut, "out", "o", "click.wav", "wav file to write")
	clickCmd.Flags().Float64VarP(&clickBPM, "bpm", "b", 120, "beats per minute")
	clickCmd.Flags().IntVar(&clickBeats, "beats", 4, "beats per bar")
	clickCmd.Flags().IntVar(&clickBars, "bars", 4, "number of bars")
	clickCmd.Flags().BoolVar(&clickAccent, "accent", true, "accent the first beat of every bar")
	rootCmd.AddCommand(clickCmd)
}

var toneCmd = &cobra.Command{
	Use:   "tone <note>",
	Short: "Writes a reference tone",
	Long:  `Writes a sine reference tone for a note such as A4 or Eb2 to a wav file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := toneOut
		if out == "" {
			out = args[0] + ".wav"
		}
		if err := tone.WriteNote(out, args[0], toneSeconds, constants.DefaultSampleRate); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Writes a metronome click track",
	Long:  `Writes a metronome click track to a wav file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := tone.Metronome{BPM: clickBPM, BeatsPerBar: clickBeats, Accent: clickAccent}
		if err := m.Write(clickOut, clickBars, constants.DefaultSampleRate); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", clickOut)
		return nil
	},
}
