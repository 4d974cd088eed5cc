package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chording",
	Short: "Chord sheet transposer and guitar tuner",
	Long: `chording transposes chord sheets, keeps a small library of them and
tunes a guitar from the microphone or from a wav file.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
