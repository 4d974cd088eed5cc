package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chording/chord"
	"github.com/spf13/cobra"
)

var transposeSemitones int

func init() {
	transposeCmd.Flags().IntVarP(&transposeSemitones, "semitones", "s", 0, "semitones to shift by, negative to go down")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file]",
	Short: "Transposes every chord in a sheet",
	Long:  `Transposes every chord in a sheet read from file, or stdin when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), chord.TransposeText(text, transposeSemitones))
		return nil
	},
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading sheet: %w", err)
	}
	return string(b), nil
}
