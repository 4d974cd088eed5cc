package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chording/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuningsCmd)
}

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "Lists the known tunings",
	Long:  `Lists the known tunings, low string first.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range tuning.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", p.Name, strings.Join(p.Notes[:], " "))
		}
	},
}

func lookupTuning(name string) (tuning.Profile, error) {
	p, ok := tuning.Lookup(name)
	if !ok {
		return tuning.Profile{}, fmt.Errorf("unknown tuning %q, see 'chording tunings'", name)
	}
	return p, nil
}
