package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jsphweid/chording/constants"
	"github.com/jsphweid/chording/db"
	"github.com/spf13/cobra"
)

var (
	sheetTitle     string
	sheetArtist    string
	sheetKey       string
	sheetSemitones int
)

func init() {
	sheetAddCmd.Flags().StringVar(&sheetTitle, "title", "", "song title")
	sheetAddCmd.Flags().StringVar(&sheetArtist, "artist", "", "artist")
	sheetAddCmd.Flags().StringVar(&sheetKey, "key", "", "original key, e.g. Am")
	sheetAddCmd.MarkFlagRequired("title")
	sheetShowCmd.Flags().IntVarP(&sheetSemitones, "semitones", "s", 0, "show transposed by this many semitones")

	sheetCmd.AddCommand(sheetAddCmd, sheetListCmd, sheetShowCmd, sheetRmCmd)
	rootCmd.AddCommand(sheetCmd)
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Manages the chord sheet library",
	Long:  `Manages the chord sheet library stored at CHORDING_DB_PATH.`,
}

func withStore(f func(*db.Store) error) error {
	store, err := db.Open(constants.GetDBPath())
	if err != nil {
		return err
	}
	defer store.Close()
	return f(store)
}

var sheetAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Adds a sheet from file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		return withStore(func(store *db.Store) error {
			sheet, err := store.Add(sheetTitle, sheetArtist, sheetKey, body)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sheet.ID)
			return nil
		})
	},
}

var sheetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored sheets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *db.Store) error {
			sheets, err := store.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range sheets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Artist, s.Title, s.Key)
			}
			return w.Flush()
		})
	},
}

var sheetShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Prints a sheet, optionally transposed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *db.Store) error {
			sheet, err := store.GetTransposed(args[0], sheetSemitones)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s - %s", sheet.Title, sheet.Artist)
			if sheet.Key != "" {
				fmt.Fprintf(out, " (%s)", sheet.Key)
			}
			fmt.Fprintf(out, "\n\n%s\n", sheet.Body)
			return nil
		})
	},
}

var sheetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Deletes a sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *db.Store) error {
			return store.Delete(args[0])
		})
	},
}
