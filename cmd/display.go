package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jsphweid/chording/pitch"
	"github.com/jsphweid/chording/tuning"
	"github.com/jsphweid/chording/util"
)

var statusColors = map[pitch.Status]*color.Color{
	pitch.Perfect: color.New(color.FgGreen, color.Bold),
	pitch.Sharp:   color.New(color.FgYellow),
	pitch.Flat:    color.New(color.FgCyan),
}

// width of the needle on either side of center
const meterHalf = 10

// formatResult renders one reading as a single line, numbering strings the
// way guitarists do with the low string as 6. Results without a detection
// render as a dashed placeholder.
func formatResult(res pitch.Result, profile tuning.Profile) string {
	if !res.Detected() {
		return fmt.Sprintf("  --   %s", res.Reason)
	}

	est := res.Estimate
	line := fmt.Sprintf("%-4s %7.2f Hz", est.Note, est.Frequency)
	if est.String < 0 {
		return line
	}

	status := statusColors[est.Status].Sprintf("%+4d cents %-7s", est.Cents, est.Status)
	return fmt.Sprintf("%s  string %d (%s)  %s %s",
		line, len(profile.Notes)-est.String, profile.Notes[est.String], status, meter(est.Cents))
}

// meter draws cents as a needle on a scale from -50 to +50.
func meter(cents int) string {
	pos := util.Max(-meterHalf, util.Min(meterHalf, cents*meterHalf/50))

	cells := []rune(strings.Repeat("-", 2*meterHalf+1))
	cells[meterHalf] = '|'
	cells[meterHalf+pos] = '*'
	return "[" + string(cells) + "]"
}
