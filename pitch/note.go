package pitch

import (
	"math"
	"strconv"

	"github.com/jsphweid/chording/util"
)

const (
	A4 = 440.0

	// single tolerance for the perfect verdict, in cents either way
	PerfectTolerance = 5
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

type Status string

const (
	Perfect Status = "perfect"
	Sharp   Status = "sharp"
	Flat    Status = "flat"
)

// SemitonesFromA4 rounds to the nearest equal-tempered semitone; halves round
// away from zero.
func SemitonesFromA4(frequency float64) int {
	return int(math.Round(12 * math.Log2(frequency/A4)))
}

// NoteNameFor returns the nearest note with its octave, e.g. "A4" for 440 Hz.
// Non-positive frequencies have no name.
func NoteNameFor(frequency float64) string {
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return ""
	}
	// C is 9 semitones below A in the same octave
	fromC4 := SemitonesFromA4(frequency) + 9
	octave := 4 + floorDiv(fromC4, 12)
	return noteNames[util.Mod(fromC4, 12)] + strconv.Itoa(octave)
}

// FrequencyFor parses a note such as "E2", "F#3" or "Bb3" and returns its
// equal-tempered frequency.
func FrequencyFor(note string) (float64, bool) {
	if len(note) < 2 {
		return 0, false
	}
	name, rest := note[:1], note[1:]
	if rest[0] == '#' || rest[0] == 'b' {
		name, rest = note[:2], note[2:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	idx := -1
	for i := range noteNames {
		if noteNames[i] == name || flatNames[i] == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}
	fromA4 := (octave-4)*12 + idx - 9
	return A4 * math.Pow(2, float64(fromA4)/12), true
}

func CentsDeviation(frequency float64, target float64) int {
	return int(math.Round(1200 * math.Log2(frequency/target)))
}

func Classify(cents int) Status {
	switch {
	case cents > PerfectTolerance:
		return Sharp
	case cents < -PerfectTolerance:
		return Flat
	default:
		return Perfect
	}
}

// ClosestTarget returns the index of the target nearest to frequency. Ties go
// to the lowest index; an empty list yields -1.
func ClosestTarget(frequency float64, targets []float64) int {
	best := -1
	bestDiff := math.Inf(1)
	for i, target := range targets {
		diff := util.Abs(frequency - target)
		if diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
