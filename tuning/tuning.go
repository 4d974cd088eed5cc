package tuning

import (
	"strings"
)

// Profile is one guitar tuning, low string first.
type Profile struct {
	Name        string
	Notes       [6]string
	Frequencies [6]float64
}

var (
	Standard = Profile{
		Name:        "Standard",
		Notes:       [6]string{"E2", "A2", "D3", "G3", "B3", "E4"},
		Frequencies: [6]float64{82.41, 110.00, 146.83, 196.00, 246.94, 329.63},
	}
	DropD = Profile{
		Name:        "Drop D",
		Notes:       [6]string{"D2", "A2", "D3", "G3", "B3", "E4"},
		Frequencies: [6]float64{73.42, 110.00, 146.83, 196.00, 246.94, 329.63},
	}
	OpenG = Profile{
		Name:        "Open G",
		Notes:       [6]string{"D2", "G2", "D3", "G3", "B3", "D4"},
		Frequencies: [6]float64{73.42, 98.00, 146.83, 196.00, 246.94, 293.66},
	}
	OpenD = Profile{
		Name:        "Open D",
		Notes:       [6]string{"D2", "A2", "D3", "F#3", "A3", "D4"},
		Frequencies: [6]float64{73.42, 110.00, 146.83, 185.00, 220.00, 293.66},
	}
	DADGAD = Profile{
		Name:        "DADGAD",
		Notes:       [6]string{"D2", "A2", "D3", "G3", "A3", "D4"},
		Frequencies: [6]float64{73.42, 110.00, 146.83, 196.00, 220.00, 293.66},
	}
	HalfStepDown = Profile{
		Name:        "Half Step Down",
		Notes:       [6]string{"Eb2", "Ab2", "Db3", "Gb3", "Bb3", "Eb4"},
		Frequencies: [6]float64{77.78, 103.83, 138.59, 185.00, 233.08, 311.13},
	}
)

var all = []Profile{Standard, DropD, OpenG, OpenD, DADGAD, HalfStepDown}

// All returns every built-in profile in display order.
func All() []Profile {
	res := make([]Profile, len(all))
	copy(res, all)
	return res
}

// Lookup finds a profile by name, ignoring case, spaces and dashes, so
// "drop-d" and "Drop D" both work.
func Lookup(name string) (Profile, bool) {
	key := normalize(name)
	for _, p := range all {
		if normalize(p.Name) == key {
			return p, true
		}
	}
	return Profile{}, false
}

func (p Profile) Targets() []float64 {
	return p.Frequencies[:]
}

func normalize(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(name))
}
