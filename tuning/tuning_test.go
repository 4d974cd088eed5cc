package tuning

import (
	"testing"

	"github.com/jsphweid/chording/pitch"
	"github.com/stretchr/testify/assert"
)

func TestFrequenciesMatchNoteNames(t *testing.T) {
	for _, p := range All() {
		for i, note := range p.Notes {
			want, ok := pitch.FrequencyFor(note)
			assert.True(t, ok, "%v string %v", p.Name, i)
			assert.InDelta(t, want, p.Frequencies[i], 0.01, "%v string %v", p.Name, i)
		}
	}
}

func TestStringsAreLowToHigh(t *testing.T) {
	for _, p := range All() {
		for i := 1; i < len(p.Frequencies); i++ {
			assert.Greater(t, p.Frequencies[i], p.Frequencies[i-1], p.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	p, ok := Lookup("drop-d")
	assert.True(ok)
	assert.Equal(DropD, p)

	p, ok = Lookup("Half Step Down")
	assert.True(ok)
	assert.Equal("Eb2", p.Notes[0])

	_, ok = Lookup("nashville")
	assert.False(ok)
}

func TestAllIsACopy(t *testing.T) {
	profiles := All()
	profiles[0].Name = "changed"
	assert.Equal(t, "Standard", All()[0].Name)
}

func TestTargetsFeedClosestTarget(t *testing.T) {
	assert.Equal(t, 0, pitch.ClosestTarget(75, DropD.Targets()))
	assert.Equal(t, 3, pitch.ClosestTarget(186, OpenD.Targets()))
}
