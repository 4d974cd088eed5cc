package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionUpTwiceThenReset(t *testing.T) {
	s := NewSession("C Am F G", "C")

	assert := assert.New(t)
	s.Up()
	assert.Equal("D Bm G A", s.Up())
	assert.Equal(2, s.Semitones())
	assert.Equal("D", s.Key())

	assert.Equal("C Am F G", s.Reset())
	assert.Equal(0, s.Semitones())
	assert.Equal("C", s.Key())
}

func TestSessionCounterIsNotWrapped(t *testing.T) {
	s := NewSession("G D/F# Em", "G")
	for i := 0; i < 14; i++ {
		s.Down()
	}

	assert := assert.New(t)
	assert.Equal(-14, s.Semitones())
	assert.Equal("F", s.Key())
	assert.Equal("F C/F# Dm", s.Text())
	assert.Equal("G D/F# Em", s.Reset())
}

func TestSessionResetAfterFullOctaveIsNoop(t *testing.T) {
	s := NewSession("Db Gb", "Db")
	s.Shift(7)
	s.Shift(5)

	assert := assert.New(t)
	assert.Equal(12, s.Semitones())
	assert.Equal("Db", s.Key())
	// both shifts went through sharp spelling; reset is a 12 step no-op
	assert.Equal("C# F#", s.Reset())
	assert.Equal(0, s.Semitones())
}

func TestSessionWithoutKey(t *testing.T) {
	s := NewSession("Am", "")
	s.Up()
	assert.Equal(t, "", s.Key())
	assert.Equal(t, "A#m", s.Text())
}
