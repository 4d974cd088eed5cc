package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var standard = []float64{82.41, 110.0, 146.83, 196.0, 246.94, 329.63}

func TestAnalyzeDetectsString(t *testing.T) {
	a := NewAnalyzer()
	a.Detector.Refine = true
	res := a.Analyze(sine(110, 0.5, 4096), testRate, standard)

	assert := assert.New(t)
	assert.True(res.Detected())
	assert.Equal("A2", res.Estimate.Note)
	assert.Equal(1, res.Estimate.String)
	assert.Equal(110.0, res.Estimate.Target)
	assert.Equal(Perfect, res.Estimate.Status)
}

func TestAnalyzeSharpAndFlat(t *testing.T) {
	a := NewAnalyzer()
	a.Detector.Refine = true

	// roughly 30 cents either side of G3
	sharp := a.Analyze(sine(199.4, 0.5, 4096), testRate, standard)
	flat := a.Analyze(sine(192.6, 0.5, 4096), testRate, standard)

	assert := assert.New(t)
	assert.Equal(3, sharp.Estimate.String)
	assert.Equal(Sharp, sharp.Estimate.Status)
	assert.Greater(sharp.Estimate.Cents, PerfectTolerance)
	assert.Equal(3, flat.Estimate.String)
	assert.Equal(Flat, flat.Estimate.Status)
	assert.Less(flat.Estimate.Cents, -PerfectTolerance)
}

func TestAnalyzeSilenceIsInsufficientSignal(t *testing.T) {
	res := NewAnalyzer().Analyze(make([]float64, 4096), testRate, standard)
	assert.Equal(t, InsufficientSignal, res.Reason)
	assert.False(t, res.Detected())
}

func TestAnalyzeQuietToneIsGated(t *testing.T) {
	res := NewAnalyzer().Analyze(sine(110, 0.005, 4096), testRate, standard)
	assert.Equal(t, InsufficientSignal, res.Reason)
}

func TestAnalyzeOutOfRange(t *testing.T) {
	res := NewAnalyzer().Analyze(sine(1200, 0.5, 4096), testRate, standard)
	assert.Equal(t, OutOfRange, res.Reason)
}

func TestAnalyzeNoPeriodicity(t *testing.T) {
	// a single click has energy but no repeating shape
	buf := make([]float64, 4096)
	for i := 0; i < 64; i++ {
		buf[i] = 1
	}
	res := NewAnalyzer().Analyze(buf, testRate, standard)
	assert.Equal(t, NoPeriodicity, res.Reason)
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "detected", Detected.String())
	assert.Equal(t, "out of range", OutOfRange.String())
}
