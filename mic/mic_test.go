package mic

import (
	"testing"

	"github.com/jsphweid/chording/constants"
	"github.com/stretchr/testify/assert"
)

func TestNewSourceDefaults(t *testing.T) {
	s := NewSource()
	assert.Equal(t, float64(constants.DefaultSampleRate), s.SampleRate)
	assert.Equal(t, constants.DefaultWindowSize, s.FramesPerBuffer)
}

func TestCopy32(t *testing.T) {
	assert := assert.New(t)

	dst := make([]float64, 2)
	assert.Equal(2, copy32(dst, []float32{0.5, -0.25, 1}))
	assert.Equal([]float64{0.5, -0.25}, dst)

	dst = make([]float64, 4)
	assert.Equal(1, copy32(dst, []float32{0.125}))
	assert.Equal([]float64{0.125, 0, 0, 0}, dst)
}
