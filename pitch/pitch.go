package pitch

import "math"

const (
	// lags below this are DC and sub-audio artifacts
	MinLag = 20

	// a peak must reach this fraction of the zero-lag autocorrelation
	DefaultConfidence = 0.3

	// RMS below this is treated as silence and never reaches autocorrelation
	DefaultRMSGate = 0.01

	MinFrequency = 70.0
	MaxFrequency = 800.0
)

// Detector estimates the fundamental of a mono window by autocorrelation.
// The zero value is not usable; start from NewDetector.
type Detector struct {
	MinLag     int
	Confidence float64

	// Refine moves the peak off the integer lag grid with a parabolic fit.
	Refine bool
}

func NewDetector() *Detector {
	return &Detector{MinLag: MinLag, Confidence: DefaultConfidence}
}

// DetectPitch runs the default detector. ok is false when there is no clear
// periodicity in the window.
func DetectPitch(buffer []float64, sampleRate float64) (float64, bool) {
	return NewDetector().Detect(buffer, sampleRate)
}

func (d *Detector) Detect(buffer []float64, sampleRate float64) (float64, bool) {
	n := len(buffer)
	maxLag := n / 2
	if sampleRate <= 0 || d.MinLag < 1 || maxLag < d.MinLag+1 {
		return 0, false
	}

	r0 := autocorrelate(buffer, 0)
	if r0 <= 0 {
		return 0, false
	}

	prev := autocorrelate(buffer, d.MinLag-1)
	curr := autocorrelate(buffer, d.MinLag)
	for lag := d.MinLag; lag < maxLag; lag++ {
		next := autocorrelate(buffer, lag+1)
		if curr > prev && curr > next {
			if curr < d.Confidence*r0 {
				return 0, false
			}
			best := float64(lag)
			if d.Refine {
				best += parabolicOffset(prev, curr, next)
			}
			return sampleRate / best, true
		}
		prev, curr = curr, next
	}
	return 0, false
}

// autocorrelate is normalized by the number of overlapping samples so longer
// lags are not penalised for their shorter overlap.
func autocorrelate(buffer []float64, lag int) float64 {
	n := len(buffer) - lag
	if n <= 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += buffer[i] * buffer[i+lag]
	}
	return sum / float64(n)
}

// parabolicOffset is the vertex of the parabola through three points centred
// on a local maximum; always within (-0.5, 0.5).
func parabolicOffset(prev, curr, next float64) float64 {
	denom := prev - 2*curr + next
	if denom == 0 {
		return 0
	}
	return 0.5 * (prev - next) / denom
}

func RMS(buffer []float64) float64 {
	if len(buffer) == 0 {
		return 0
	}
	var sum float64
	for _, v := range buffer {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buffer)))
}

func InRange(frequency float64) bool {
	return frequency >= MinFrequency && frequency <= MaxFrequency
}
