package tone

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/chording/pitch"
	"github.com/jsphweid/chording/wavfile"
)

var ErrInvalid = errors.New("invalid tone parameters")

// fade applied at both ends of a reference tone to avoid clicks
const fadeSeconds = 0.01

const (
	clickSeconds  = 0.03
	clickFreq     = 1000.0
	accentFreq    = 1500.0
	clickAmp      = 0.6
	accentAmp     = 0.9
	clickDecayTau = 0.008
)

// Sine renders a pure tone with short linear fades.
func Sine(freq, amp, seconds float64, sampleRate int) ([]float64, error) {
	if freq <= 0 || seconds <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: freq=%v seconds=%v rate=%v", ErrInvalid, freq, seconds, sampleRate)
	}

	n := int(seconds * float64(sampleRate))
	fade := int(fadeSeconds * float64(sampleRate))
	if 2*fade > n {
		fade = n / 2
	}

	buf := make([]float64, n)
	for i := range buf {
		g := amp
		if i < fade {
			g *= float64(i) / float64(fade)
		} else if n-1-i < fade {
			g *= float64(n-1-i) / float64(fade)
		}
		buf[i] = g * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return buf, nil
}

// Note renders the reference tone for a note name like "A4" or "Eb2".
func Note(note string, seconds float64, sampleRate int) ([]float64, error) {
	freq, ok := pitch.FrequencyFor(note)
	if !ok {
		return nil, fmt.Errorf("%w: unknown note %q", ErrInvalid, note)
	}
	return Sine(freq, 0.5, seconds, sampleRate)
}

type Metronome struct {
	BPM         float64
	BeatsPerBar int
	// first beat of every bar is pitched higher and louder
	Accent bool
}

// Click renders bars of the metronome as one decaying blip per beat.
func (m Metronome) Click(bars, sampleRate int) ([]float64, error) {
	if err := m.validate(bars, sampleRate); err != nil {
		return nil, err
	}

	beatLen := 60 / m.BPM * float64(sampleRate)
	beats := bars * m.BeatsPerBar
	buf := make([]float64, int(math.Ceil(beatLen*float64(beats))))

	clickLen := int(clickSeconds * float64(sampleRate))
	for b := 0; b < beats; b++ {
		freq, amp := clickFreq, clickAmp
		if m.Accent && b%m.BeatsPerBar == 0 {
			freq, amp = accentFreq, accentAmp
		}

		start := int(math.Round(float64(b) * beatLen))
		for i := 0; i < clickLen && start+i < len(buf); i++ {
			t := float64(i) / float64(sampleRate)
			buf[start+i] = amp * math.Exp(-t/clickDecayTau) * math.Sin(2*math.Pi*freq*t)
		}
	}
	return buf, nil
}

// BeatOffsets lists the sample index at which every beat starts.
func (m Metronome) BeatOffsets(bars, sampleRate int) ([]int, error) {
	if err := m.validate(bars, sampleRate); err != nil {
		return nil, err
	}
	beatLen := 60 / m.BPM * float64(sampleRate)
	res := make([]int, 0, bars*m.BeatsPerBar)
	for b := 0; b < bars*m.BeatsPerBar; b++ {
		res = append(res, int(math.Round(float64(b)*beatLen)))
	}
	return res, nil
}

func (m Metronome) validate(bars, sampleRate int) error {
	if m.BPM <= 0 || m.BeatsPerBar <= 0 || bars <= 0 || sampleRate <= 0 {
		return fmt.Errorf("%w: bpm=%v beats=%v bars=%v rate=%v", ErrInvalid, m.BPM, m.BeatsPerBar, bars, sampleRate)
	}
	return nil
}

func WriteNote(path, note string, seconds float64, sampleRate int) error {
	buf, err := Note(note, seconds, sampleRate)
	if err != nil {
		return err
	}
	return wavfile.WriteWavFile(path, buf, sampleRate)
}

func (m Metronome) Write(path string, bars, sampleRate int) error {
	buf, err := m.Click(bars, sampleRate)
	if err != nil {
		return err
	}
	return wavfile.WriteWavFile(path, buf, sampleRate)
}
