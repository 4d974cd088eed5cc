package wavfile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jsphweid/chording/tuner"
)

var ErrUnsupported = errors.New("unsupported wav file")

// pcm format tag in the fmt chunk
const formatPCM = 1

// ReadWavFile decodes a PCM wav file into mono samples in [-1, 1]. Multiple
// channels are averaged.
func ReadWavFile(path string) (samples []float64, sampleRate int, e error) {
	// the decoder can panic on truncated chunks
	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("%w: %v: %v", ErrUnsupported, path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnsupported, path)
	}
	if d.WavAudioFormat != formatPCM {
		return nil, 0, fmt.Errorf("%w: audio format %v is not PCM", ErrUnsupported, d.WavAudioFormat)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding wav file: %w", err)
	}

	samples, err = toMono(buf)
	if err != nil {
		return nil, 0, err
	}
	return samples, buf.Format.SampleRate, nil
}

func toMono(buf *audio.IntBuffer) ([]float64, error) {
	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrUnsupported)
	}

	var offset float64
	bitDepth := buf.SourceBitDepth
	switch bitDepth {
	case 8:
		// 8 bit PCM is unsigned
		offset = 128
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %v bit samples", ErrUnsupported, bitDepth)
	}
	scale := 1 / math.Pow(2, float64(bitDepth-1))

	frames := len(buf.Data) / channels
	res := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c]) - offset
		}
		res[i] = sum / float64(channels) * scale
	}
	return res, nil
}

// WriteWavFile stores mono samples as 16 bit PCM. Samples outside [-1, 1]
// are clipped.
func WriteWavFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer f.Close()

	const bitDepth = 16
	peak := math.Pow(2, bitDepth-1) - 1

	data := make([]int, len(samples))
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		data[i] = int(math.Round(s * peak))
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, formatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}
	return nil
}

// Source feeds a wav file to the tuner loop, one window per frame.
type Source struct {
	Path string
}

func (s Source) Acquire(ctx context.Context) (tuner.Input, error) {
	samples, rate, err := ReadWavFile(s.Path)
	if err != nil {
		return nil, err
	}
	src := tuner.SliceSource{Samples: samples, Rate: float64(rate)}
	return src.Acquire(ctx)
}
