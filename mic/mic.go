package mic

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/jsphweid/chording/constants"
	"github.com/jsphweid/chording/tuner"
)

// Source opens the default input device, mono, for each listening session.
type Source struct {
	SampleRate      float64
	FramesPerBuffer int
}

func NewSource() *Source {
	return &Source{
		SampleRate:      constants.DefaultSampleRate,
		FramesPerBuffer: constants.DefaultWindowSize,
	}
}

func (s *Source) Acquire(ctx context.Context) (tuner.Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	in := &input{
		rate:   s.SampleRate,
		buffer: make([]float32, s.FramesPerBuffer),
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, s.SampleRate, s.FramesPerBuffer, in.buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("opening input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("starting input stream: %w", err)
	}

	in.stream = stream
	in.pos = len(in.buffer)
	return in, nil
}

type input struct {
	stream *portaudio.Stream
	rate   float64

	// device buffer and how much of it has been handed out
	buffer []float32
	pos    int
}

func (in *input) SampleRate() float64 {
	return in.rate
}

// Read fills buf from as many device buffers as it takes. An overflow means
// we fell behind the device; the samples are still usable.
func (in *input) Read(buf []float64) error {
	for i := 0; i < len(buf); {
		if in.pos == len(in.buffer) {
			err := in.stream.Read()
			if err != nil && !errors.Is(err, portaudio.InputOverflowed) {
				return err
			}
			in.pos = 0
		}
		n := copy32(buf[i:], in.buffer[in.pos:])
		in.pos += n
		i += n
	}
	return nil
}

func (in *input) Close() error {
	err := errors.Join(in.stream.Stop(), in.stream.Close())
	return errors.Join(err, portaudio.Terminate())
}

func copy32(dst []float64, src []float32) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = float64(src[i])
	}
	return n
}
