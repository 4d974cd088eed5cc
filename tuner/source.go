package tuner

import (
	"context"
	"io"
)

// Source hands out exclusive audio inputs. Acquire is called once per
// listening session.
type Source interface {
	Acquire(ctx context.Context) (Input, error)
}

// Input is a live mono stream owned by one session.
//
// Read fills buf completely with the next window of samples in [-1, 1]. It
// returns io.EOF when a finite input is exhausted.
type Input interface {
	SampleRate() float64
	Read(buf []float64) error
	Close() error
}

// SliceSource replays an in-memory signal window by window. The final partial
// window is dropped.
type SliceSource struct {
	Samples []float64
	Rate    float64

	// Err, when set, is returned from Acquire
	Err error
}

func (s *SliceSource) Acquire(ctx context.Context) (Input, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &sliceInput{samples: s.Samples, rate: s.Rate}, nil
}

type sliceInput struct {
	samples []float64
	rate    float64
	pos     int
	closed  bool
}

func (in *sliceInput) SampleRate() float64 {
	return in.rate
}

func (in *sliceInput) Read(buf []float64) error {
	if in.closed || in.pos+len(buf) > len(in.samples) {
		return io.EOF
	}
	copy(buf, in.samples[in.pos:in.pos+len(buf)])
	in.pos += len(buf)
	return nil
}

func (in *sliceInput) Close() error {
	in.closed = true
	return nil
}
