package tuner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jsphweid/chording/constants"
	"github.com/jsphweid/chording/logger"
	"github.com/jsphweid/chording/pitch"
	"github.com/jsphweid/chording/tuning"
)

var (
	// ErrAcquire wraps every failure to open the audio input. It is terminal
	// for that Start call; nothing retries it.
	ErrAcquire   = errors.New("could not acquire audio input")
	ErrListening = errors.New("tuner is already listening")
	ErrConfig    = errors.New("invalid tuner config")
)

type State int

const (
	Idle State = iota
	Listening
)

func (s State) String() string {
	if s == Listening {
		return "listening"
	}
	return "idle"
}

type Config struct {
	WindowSize    int
	FrameInterval time.Duration
	Profile       tuning.Profile
	Analyzer      *pitch.Analyzer
	Logger        logger.Logger
}

type Option func(*Config)

func WithWindowSize(n int) Option {
	return func(c *Config) {
		c.WindowSize = n
	}
}

func WithFrameInterval(d time.Duration) Option {
	return func(c *Config) {
		c.FrameInterval = d
	}
}

func WithProfile(p tuning.Profile) Option {
	return func(c *Config) {
		c.Profile = p
	}
}

func WithAnalyzer(a *pitch.Analyzer) Option {
	return func(c *Config) {
		c.Analyzer = a
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func defaultConfig() *Config {
	return &Config{
		WindowSize:    constants.DefaultWindowSize,
		FrameInterval: constants.DefaultFrameInterval,
		Profile:       tuning.Standard,
	}
}

// Tuner runs the continuous detection loop. It is either Idle or Listening;
// while Listening it owns exactly one Input.
type Tuner struct {
	source Source
	cfg    *Config

	mu    sync.Mutex
	state State
	// set while Acquire runs outside mu
	starting bool
	cancel   context.CancelFunc
	done     chan struct{}
	err      error

	// held while a result is handed to the caller so Stop can fence it off
	emitMu sync.Mutex
}

func New(source Source, opts ...Option) *Tuner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Analyzer == nil {
		cfg.Analyzer = pitch.NewAnalyzer()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Tuner{source: source, cfg: cfg}
}

func (t *Tuner) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tuner) Profile() tuning.Profile {
	return t.cfg.Profile
}

// Start acquires an input and begins one analysis cycle per frame, passing
// every result to emit. emit runs on the loop goroutine and must not call Stop.
func (t *Tuner) Start(ctx context.Context, emit func(pitch.Result)) error {
	if t.cfg.WindowSize <= 0 || t.cfg.FrameInterval <= 0 {
		return fmt.Errorf("%w: window size %d, frame interval %v", ErrConfig, t.cfg.WindowSize, t.cfg.FrameInterval)
	}

	t.mu.Lock()
	if t.state == Listening || t.starting {
		t.mu.Unlock()
		return ErrListening
	}
	t.starting = true
	t.mu.Unlock()

	// opening a device can take a while; State and Wait stay responsive
	input, err := t.source.Acquire(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.starting = false
	if err != nil {
		t.cfg.Logger.Errorf("acquiring audio input: %v", err)
		return fmt.Errorf("%w: %w", ErrAcquire, err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.state = Listening
	t.cancel = cancel
	t.done = done
	t.err = nil

	t.cfg.Logger.Infof("listening at %v Hz, %v tuning", input.SampleRate(), t.cfg.Profile.Name)
	go t.run(loopCtx, input, emit, done)
	return nil
}

// Stop cancels the loop and returns once the input is released. A result
// that was still being computed is dropped.
func (t *Tuner) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.mu.Unlock()

	if cancel == nil {
		return
	}

	t.emitMu.Lock()
	cancel()
	t.emitMu.Unlock()
	<-done
}

// Wait blocks until the current session ends. It returns the read error that
// ended it, if any; running out of input is a clean end.
func (t *Tuner) Wait() error {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return nil
	}
	<-done

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Tuner) run(ctx context.Context, input Input, emit func(pitch.Result), done chan struct{}) {
	var err error
	defer func() {
		if cerr := input.Close(); cerr != nil {
			t.cfg.Logger.Warnf("closing audio input: %v", cerr)
		}
		t.mu.Lock()
		if t.done == done {
			t.state = Idle
			t.err = err
			t.cancel()
		}
		t.mu.Unlock()
		t.cfg.Logger.Infof("stopped listening")
		close(done)
	}()

	buf := make([]float64, t.cfg.WindowSize)
	rate := input.SampleRate()
	targets := t.cfg.Profile.Targets()

	ticker := time.NewTicker(t.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if rerr := input.Read(buf); rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				err = fmt.Errorf("reading audio input: %w", rerr)
				t.cfg.Logger.Errorf("%v", err)
			}
			return
		}

		res := t.cfg.Analyzer.Analyze(buf, rate, targets)
		if !res.Detected() {
			t.cfg.Logger.Debugf("no detection: %v", res.Reason)
		}

		t.emitMu.Lock()
		if ctx.Err() == nil && emit != nil {
			emit(res)
		}
		t.emitMu.Unlock()
	}
}
