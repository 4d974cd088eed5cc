package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel falls back to INFO for anything it does not recognise.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger is what library packages accept. *Log satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var levelColors = map[Level]*color.Color{
	DEBUG: color.New(color.FgHiBlack),
	INFO:  color.New(color.FgBlue),
	WARN:  color.New(color.FgYellow),
	ERROR: color.New(color.FgRed),
}

type Log struct {
	mu         sync.Mutex
	out        io.Writer
	level      Level
	prefix     string
	timeFormat string
}

func New(out io.Writer, level Level, prefix string) *Log {
	if out == nil {
		out = os.Stderr
	}
	return &Log{
		out:        out,
		level:      level,
		prefix:     prefix,
		timeFormat: "2006-01-02 15:04:05",
	}
}

func (l *Log) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Log) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	tag := levelColors[level].Sprintf("[%s]", level)
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format(l.timeFormat)
	if l.prefix != "" {
		fmt.Fprintf(l.out, "%s %s %s %s\n", ts, tag, l.prefix, msg)
		return
	}
	fmt.Fprintf(l.out, "%s %s %s\n", ts, tag, msg)
}

func (l *Log) Debugf(format string, args ...any) { l.log(DEBUG, format, args...) }
func (l *Log) Infof(format string, args ...any)  { l.log(INFO, format, args...) }
func (l *Log) Warnf(format string, args ...any)  { l.log(WARN, format, args...) }
func (l *Log) Errorf(format string, args ...any) { l.log(ERROR, format, args...) }

type nop struct{}

func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}

// Nop discards everything.
func Nop() Logger {
	return nop{}
}

var (
	defaultLog *Log
	once       sync.Once
)

// Get returns the process-wide logger writing to stderr, with its level read
// once from CHORDING_LOG_LEVEL.
func Get() *Log {
	once.Do(func() {
		defaultLog = New(os.Stderr, ParseLevel(os.Getenv("CHORDING_LOG_LEVEL")), "")
	})
	return defaultLog
}
