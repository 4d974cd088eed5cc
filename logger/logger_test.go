package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := New(&buf, WARN, "")

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	out := buf.String()
	assert := assert.New(t)
	assert.NotContains(out, "debug 1")
	assert.NotContains(out, "info 2")
	assert.Contains(out, "[WARN] warn 3")
	assert.Contains(out, "[ERROR] error 4")
}

func TestPrefix(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := New(&buf, DEBUG, "tuner:")
	l.Infof("listening")
	assert.Contains(t, buf.String(), "[INFO] tuner: listening")
}

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(DEBUG, ParseLevel("debug"))
	assert.Equal(WARN, ParseLevel(" Warning "))
	assert.Equal(ERROR, ParseLevel("ERROR"))
	assert.Equal(INFO, ParseLevel(""))
	assert.Equal(INFO, ParseLevel("chatty"))
}
