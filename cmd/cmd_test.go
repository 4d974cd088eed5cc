package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jsphweid/chording/pitch"
	"github.com/jsphweid/chording/tone"
	"github.com/jsphweid/chording/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTransposeCommandStdin(t *testing.T) {
	out, err := execute(t, "Am F C G\nsing along", "transpose", "-s", "3")
	require.NoError(t, err)
	assert.Equal(t, "Cm G# D# A#\nsing along", out)
}

func TestTransposeCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	require.NoError(t, os.WriteFile(path, []byte("D/F# G"), 0o644))

	out, err := execute(t, "", "transpose", "--semitones", "-2", path)
	require.NoError(t, err)
	assert.Equal(t, "C/F# F", out)
}

func TestTuningsCommand(t *testing.T) {
	out, err := execute(t, "", "tunings")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(tuning.All()))
	assert.Contains(t, lines[0], "Standard")
	assert.Contains(t, lines[0], "E2 A2 D3 G3 B3 E4")
}

func TestDetectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a2.wav")
	require.NoError(t, tone.WriteNote(path, "A2", 0.5, 44100))

	out, err := execute(t, "", "detect", "--tuning", "standard", "--all=false", path)
	require.NoError(t, err)

	assert.Contains(t, out, "A2")
	assert.Contains(t, out, "string 5")
	assert.Contains(t, out, "windows detected")
}

func TestDetectCommandUnknownTuning(t *testing.T) {
	_, err := execute(t, "", "detect", "--tuning", "banjo", "x.wav")
	assert.ErrorContains(t, err, "unknown tuning")
	detectTuning = "standard"
}

func TestToneAndClickCommands(t *testing.T) {
	dir := t.TempDir()
	note := filepath.Join(dir, "e4.wav")
	click := filepath.Join(dir, "click.wav")

	out, err := execute(t, "", "tone", "E4", "-o", note, "-d", "0.2")
	require.NoError(t, err)
	assert.Contains(t, out, note)
	assert.FileExists(t, note)

	out, err = execute(t, "", "click", "-o", click, "--bpm", "90", "--bars", "1")
	require.NoError(t, err)
	assert.Contains(t, out, click)
	assert.FileExists(t, click)
}

func TestSheetCommands(t *testing.T) {
	t.Setenv("CHORDING_DB_PATH", filepath.Join(t.TempDir(), "sheets.sqlite3"))

	out, err := execute(t, "C G Am F", "sheet", "add", "--title", "Four Chords", "--artist", "Everyone", "--key", "C")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	assert.Len(t, id, 36)

	out, err = execute(t, "", "sheet", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Four Chords")

	out, err = execute(t, "", "sheet", "show", id, "-s", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Four Chords - Everyone (F)")
	assert.Contains(t, out, "F C Dm A#")

	_, err = execute(t, "", "sheet", "rm", id)
	require.NoError(t, err)

	_, err = execute(t, "", "sheet", "show", id, "-s", "0")
	assert.Error(t, err)
}

func TestFormatResult(t *testing.T) {
	assert := assert.New(t)

	none := formatResult(pitch.Result{Reason: pitch.NoPeriodicity}, tuning.Standard)
	assert.Equal("  --   no periodicity", none)

	res := pitch.Result{Reason: pitch.Detected, Estimate: pitch.Estimate{
		Frequency: 111.1,
		Note:      "A2",
		String:    1,
		Target:    110,
		Cents:     17,
		Status:    pitch.Sharp,
	}}
	line := formatResult(res, tuning.Standard)
	assert.Contains(line, "A2")
	assert.Contains(line, "111.10 Hz")
	assert.Contains(line, "string 5 (A2)")
	assert.Contains(line, "+17 cents sharp")
	assert.Contains(line, "[----------|--*-------]")
}

func TestFormatResultWithoutTarget(t *testing.T) {
	res := pitch.Result{Reason: pitch.Detected, Estimate: pitch.Estimate{Frequency: 440, Note: "A4", String: -1}}
	assert.Equal(t, "A4    440.00 Hz", formatResult(res, tuning.Standard))
}

func TestMeterClamps(t *testing.T) {
	assert.Equal(t, "[*---------|----------]", meter(-80))
	assert.Equal(t, "[----------*----------]", meter(0))
	assert.Equal(t, "[----------|---------*]", meter(500))
}

func TestDetectCommandRejectsEmptyWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a2.wav")
	require.NoError(t, tone.WriteNote(path, "A2", 0.2, 44100))

	_, err := execute(t, "", "detect", "-w", "0", path)
	assert.ErrorContains(t, err, "invalid tuner config")

	_, err = execute(t, "", "detect", "--window=-8", path)
	assert.ErrorContains(t, err, "invalid tuner config")
	detectWindow = 4096
}

func TestHoldingScreenDropsBlankAfterStop(t *testing.T) {
	var out bytes.Buffer
	screen := newHoldingScreen(&out, tuning.Standard, 20*time.Millisecond)

	screen.show(pitch.Result{Reason: pitch.Detected, Estimate: pitch.Estimate{
		Frequency: 110, Note: "A2", String: 1, Target: 110, Status: pitch.Perfect,
	}})
	screen.stop()
	time.Sleep(60 * time.Millisecond)

	screen.mu.Lock()
	got := out.String()
	screen.mu.Unlock()
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.NotContains(t, got, "insufficient signal")
	assert.Equal(t, 1, strings.Count(got, "\r"))
}

func TestHoldingScreenBlanksAfterHold(t *testing.T) {
	var out bytes.Buffer
	screen := newHoldingScreen(&out, tuning.Standard, 10*time.Millisecond)

	screen.show(pitch.Result{Reason: pitch.Detected, Estimate: pitch.Estimate{Note: "A2", String: -1}})
	assert.Eventually(t, func() bool {
		screen.mu.Lock()
		defer screen.mu.Unlock()
		return strings.Contains(out.String(), "insufficient signal")
	}, time.Second, 5*time.Millisecond)
}
