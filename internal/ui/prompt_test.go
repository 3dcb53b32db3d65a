package ui_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-analogclock/internal/config"
	"github.com/tartampluch/go-analogclock/internal/engine"
	"github.com/tartampluch/go-analogclock/internal/ui"
)

func newPrompter(input, lang string) (*ui.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return ui.NewPrompter(strings.NewReader(input), &out, ui.NewTranslator(lang, nil)), &out
}

func TestReadTime_Valid(t *testing.T) {
	p, out := newPrompter("1\n5\n30\n", "en")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{Hours: 1, Minutes: 5, Seconds: 30}, got)

	text := out.String()
	assert.Contains(t, text, "Time Input")
	assert.Contains(t, text, "Hours (0-23): ")
	assert.Contains(t, text, "Minutes (0-59): ")
	assert.Contains(t, text, "Seconds (0-59): ")
	assert.NotContains(t, text, "Invalid time!")
}

func TestReadTime_TitleBoxWidth(t *testing.T) {
	p, out := newPrompter("0\n0\n0\n", "en")
	_, err := p.ReadTime()
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	for _, line := range lines[:3] {
		assert.Equal(t, 82, len([]rune(line)), "box line %q", line)
	}
	assert.True(t, strings.HasPrefix(lines[0], "╔"))
	assert.True(t, strings.HasPrefix(lines[1], "║"))
	assert.True(t, strings.HasPrefix(lines[2], "╚"))
}

func TestReadTime_OutOfRangeReprompts(t *testing.T) {
	p, out := newPrompter("24\n0\n0\n23\n59\n59\n", "en")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{Hours: 23, Minutes: 59, Seconds: 59}, got)

	text := out.String()
	assert.Contains(t, text, "Invalid time! Please enter valid values:")
	assert.Contains(t, text, " Hours: 0-23\n")
	assert.Contains(t, text, " Minutes: 0-59\n")
	assert.Contains(t, text, " Seconds: 0-59\n")
	assert.Equal(t, 2, strings.Count(text, "Time Input"), "The header is shown again on re-prompt")
}

func TestReadTime_NegativeRejected(t *testing.T) {
	p, out := newPrompter("0\n-1\n0\n0\n0\n0\n", "en")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{}, got)
	assert.Contains(t, out.String(), "Invalid time!")
}

func TestReadTime_NotANumber(t *testing.T) {
	p, out := newPrompter("abc\n1\n2\n3\n4\n5\n", "en")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{Hours: 3, Minutes: 4, Seconds: 5}, got)
	assert.Contains(t, out.String(), `"abc" is not a whole number.`)
	assert.Contains(t, out.String(), "Invalid time!")
}

func TestReadTime_TrimsWhitespace(t *testing.T) {
	p, _ := newPrompter("  7 \n\t08\n09  \n", "en")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{Hours: 7, Minutes: 8, Seconds: 9}, got)
}

func TestReadTime_InputClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Partial", "12\n"},
		{"Only_Invalid_Attempts", "99\n99\n99\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPrompter(tt.input, "en")

			_, err := p.ReadTime()

			require.Error(t, err)
			assert.ErrorIs(t, err, ui.ErrInputClosed)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadTime_ReadError(t *testing.T) {
	boom := errors.New("tty detached")
	p := ui.NewPrompter(failingReader{err: boom}, io.Discard, ui.NewTranslator("en", nil))

	_, err := p.ReadTime()

	assert.ErrorIs(t, err, ui.ErrInputClosed)
	assert.ErrorIs(t, err, boom)
}

func TestReadTime_French(t *testing.T) {
	p, out := newPrompter("x\n0\n0\n12\n0\n0\n", "fr")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{Hours: 12}, got)

	text := out.String()
	assert.Contains(t, text, "Saisie de l'heure")
	assert.Contains(t, text, "Heures (0-23) : ")
	assert.Contains(t, text, "« x » n'est pas un nombre entier.")
	assert.Contains(t, text, "Heure invalide !")
}

func TestReadTime_OverlongLineReprompts(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantEcho string
	}{
		{"Digits_70KiB", strings.Repeat("9", 70*1024), `"9999999999999999` + config.InputEllipsis + `"`},
		{"Valid_Value_Padded", "1" + strings.Repeat(" ", 2048), `"1"`},
		{"Just_Over_Limit", strings.Repeat("7", config.MaxInputLine+1), `"7777777777777777` + config.InputEllipsis + `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newPrompter(tt.line+"\n0\n0\n1\n2\n3\n", "en")

			got, err := p.ReadTime()

			require.NoError(t, err)
			assert.Equal(t, engine.ClockTime{Hours: 1, Minutes: 2, Seconds: 3}, got)

			text := out.String()
			assert.Contains(t, text, tt.wantEcho+" is not a whole number.")
			assert.Contains(t, text, "Invalid time!")
			assert.Less(t, len(text), 4096, "The long line must not be echoed back")
		})
	}
}

func TestReadTime_OverlongLastLine(t *testing.T) {
	p, _ := newPrompter("1\n2\n"+strings.Repeat("5", 8192), "en")

	_, err := p.ReadTime()

	assert.ErrorIs(t, err, ui.ErrInputClosed)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadTime_LastLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter("1\n2\n3", "en")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{Hours: 1, Minutes: 2, Seconds: 3}, got)
}

func TestReadTime_LineAtLimitAccepted(t *testing.T) {
	padded := strings.Repeat(" ", config.MaxInputLine-2) + "12"
	p, out := newPrompter(padded+"\n0\n0\n", "en")

	got, err := p.ReadTime()

	require.NoError(t, err)
	assert.Equal(t, engine.ClockTime{Hours: 12}, got)
	assert.NotContains(t, out.String(), "Invalid time!")
}
