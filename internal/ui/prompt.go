package ui

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tartampluch/go-analogclock/internal/config"
	"github.com/tartampluch/go-analogclock/internal/engine"
)

// ErrInputClosed is returned when input ends before a valid time is read.
var ErrInputClosed = errors.New(config.ErrInputClosed)

// ErrNotANumber marks a field that could not be parsed as an integer.
var ErrNotANumber = errors.New(config.ErrNotANumber)

// ErrLineTooLong marks an answer longer than config.MaxInputLine bytes.
var ErrLineTooLong = errors.New(config.ErrLineTooLong)

// Prompter asks the user for the start time until a valid one is given.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
	Tr  *Translator

	// Width of the title box, in cells between the borders.
	Width int
}

// NewPrompter creates a Prompter reading lines from in.
func NewPrompter(in io.Reader, out io.Writer, tr *Translator) *Prompter {
	return &Prompter{
		In:    bufio.NewReader(in),
		Out:   out,
		Tr:    tr,
		Width: config.FaceWidth,
	}
}

// field describes one of the three prompted values.
type field struct {
	promptKey string
	rangeKey  string
	min, max  int
}

var timeFields = []field{
	{config.TKeyPromptHours, config.TKeyRangeHours, config.MinHour, config.MaxHour},
	{config.TKeyPromptMinutes, config.TKeyRangeMinutes, config.MinMinute, config.MaxMinute},
	{config.TKeyPromptSeconds, config.TKeyRangeSeconds, config.MinSecond, config.MaxSecond},
}

// ReadTime prompts for hours, minutes and seconds. Invalid or non-numeric
// answers print the accepted ranges and start over. The only error is
// ErrInputClosed (possibly wrapping a read error).
func (p *Prompter) ReadTime() (engine.ClockTime, error) {
	log := slog.With(config.LogKeyComponent, config.CompPrompt)

	for {
		p.printf("%s", titleBox(p.Tr.GetMsg(config.TKeyTitleTimeInput), p.Width))

		values := make([]int, len(timeFields))
		var parseErrs []error
		for i, f := range timeFields {
			p.printf("%s", p.Tr.GetMsgData(f.promptKey, rangeData(f)))

			line, err := p.readLine()
			if errors.Is(err, ErrLineTooLong) {
				parseErrs = append(parseErrs, err)
				p.printNotANumber(shorten(line))
				continue
			}
			if err != nil {
				return engine.ClockTime{}, err
			}

			v, err := parseField(line)
			if err != nil {
				parseErrs = append(parseErrs, err)
				p.printNotANumber(line)
				continue
			}
			values[i] = v
		}

		if len(parseErrs) > 0 {
			log.Info(config.MsgTimeRejected, config.LogKeyError, errors.Join(parseErrs...))
			p.printInvalid()
			continue
		}

		t, err := engine.NewClockTime(values[0], values[1], values[2])
		if err != nil {
			log.Info(config.MsgTimeRejected, config.LogKeyError, err)
			p.printInvalid()
			continue
		}

		log.Info(config.MsgTimeAccepted, config.LogKeyTime, t.String())
		return t, nil
	}
}

// readLine returns the next trimmed input line. A line longer than
// config.MaxInputLine is consumed up to its newline and reported as
// ErrLineTooLong along with its truncated start; reading can go on after it.
func (p *Prompter) readLine() (string, error) {
	var line []byte
	for {
		chunk, err := p.In.ReadSlice('\n')
		if len(line) <= config.MaxInputLine {
			line = append(line, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		text := strings.TrimSpace(string(line))
		if len(bytes.TrimRight(line, "\r\n")) > config.MaxInputLine {
			return text, ErrLineTooLong
		}
		return text, nil
	}
}

func (p *Prompter) printNotANumber(value string) {
	p.printf(" %s\n", p.Tr.GetMsgData(config.TKeyErrNotANumber, map[string]any{config.TDataValue: value}))
}

func (p *Prompter) printInvalid() {
	p.printf("\n %s\n", p.Tr.GetMsg(config.TKeyErrInvalidTime))
	for _, f := range timeFields {
		p.printf(" %s\n", p.Tr.GetMsgData(f.rangeKey, rangeData(f)))
	}
	p.printf("\n")
}

// printf writes to the prompt output. Write errors are ignored: a broken
// terminal surfaces as end of input on the next read.
func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.Out, format, args...)
}

func rangeData(f field) map[string]any {
	return map[string]any{config.TDataMin: f.min, config.TDataMax: f.max}
}

// shorten keeps the first config.InputEchoLimit runes of s.
func shorten(s string) string {
	runes := []rune(s)
	if len(runes) <= config.InputEchoLimit {
		return s
	}
	return string(runes[:config.InputEchoLimit]) + config.InputEllipsis
}

// parseField accepts an optionally signed decimal integer.
func parseField(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}
