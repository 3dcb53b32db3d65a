package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tartampluch/go-analogclock/internal/config"
	"github.com/tartampluch/go-analogclock/internal/engine"
	"github.com/tartampluch/go-analogclock/internal/face"
)

// Terminal draws clock frames in place on an ANSI terminal.
// It implements engine.FrameDrawer.
type Terminal struct {
	Out    io.Writer
	Tr     *Translator
	Layout face.Layout
}

// NewTerminal creates a Terminal using the default face layout.
func NewTerminal(out io.Writer, tr *Translator) *Terminal {
	return &Terminal{
		Out:    out,
		Tr:     tr,
		Layout: face.DefaultLayout(),
	}
}

// Draw clears the screen and writes the frame for t. The frame is flushed
// before Draw returns.
func (term *Terminal) Draw(_ context.Context, t engine.ClockTime) error {
	grid := face.Rasterize(t, term.Layout)

	w := bufio.NewWriter(term.Out)
	_, _ = w.WriteString(config.ANSICursorHome + config.ANSIClearScreen)
	_, _ = w.WriteString(FormatFrame(grid, t, term.Tr))
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrTerminalWrite, err)
	}
	return nil
}

// HideCursor hides the terminal cursor while the clock is running.
func (term *Terminal) HideCursor() error {
	return term.writeControl(config.ANSIHideCursor)
}

// ShowCursor restores the cursor and moves below the last frame.
func (term *Terminal) ShowCursor() error {
	return term.writeControl(config.ANSIShowCursor + config.NewLine)
}

func (term *Terminal) writeControl(seq string) error {
	if _, err := io.WriteString(term.Out, seq); err != nil {
		return fmt.Errorf("%s: %w", config.ErrTerminalWrite, err)
	}
	return nil
}

// FormatFrame renders the grid inside a double-line border, followed by the
// digital readout and the exit hint. No control sequences are included.
func FormatFrame(g face.Grid, t engine.ClockTime, tr *Translator) string {
	var sb strings.Builder

	sb.WriteString(borderLine(config.BorderTopLeft, config.BorderTopRight, g.Width()))
	for _, row := range g.Lines() {
		sb.WriteString(config.BorderVertical + row + config.BorderVertical + config.NewLine)
	}
	sb.WriteString(borderLine(config.BorderBottomLeft, config.BorderBottomRight, g.Width()))

	sb.WriteString(config.NewLine + config.ReadoutIndent)
	sb.WriteString(tr.GetMsgData(config.TKeyDigitalTime, map[string]any{config.TDataTime: t.String()}))
	sb.WriteString(config.NewLine + config.ReadoutIndent)
	sb.WriteString(tr.GetMsg(config.TKeyExitHint))

	return sb.String()
}

// borderLine returns a horizontal border of inner width cells plus corners.
func borderLine(left, right string, width int) string {
	return left + strings.Repeat(config.BorderHorizontal, width) + right + config.NewLine
}

// titleBox returns a three-line box with title centred in width cells.
func titleBox(title string, width int) string {
	n := utf8.RuneCountInString(title)
	pad := max(width-n, 0)
	left := pad / 2
	right := pad - left

	return borderLine(config.BorderTopLeft, config.BorderTopRight, width) +
		config.BorderVertical + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + config.BorderVertical + config.NewLine +
		borderLine(config.BorderBottomLeft, config.BorderBottomRight, width)
}
