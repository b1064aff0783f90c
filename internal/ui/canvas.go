package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes lipgloss-rendered blocks into a cell buffer and turns the
// frame back into a string for Bubble Tea. Later draws cover earlier ones
// cell by cell, which is how a menu floats over the content below it.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// DrawStringAt writes block starting at x,y. Every line of the block starts
// at column x; lines past the bottom edge are cropped.
func (c *Canvas) DrawStringAt(x, y int, block string) {
	if c == nil || c.writer == nil || block == "" {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range splitLines(block) {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as newline-delimited lines with trailing
// blanks removed. The canvas cannot be drawn on afterwards.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Overlay draws top over base with its top-left corner at x,y. The frame is
// sized to fit both blocks.
func Overlay(base, top string, x, y int) string {
	if top == "" {
		return base
	}
	baseLines := splitLines(base)
	topLines := splitLines(top)

	width := max(maxLineWidth(baseLines), x+maxLineWidth(topLines))
	height := max(len(baseLines), y+len(topLines))

	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, base)
	canvas.DrawStringAt(x, y, top)
	return canvas.Render()
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func maxLineWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	return width
}
