package ui

import "strings"

// InfoPreview renders an item's markdown description for display next to
// the picker. The renderer is rebuilt only when the width changes.
type InfoPreview struct {
	format      string
	width       int
	render      func(string) string
	renderWidth int
}

// NewInfoPreview creates a preview using the given markdown style
// (auto, rich, dark, light, plain).
func NewInfoPreview(format string, width int) InfoPreview {
	p := InfoPreview{format: format}
	p.SetWidth(width)
	return p
}

// SetWidth updates the wrap width.
func (p *InfoPreview) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	p.width = width
	if p.render == nil || p.renderWidth != width {
		p.render = buildMarkdownRenderer(p.format, width)
		p.renderWidth = width
	}
}

// Render returns the rendered markdown, or "" for blank input.
func (p InfoPreview) Render(markdown string) string {
	if strings.TrimSpace(markdown) == "" || p.render == nil {
		return ""
	}
	return p.render(markdown)
}
