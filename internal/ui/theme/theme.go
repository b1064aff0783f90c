// Package theme provides the semantic colors used by the picker view.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named palette of semantic colors.
// AdaptiveColor picks the light or dark variant from the terminal background.
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor // Focused borders
	Secondary lipgloss.AdaptiveColor // Highlighted menu row
	Accent    lipgloss.AdaptiveColor // Committed value
	Error     lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor // Placeholder, hints, loading

	Background          lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor // Highlighted row background

	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
	BorderDim     lipgloss.AdaptiveColor
}

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

// TokyoNight implements the Tokyo Night color scheme.
var TokyoNight = Theme{
	Name:                "tokyonight",
	Primary:             c("#82aaff", "#2e7de9"),
	Secondary:           c("#c099ff", "#9854f1"),
	Accent:              c("#ff966c", "#b15c00"),
	Error:               c("#ff757f", "#f52a65"),
	Text:                c("#c8d3f5", "#3760bf"),
	TextMuted:           c("#636da6", "#848cb5"),
	Background:          c("#222436", "#e1e2e7"),
	BackgroundSecondary: c("#2f334d", "#c8c9ce"),
	BorderNormal:        c("#3b4261", "#a8aecb"),
	BorderFocused:       c("#82aaff", "#2e7de9"),
	BorderDim:           c("#292e42", "#c8c9ce"),
}

// Gruvbox implements the Gruvbox color scheme.
var Gruvbox = Theme{
	Name:                "gruvbox",
	Primary:             c("#83a598", "#076678"),
	Secondary:           c("#d3869b", "#8f3f71"),
	Accent:              c("#fabd2f", "#b57614"),
	Error:               c("#fb4934", "#9d0006"),
	Text:                c("#ebdbb2", "#3c3836"),
	TextMuted:           c("#a89984", "#7c6f64"),
	Background:          c("#282828", "#fbf1c7"),
	BackgroundSecondary: c("#504945", "#ebdbb2"),
	BorderNormal:        c("#504945", "#bdae93"),
	BorderFocused:       c("#83a598", "#076678"),
	BorderDim:           c("#3c3836", "#d5c4a1"),
}

// Catppuccin implements the Catppuccin (Mocha/Latte) color scheme.
var Catppuccin = Theme{
	Name:                "catppuccin",
	Primary:             c("#89b4fa", "#1e66f5"),
	Secondary:           c("#cba6f7", "#8839ef"),
	Accent:              c("#fab387", "#fe640b"),
	Error:               c("#f38ba8", "#d20f39"),
	Text:                c("#cdd6f4", "#4c4f69"),
	TextMuted:           c("#6c7086", "#9ca0b0"),
	Background:          c("#1e1e2e", "#eff1f5"),
	BackgroundSecondary: c("#313244", "#e6e9ef"),
	BorderNormal:        c("#6c7086", "#9ca0b0"),
	BorderFocused:       c("#89b4fa", "#1e66f5"),
	BorderDim:           c("#45475a", "#ccd0da"),
}

func init() {
	// First registered theme is the default
	RegisterTheme(TokyoNight)
	RegisterTheme(Gruvbox)
	RegisterTheme(Catppuccin)
}
