// Package ui renders jerd's terminal output: messages, the streak and mood
// charts, the entry tree and rendered entries.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shamimbinnur/jerd/internal/config"
)

// Theme holds the styles built from the configured palette
type Theme struct {
	title    lipgloss.Style
	year     lipgloss.Style
	month    lipgloss.Style
	entry    lipgloss.Style
	success  lipgloss.Style
	err      lipgloss.Style
	warning  lipgloss.Style
	info     lipgloss.Style
	muted    lipgloss.Style
	label    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	padding  lipgloss.Style
	header   lipgloss.Style
}

// NewTheme builds a theme from a palette. Empty entries render unstyled.
func NewTheme(c config.ColorScheme) *Theme {
	fg := func(color string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		return s
	}
	return &Theme{
		title:    fg(c.Title).Bold(true),
		year:     fg(c.Year).Bold(true),
		month:    fg(c.Month).Bold(true),
		entry:    fg(c.Entry),
		success:  fg(c.Success),
		err:      fg(c.Error),
		warning:  fg(c.Warning),
		info:     fg(c.Info),
		muted:    fg(c.Muted),
		label:    fg(c.Label),
		active:   fg(c.Active),
		inactive: fg(c.Inactive),
		padding:  fg(c.Padding),
		header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(orDefault(c.Label, "#8b5cf6"))).
			Foreground(lipgloss.Color(orDefault(c.Warning, "#f59e0b"))).
			Bold(true).
			Padding(0, 1).
			Width(38),
	}
}

// DefaultTheme is the dark palette, for callers without a loaded config
func DefaultTheme() *Theme {
	return NewTheme(config.DefaultColors("dark"))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Success formats a success line
func (t *Theme) Success(text string) string {
	return t.success.Render("✅ " + text)
}

// Error formats an error line
func (t *Theme) Error(text string) string {
	return t.err.Render("💥 " + text)
}

// Warning formats a warning line
func (t *Theme) Warning(text string) string {
	return t.warning.Render("⚠️  " + text)
}

// Info formats an informational line
func (t *Theme) Info(text string) string {
	return t.info.Render("🧭 " + text)
}

// Hint formats a tip, set off by blank lines
func (t *Theme) Hint(text string) string {
	return "\n" + t.muted.Render("💡") + " " + t.info.Render(text) + "\n"
}

// Muted dims text
func (t *Theme) Muted(text string) string {
	return t.muted.Render(text)
}

// Accent highlights a value inside a message
func (t *Theme) Accent(text string) string {
	return t.info.Render(text)
}

// Title formats a bold heading
func (t *Theme) Title(text string) string {
	return t.title.Render(text)
}

// Header draws the boxed chart heading
func (t *Theme) Header(text string) string {
	return "\n" + t.header.Render(text) + "\n"
}

// Box draws text in a rounded box, for init's summary and the banners
func (t *Theme) Box(text string, color string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(orDefault(color, "5"))).
		Padding(1, 2).
		Render(text)
}

// NotInitialized is shown when no journal is found
func (t *Theme) NotInitialized() string {
	content := strings.Join([]string{
		t.warning.Render("⚠") + "  " + t.err.Bold(true).Render("Not a jerd project"),
		"",
		t.muted.Render("Run") + " " + t.info.Render("jerd init") + " " + t.muted.Render("to get started"),
	}, "\n")
	return t.Box(content, "#f59e0b")
}
