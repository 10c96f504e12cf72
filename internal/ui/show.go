package ui

import (
	"github.com/charmbracelet/glamour"

	"github.com/shamimbinnur/jerd/internal/frontmatter"
)

// RenderEntry renders an entry's Markdown for the terminal. The frontmatter
// block is replaced by a one-line summary of its mood and tags.
func (t *Theme) RenderEntry(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	fm, body := frontmatter.Parse([]byte(content))

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(body)
	if err != nil {
		return "", err
	}

	if summary := t.entrySummary(fm); summary != "" {
		out = summary + "\n" + out
	}
	return out, nil
}

func (t *Theme) entrySummary(fm frontmatter.Fields) string {
	var parts []string
	if l := fm.String("mood"); l != "" {
		parts = append(parts, t.Accent("mood: "+l))
	}
	if tags := fm.List("tags"); len(tags) > 0 {
		s := "tags:"
		for _, tag := range tags {
			s += " #" + tag
		}
		parts = append(parts, t.Muted(s))
	}
	if len(parts) == 0 {
		return ""
	}
	line := "  "
	for i, p := range parts {
		if i > 0 {
			line += "  "
		}
		line += p
	}
	return line
}
