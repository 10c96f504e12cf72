// Package template renders new journal entries from the templates kept in
// templates.json at the journal root.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/frontmatter"
)

// FileName is the templates file at the journal root
const FileName = "templates.json"

// ErrTemplateNotFound is returned by Find for an unknown template name
var ErrTemplateNotFound = errors.New("template not found")

// Section types
const (
	TypeText     = "text"
	TypeList     = "list"
	TypeAutoDate = "auto-date"
)

// Section is one "## title" block of an entry
type Section struct {
	Type    string   `json:"type"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Items   []string `json:"items,omitempty"`
	Format  string   `json:"format,omitempty"` // auto-date only, e.g. "dddd, MMMM D, YYYY"
}

// Template is a named entry layout
type Template struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Sections    []Section `json:"sections"`
}

// Set is the content of templates.json
type Set struct {
	Templates []Template `json:"templates"`
}

// Load reads templates.json from root
func Load(root string) (Set, error) {
	var set Set
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		return set, fmt.Errorf("failed to load %s: %w", FileName, err)
	}
	if err := json.Unmarshal(data, &set); err != nil {
		return set, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return set, nil
}

// Save writes set to root's templates.json
func Save(root string, set Set) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, FileName), append(data, '\n'), 0644)
}

// Find returns the template called name
func (s Set) Find(name string) (Template, error) {
	for _, t := range s.Templates {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q (available: %s)", ErrTemplateNotFound, name, strings.Join(s.Names(), ", "))
}

// Names lists the template names in file order
func (s Set) Names() []string {
	names := make([]string, 0, len(s.Templates))
	for _, t := range s.Templates {
		names = append(names, t.Name)
	}
	return names
}

// Render builds the content of a new entry for d: a frontmatter block with
// the date, the template's tags and an empty mood, then the sections.
func Render(t Template, d calendar.Date) string {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	header := frontmatter.Render([]string{"date", "tags", "mood"}, frontmatter.Fields{
		"date": d.String(),
		"tags": tags,
	})

	var parts []string
	for _, s := range t.Sections {
		if out, ok := renderSection(s, d); ok {
			parts = append(parts, out)
		}
	}
	return header + "\n" + strings.Join(parts, "\n\n") + "\n"
}

func renderSection(s Section, d calendar.Date) (string, bool) {
	title := ""
	if s.Title != "" {
		title = "## " + expand(s.Title, d) + "\n\n"
	}

	switch s.Type {
	case TypeAutoDate:
		format := s.Format
		if format == "" {
			format = "YYYY-MM-DD"
		}
		return title + FormatDate(format, d), true
	case TypeList:
		if len(s.Items) == 0 {
			return title + "- ", true
		}
		items := make([]string, len(s.Items))
		for i, item := range s.Items {
			items[i] = "- " + expand(item, d)
		}
		return title + strings.Join(items, "\n"), true
	case TypeText:
		return title + expand(s.Content, d), true
	default:
		log.Printf("Warning: unknown section type %q", s.Type)
		return "", false
	}
}

func expand(s string, d calendar.Date) string {
	return strings.ReplaceAll(s, "{{date}}", d.String())
}

// Defaults returns the templates written by "jerd init"
func Defaults() Set {
	return Set{Templates: []Template{
		{
			Name:        "default",
			Description: "Full morning/evening reflection with goals",
			Tags:        []string{"daily", "reflection"},
			Sections: []Section{
				{Type: TypeText, Title: "📖 Daily Journal - {{date}}"},
				{Type: TypeText, Title: "🌅 Morning Reflection", Content: "- How do I feel this morning?\n- Top 3 priorities today:\n  1. \n  2. \n  3. "},
				{Type: TypeText, Title: "🙏 Gratitude", Content: "- 3 things I'm grateful for today:\n  1. \n  2. \n  3. "},
				{Type: TypeText, Title: "🎯 Daily Goals", Content: "- Goal 1: \n- Goal 2: \n- Goal 3: "},
				{Type: TypeText, Title: "🌙 Evening Reflection", Content: "- Wins today: \n- How do I feel tonight? \n- Any adjustments for tomorrow?"},
				{Type: TypeText, Title: "📚 What I Learned Today", Content: "- "},
				{Type: TypeText, Title: "📌 Important Things to Remember", Content: "- "},
			},
		},
		{
			Name:        "blank",
			Description: "Minimal blank template",
			Sections: []Section{
				{Type: TypeAutoDate, Title: "📅 Date", Format: "dddd, MMMM D, YYYY"},
				{Type: TypeText, Title: "📝 Notes"},
			},
		},
	}}
}
