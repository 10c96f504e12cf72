// Package prompt asks the user small questions in the terminal: pick one
// of a list, yes or no, or a line of text.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user quits a prompt with Esc or Ctrl+C
var ErrCancelled = errors.New("cancelled")

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8b5cf6"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Option is one choice of a Select prompt
type Option struct {
	Label string
	Value string
}

// SelectModel picks one option with the arrow keys
type SelectModel struct {
	Title     string
	Options   []Option
	Cursor    int
	Chosen    bool
	Cancelled bool
}

// NewSelect starts with the cursor on the option whose value is def
func NewSelect(title string, options []Option, def string) SelectModel {
	m := SelectModel{Title: title, Options: options}
	for i, o := range options {
		if o.Value == def {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m SelectModel) Init() tea.Cmd { return nil }

func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		m.Cursor = len(m.Options) - 1
	case "enter":
		if len(m.Options) > 0 {
			m.Chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SelectModel) View() string {
	if m.Chosen {
		return questionStyle.Render(m.Title) + " " + selectedStyle.Render(m.Options[m.Cursor].Label) + "\n"
	}
	if m.Cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.Title) + "\n")
	for i, o := range m.Options {
		if i == m.Cursor {
			b.WriteString(cursorStyle.Render("❯ ") + selectedStyle.Render(o.Label) + "\n")
		} else {
			b.WriteString("  " + o.Label + "\n")
		}
	}
	b.WriteString(helpStyle.Render("↑↓/jk to move • Enter to select • Esc to cancel") + "\n")
	return b.String()
}

// Value is the selected option's value
func (m SelectModel) Value() string {
	if len(m.Options) == 0 {
		return ""
	}
	return m.Options[m.Cursor].Value
}

// ConfirmModel asks a yes or no question
type ConfirmModel struct {
	Question  string
	Yes       bool
	Done      bool
	Cancelled bool
}

// NewConfirm starts with def selected
func NewConfirm(question string, def bool) ConfirmModel {
	return ConfirmModel{Question: question, Yes: def}
}

func (m ConfirmModel) Init() tea.Cmd { return nil }

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "y", "Y":
		m.Yes, m.Done = true, true
		return m, tea.Quit
	case "n", "N":
		m.Yes, m.Done = false, true
		return m, tea.Quit
	case "left", "right", "h", "l", "tab":
		m.Yes = !m.Yes
	case "enter":
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	answer := "No"
	if m.Yes {
		answer = "Yes"
	}
	if m.Done {
		return questionStyle.Render(m.Question) + " " + selectedStyle.Render(answer) + "\n"
	}
	if m.Cancelled {
		return ""
	}
	hint := "y/N"
	if m.Yes {
		hint = "Y/n"
	}
	return fmt.Sprintf("%s %s %s\n", questionStyle.Render(m.Question), helpStyle.Render("("+hint+")"), selectedStyle.Render(answer))
}

// InputModel reads one line of text
type InputModel struct {
	Question  string
	Input     textinput.Model
	Default   string
	Done      bool
	Cancelled bool
}

// NewInput returns an input prompt. An empty answer means def.
func NewInput(question, def string) InputModel {
	ti := textinput.New()
	ti.Placeholder = def
	ti.Focus()
	ti.Width = 50
	return InputModel{Question: question, Input: ti, Default: def}
}

func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.Cancelled = true
			return m, tea.Quit
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m InputModel) View() string {
	if m.Done {
		return questionStyle.Render(m.Question) + " " + selectedStyle.Render(m.Value()) + "\n"
	}
	if m.Cancelled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n", questionStyle.Render(m.Question), m.Input.View())
}

// Value is the typed text, or the default when nothing was typed
func (m InputModel) Value() string {
	if v := strings.TrimSpace(m.Input.Value()); v != "" {
		return v
	}
	return m.Default
}

// Select shows a list and returns the chosen option's value
func Select(title string, options []Option, def string) (string, error) {
	final, err := tea.NewProgram(NewSelect(title, options, def)).Run()
	if err != nil {
		return "", err
	}
	m := final.(SelectModel)
	if !m.Chosen {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

// Confirm asks a yes or no question
func Confirm(question string, def bool) (bool, error) {
	final, err := tea.NewProgram(NewConfirm(question, def)).Run()
	if err != nil {
		return false, err
	}
	m := final.(ConfirmModel)
	if !m.Done {
		return false, ErrCancelled
	}
	return m.Yes, nil
}

// Input reads a line of text, falling back to def
func Input(question, def string) (string, error) {
	final, err := tea.NewProgram(NewInput(question, def)).Run()
	if err != nil {
		return "", err
	}
	m := final.(InputModel)
	if !m.Done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
