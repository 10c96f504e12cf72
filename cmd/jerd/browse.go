package main

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/editor"
	"github.com/shamimbinnur/jerd/internal/journal"
	"github.com/shamimbinnur/jerd/internal/mood"
	"github.com/shamimbinnur/jerd/internal/parallel"
)

var (
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	weekdayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

type entryItem struct {
	date calendar.Date
	path string
	mood mood.Label
}

func (i entryItem) FilterValue() string {
	return i.date.String() + " " + i.date.Weekday().String() + " " + string(i.mood)
}

func (i entryItem) Title() string       { return i.date.String() }
func (i entryItem) Description() string { return "" }

func (i entryItem) render(selected bool) string {
	glyph := "  "
	if i.mood != mood.None {
		glyph = i.mood.Glyph()
	}
	line := dateStyle.Render(i.date.String()) + "  " + weekdayStyle.Render(fmt.Sprintf("%-9s", i.date.Weekday())) + " " + glyph
	if selected {
		return selectorStyle.Render("█ ") + line
	}
	return "  " + line
}

type entryDelegate struct {
	list.DefaultDelegate
}

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(entryItem)
	if !ok {
		return
	}
	fmt.Fprint(w, entry.render(index == m.Index()))
}

type browseModel struct {
	list                   list.Model
	journal                *journal.Journal
	editor                 string
	watcher                *fsnotify.Watcher
	quitting               bool
	showDeleteConfirm      bool
	deleteEntry            *entryItem
	deleteConfirmSelection int // 0 = Cancel, 1 = Delete
	status                 string
}

type fileChangedMsg struct{}

type editorFinishedMsg struct {
	date calendar.Date
	path string
	err  error
}

// loadItems lists every entry newest first. Moods are read in parallel.
func loadItems(j *journal.Journal) ([]list.Item, error) {
	dates, err := j.All()
	if err != nil {
		return nil, err
	}
	slices.Reverse(dates)
	return parallel.Map[calendar.Date, list.Item](dates, func(d calendar.Date) list.Item {
		return entryItem{date: d, path: j.EntryPath(d), mood: j.Mood(d)}
	}), nil
}

func newBrowseModel(j *journal.Journal, editorName string, items []list.Item, watcher *fsnotify.Watcher) browseModel {
	delegate := entryDelegate{DefaultDelegate: list.NewDefaultDelegate()}
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Journal (Newest First)"
	l.SetShowStatusBar(false)
	l.KeyMap.Quit.SetKeys("q")
	l.KeyMap.ForceQuit.SetKeys("ctrl+c")
	l.KeyMap.NextPage.SetKeys("pgdown", "ctrl+f", "ctrl+d")
	l.KeyMap.PrevPage.SetKeys("pgup", "ctrl+b", "ctrl+u")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "today")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		}
	}

	return browseModel{list: l, journal: j, editor: editorName, watcher: watcher}
}

func (m browseModel) Init() tea.Cmd {
	return waitForFileChange(m.watcher)
}

func waitForFileChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		if watcher == nil {
			return nil
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					time.Sleep(100 * time.Millisecond)
					return fileChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}
}

func (m *browseModel) reload() {
	items, err := loadItems(m.journal)
	if err != nil {
		m.status = "Could not reload entries: " + err.Error()
		return
	}
	m.list.SetItems(items)
	if m.list.Index() >= len(items) {
		m.list.ResetSelected()
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if m.showDeleteConfirm {
			return m.updateDeleteConfirm(msg)
		}

		// typing a filter
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if i, ok := m.list.SelectedItem().(entryItem); ok {
				return m, m.openEditor(i.date, i.path)
			}
			return m, nil
		case "n":
			return m, m.newToday()
		case "d":
			if i, ok := m.list.SelectedItem().(entryItem); ok {
				m.showDeleteConfirm = true
				m.deleteEntry = &i
				m.deleteConfirmSelection = 0
			}
			return m, nil
		}
	case fileChangedMsg:
		m.reload()
		updateWatcher(m.watcher, m.journal.Root)
		return m, waitForFileChange(m.watcher)
	case editorFinishedMsg:
		if msg.err != nil {
			m.status = "Editor error: " + msg.err.Error()
		} else {
			commit(m.journal, "Update journal entry "+msg.date.String(), msg.path)
			m.status = ""
		}
		m.reload()
		return m, nil
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeDeleteConfirm()
	case "left", "h":
		m.deleteConfirmSelection = 0
	case "right", "l":
		m.deleteConfirmSelection = 1
	case "enter":
		if m.deleteConfirmSelection == 1 && m.deleteEntry != nil {
			d := m.deleteEntry.date
			path, err := m.journal.Delete(d)
			if err != nil {
				m.status = "Could not delete entry: " + err.Error()
			} else {
				commit(m.journal, "Delete journal entry "+d.String(), path)
				m.status = "Deleted " + entryName(path)
			}
			m.reload()
		}
		m.closeDeleteConfirm()
	}
	return m, nil
}

func (m *browseModel) closeDeleteConfirm() {
	m.showDeleteConfirm = false
	m.deleteEntry = nil
	m.deleteConfirmSelection = 0
}

func (m browseModel) openEditor(d calendar.Date, path string) tea.Cmd {
	c, err := editor.Command(m.editor, path)
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{date: d, path: path, err: err} }
	}
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{date: d, path: path, err: err}
	})
}

// newToday creates today's entry from the default template if needed and
// opens it
func (m browseModel) newToday() tea.Cmd {
	today := calendar.Today()
	if !m.journal.Exists(today) {
		content, err := m.journal.Draft(today, "")
		if err == nil {
			_, _, err = m.journal.Create(today, content)
		}
		if err != nil {
			return func() tea.Msg { return editorFinishedMsg{date: today, err: err} }
		}
	}
	return m.openEditor(today, m.journal.EntryPath(today))
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	view := m.list.View()
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).
		Render(" ↑↓/jk • g/G:top/bottom • /:filter • Enter:open • n:today • d:delete • q:quit")
	view += "\n" + help
	if m.status != "" {
		view += "\n " + lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(m.status)
	}

	if m.showDeleteConfirm && m.deleteEntry != nil {
		view = lipgloss.Place(
			lipgloss.Width(view),
			lipgloss.Height(view),
			lipgloss.Center,
			lipgloss.Center,
			m.deleteDialog(),
		)
	}
	return view
}

func (m browseModel) deleteDialog() string {
	dialogBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("1")).
		Padding(1, 2).
		Width(50)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).Render("Delete entry?")
	info := fmt.Sprintf(" %s (%s)\n", m.deleteEntry.date, m.deleteEntry.date.Weekday())

	button := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0"))
	cancel, del := button, button
	if m.deleteConfirmSelection == 0 {
		cancel = cancel.Background(lipgloss.Color("2")).Bold(true)
	} else {
		del = del.Background(lipgloss.Color("1")).Bold(true)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, cancel.Render("Cancel"), "  ", del.Render("Delete"))

	return dialogBox.Render(
		title + info + "\n" + buttons + "\n\n" +
			lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("← → or h l to select • Enter to confirm • Esc to cancel"),
	)
}

func (a *app) browse() error {
	j, err := a.journal()
	if err != nil {
		return err
	}
	items, err := loadItems(j)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println(a.theme.Info("No journal entries yet."))
		fmt.Println(a.theme.Hint(`Run "jerd new" to write today's entry.`))
		return nil
	}

	watcher, err := setupWatcher(j.Root)
	if err != nil {
		log.Printf("Warning: Could not create file watcher: %v", err)
	}
	if watcher != nil {
		defer watcher.Close()
	}

	m := newBrowseModel(j, a.editorFor(j, ""), items, watcher)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func setupWatcher(root string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	updateWatcher(watcher, root)
	return watcher, nil
}

// updateWatcher watches the root and every year and month directory.
// Adding a directory twice is harmless.
func updateWatcher(watcher *fsnotify.Watcher, root string) {
	if watcher == nil {
		return
	}
	for _, dir := range watchDirectories(root) {
		if err := watcher.Add(dir); err != nil {
			log.Printf("Watcher error: %v", err)
		}
	}
}

func watchDirectories(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs
}
