package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shamimbinnur/jerd/internal/config"
	"github.com/shamimbinnur/jerd/internal/editor"
	"github.com/shamimbinnur/jerd/internal/git"
	"github.com/shamimbinnur/jerd/internal/journal"
	"github.com/shamimbinnur/jerd/internal/prompt"
	"github.com/shamimbinnur/jerd/internal/template"
	"github.com/shamimbinnur/jerd/internal/ui"
)

var editorOptions = []prompt.Option{
	{Label: "📝 nano", Value: "nano"},
	{Label: "⌨️  vim", Value: "vim"},
	{Label: "🚀 nvim", Value: "nvim"},
	{Label: "💻 code (VS Code)", Value: "code"},
	{Label: "🔧 emacs", Value: "emacs"},
	{Label: "✨ subl (Sublime Text)", Value: "subl"},
	{Label: "✏️  Other (type manually)", Value: "custom"},
}

// chooseEditor asks for an editor, with a free-form answer behind "Other"
func chooseEditor(title, current string) (string, error) {
	choice, err := prompt.Select(title, editorOptions, current)
	if err != nil {
		return "", err
	}
	if choice != "custom" {
		return choice, nil
	}
	return prompt.Input("Enter your editor command:", current)
}

func templateOptions(set template.Set) []prompt.Option {
	options := make([]prompt.Option, len(set.Templates))
	for i, t := range set.Templates {
		options[i] = prompt.Option{Label: t.Name + " - " + t.Description, Value: t.Name}
	}
	return options
}

// initRoot is where "jerd init [path]" creates the journal
func (a *app) initRoot(path string) (string, error) {
	switch path {
	case "":
		return filepath.Abs(a.root())
	case ".":
		return os.Getwd()
	default:
		return filepath.Abs(path)
	}
}

func (a *app) initJournal(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	root, err := a.initRoot(path)
	if err != nil {
		return err
	}

	fmt.Println(a.theme.Box(a.theme.Title("📖 Welcome to Jerd")+"\n"+a.theme.Muted("A terminal-first journaling tool"), "5"))
	fmt.Println()

	_, tplErr := os.Stat(filepath.Join(root, template.FileName))
	if config.ProjectExists(root) || tplErr == nil {
		fmt.Println(a.theme.Warning("Jerd is already initialized at " + root))
		overwrite, err := prompt.Confirm("Do you want to overwrite the existing configuration?", false)
		if err != nil && !errors.Is(err, prompt.ErrCancelled) {
			return err
		}
		if !overwrite {
			fmt.Println("\nInitialization cancelled.")
			return nil
		}
		fmt.Println()
	}

	ed, err := chooseEditor("📝 Select your preferred editor:", config.DefaultEditor())
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Println("\nInitialization cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	templates := template.Defaults()
	tpl, err := prompt.Select("📋 Choose your default template:", templateOptions(templates), "default")
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Println("\nInitialization cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}
	project := config.DefaultProject()
	project.Editor = ed
	project.DefaultTemplate = tpl
	if err := config.SaveProject(root, project); err != nil {
		return err
	}
	if err := template.Save(root, templates); err != nil {
		return err
	}
	fmt.Println(a.theme.Success("Configuration created successfully!"))

	if !git.IsRepo(root) {
		track, err := prompt.Confirm("Track this journal with git?", false)
		if err == nil && track {
			if err := git.Init(root, "Initialize jerd journal"); err != nil {
				fmt.Println(a.theme.Warning("Could not create git repository: " + err.Error()))
			} else {
				fmt.Println(a.theme.Success("Created git repository"))
			}
		}
	}

	summary := strings.Join([]string{
		a.theme.Title("🎉 Initialized Jerd journal!"),
		"",
		"✓ Created " + config.ProjectFile,
		fmt.Sprintf("✓ Created %s with %d templates", template.FileName, len(templates.Templates)),
		"✓ Editor: " + a.theme.Accent(ed),
		"✓ Default template: " + a.theme.Accent(tpl),
		"",
		a.theme.Title("📚 Next steps:"),
		"  " + a.theme.Accent("jerd new") + "              ✍️  Create today's entry",
		"  " + a.theme.Accent("jerd new yesterday") + "    📅 Create yesterday's entry",
		"  " + a.theme.Accent("jerd new -t blank") + "     📄 Use the blank template",
		"  " + a.theme.Accent("jerd new -e vim") + "       ⌨️  Override editor",
	}, "\n")
	fmt.Println()
	fmt.Println(a.theme.Box(summary, "2"))
	return nil
}

func (a *app) newEntry(args []string) error {
	p, err := entryFlags.parse(args)
	if err != nil {
		return err
	}
	d, err := a.date(p.joined())
	if err != nil {
		return err
	}
	j, err := a.journal()
	if err != nil {
		return err
	}

	path := j.EntryPath(d)
	if j.Exists(d) {
		fmt.Println(a.theme.Success("📖 Opening existing entry: " + path))
	} else {
		content, err := j.Draft(d, p.value("template"))
		if errors.Is(err, template.ErrTemplateNotFound) {
			return &hintError{msg: err.Error(), hint: "Templates live in " + filepath.Join(j.Root, template.FileName)}
		}
		if err != nil {
			return err
		}
		if path, _, err = j.Create(d, content); err != nil {
			return err
		}
		fmt.Println(a.theme.Success("📝 Created " + path))
	}

	if err := editor.Open(path, a.editorFor(j, p.value("editor"))); err != nil {
		return err
	}
	commit(j, "Journal entry "+d.String(), path)
	return nil
}

func (a *app) openEntry(args []string) error {
	p, err := entryFlags.parse(args)
	if err != nil {
		return err
	}
	d, err := a.date(p.joined())
	if err != nil {
		return err
	}
	j, err := a.journal()
	if err != nil {
		return err
	}

	path := j.EntryPath(d)
	if !j.Exists(d) {
		return &hintError{msg: "Journal entry not found: " + path, hint: `Tip: Use "jerd new" to create a new journal entry.`}
	}
	fmt.Println(a.theme.Success("📖 Opening journal entry: " + path))
	if err := editor.Open(path, a.editorFor(j, p.value("editor"))); err != nil {
		return err
	}
	commit(j, "Update journal entry "+d.String(), path)
	return nil
}

func (a *app) showEntry(args []string) error {
	d, err := a.date(strings.Join(args, " "))
	if err != nil {
		return err
	}
	j, err := a.journal()
	if err != nil {
		return err
	}

	content, err := j.Read(d)
	if errors.Is(err, journal.ErrEntryNotFound) {
		return &hintError{msg: "Journal entry not found: " + j.EntryPath(d), hint: `Tip: Use "jerd new" to create a new journal entry.`}
	}
	if err != nil {
		return err
	}
	out, err := a.theme.RenderEntry(content, 0)
	if err != nil {
		return err
	}
	fmt.Println(a.theme.Header("📖 " + d.Format("Monday, January 2, 2006")))
	fmt.Print(out)
	return nil
}

func (a *app) deleteEntry(args []string) error {
	p, err := entryFlags.parse(args)
	if err != nil {
		return err
	}
	d, err := a.date(p.joined())
	if err != nil {
		return err
	}
	j, err := a.journal()
	if err != nil {
		return err
	}

	path := j.EntryPath(d)
	if !j.Exists(d) {
		return &hintError{msg: "Journal entry not found: " + path, hint: "Nothing to delete here!"}
	}

	fmt.Println(a.theme.Warning("You are about to delete: " + entryName(path)))
	if !p.has("yes") {
		ok, err := prompt.Confirm("🗑️  Are you sure you want to delete this entry?", false)
		if err != nil && !errors.Is(err, prompt.ErrCancelled) {
			return err
		}
		if !ok {
			fmt.Println("\nDeletion cancelled.")
			return nil
		}
	}

	if _, err := j.Delete(d); err != nil {
		return err
	}
	fmt.Println(a.theme.Success("🗑️  Deleted: " + entryName(path)))
	commit(j, "Delete journal entry "+d.String(), path)
	return nil
}

func (a *app) list(args []string) error {
	p, err := listFlags.parse(args)
	if err != nil {
		return err
	}
	q, err := parseList(p, a.parser.Reference())
	if err != nil {
		return &hintError{msg: err.Error(), hint: "Use a month name (January, jan, ...) or a 4-digit year (2024, ...)"}
	}
	j, err := a.journal()
	if err != nil {
		return err
	}

	switch {
	case q.all:
		years, err := j.Years()
		if err != nil {
			return err
		}
		if len(years) == 0 {
			fmt.Println(a.theme.Info("No journal entries found."))
			return nil
		}
		tree := make([]ui.Year, 0, len(years))
		for _, y := range years {
			year, err := yearTree(j, y)
			if err != nil {
				return err
			}
			tree = append(tree, year)
		}
		fmt.Print(a.theme.Tree(tree))
	case q.month == 0:
		year, err := yearTree(j, q.year)
		if err != nil {
			return err
		}
		if len(year.Months) == 0 {
			fmt.Println(a.theme.Info(fmt.Sprintf("No journal entries in %d", q.year)))
			return nil
		}
		fmt.Print(a.theme.YearTree(year))
	default:
		entries, err := j.Entries(q.year, q.month)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println(a.theme.Info(fmt.Sprintf("No journal entries in %s %d", q.month, q.year)))
			return nil
		}
		fmt.Print(a.theme.MonthList(q.year, ui.Month{Month: q.month, Entries: entries}))
	}
	fmt.Println()
	return nil
}

func yearTree(j *journal.Journal, y int) (ui.Year, error) {
	months, err := j.Months(y)
	if err != nil {
		return ui.Year{}, err
	}
	year := ui.Year{Year: y}
	for _, m := range months {
		entries, err := j.Entries(y, m)
		if err != nil {
			return ui.Year{}, err
		}
		year.Months = append(year.Months, ui.Month{Month: m, Entries: entries})
	}
	return year, nil
}

func (a *app) mood(args []string) error {
	p, err := periodFlags.parse(args)
	if err != nil {
		return err
	}
	per, err := moodPeriod(p, a.parser.Reference())
	if err != nil {
		return &hintError{msg: err.Error(), hint: `Try month names like "january", "jan", or use --week, --month, --year flags`}
	}
	j, err := a.journal()
	if err != nil {
		return err
	}

	days := j.Moods(per.start, per.end)
	if per.weekly {
		fmt.Print(a.theme.WeeklyChart(per.title, days))
	} else {
		fmt.Print(a.theme.MonthlyChart(per.title, days))
	}
	return nil
}

func (a *app) streak(args []string) error {
	p, err := periodFlags.parse(args)
	if err != nil {
		return err
	}
	if len(p.args) > 0 {
		return fmt.Errorf("unexpected argument: %s", p.args[0])
	}
	j, err := a.journal()
	if err != nil {
		return err
	}

	per := streakPeriod(p, a.parser.Reference())
	fmt.Print(a.theme.StreakChart(per.title, j.Activity(per.start, per.end)))
	return nil
}

func (a *app) configure(args []string) error {
	p, err := configFlags.parse(args)
	if err != nil {
		return err
	}
	j, err := a.journal()
	if err != nil {
		return err
	}
	current, err := config.LoadProject(j.Root)
	if err != nil {
		return err
	}

	all := !p.has("editor") && !p.has("template")
	updated := current

	if all || p.has("editor") {
		title := fmt.Sprintf("📝 Select your preferred editor (current: %s):", current.Editor)
		ed, err := chooseEditor(title, current.Editor)
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Println("\nNo changes made to configuration.")
			return nil
		}
		if err != nil {
			return err
		}
		updated.Editor = ed
	}

	if all || p.has("template") {
		set, err := template.Load(j.Root)
		if err != nil || len(set.Templates) == 0 {
			set = template.Defaults()
		}
		title := fmt.Sprintf("📋 Choose your default template (current: %s):", current.DefaultTemplate)
		tpl, err := prompt.Select(title, templateOptions(set), current.DefaultTemplate)
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Println("\nNo changes made to configuration.")
			return nil
		}
		if err != nil {
			return err
		}
		updated.DefaultTemplate = tpl
	}

	if updated == current {
		fmt.Println("\nNo changes made to configuration.")
		return nil
	}

	if _, err := config.UpdateProject(j.Root, func(p *config.Project) {
		p.Editor = updated.Editor
		p.DefaultTemplate = updated.DefaultTemplate
	}); err != nil {
		return err
	}

	fmt.Println(a.theme.Success("Configuration updated successfully!"))
	fmt.Println()
	if updated.Editor != current.Editor {
		fmt.Println(a.theme.Success("Editor: " + a.theme.Accent(updated.Editor)))
	}
	if updated.DefaultTemplate != current.DefaultTemplate {
		fmt.Println(a.theme.Success("Default template: " + a.theme.Accent(updated.DefaultTemplate)))
	}
	fmt.Println()
	return nil
}
