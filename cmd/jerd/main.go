package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/config"
	"github.com/shamimbinnur/jerd/internal/dateparse"
	"github.com/shamimbinnur/jerd/internal/journal"
	"github.com/shamimbinnur/jerd/internal/ui"
)

// hintError is a failure shown with a follow-up line, such as the list of
// accepted date formats
type hintError struct {
	msg  string
	hint string
}

func (e *hintError) Error() string { return e.msg }

type app struct {
	cfg    *config.Config
	theme  *ui.Theme
	parser *dateparse.Parser
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	a := &app{
		cfg:    cfg,
		theme:  ui.NewTheme(cfg.Colors),
		parser: dateparse.New(),
	}

	args := os.Args[1:]
	if len(args) == 0 {
		a.exit(a.browse())
		return
	}

	subcommand, rest := args[0], args[1:]
	switch subcommand {
	case "-h", "--help", "help":
		printHelp()
	case "init":
		a.exit(a.initJournal(rest))
	case "n", "new":
		a.exit(a.newEntry(rest))
	case "o", "open":
		a.exit(a.openEntry(rest))
	case "show", "cat":
		a.exit(a.showEntry(rest))
	case "ls", "list":
		a.exit(a.list(rest))
	case "del", "rm":
		a.exit(a.deleteEntry(rest))
	case "mood":
		a.exit(a.mood(rest))
	case "streak":
		a.exit(a.streak(rest))
	case "config":
		a.exit(a.configure(rest))
	case "browse":
		a.exit(a.browse())
	case "mcp":
		j, err := a.journal()
		if err != nil {
			log.Fatal(err)
		}
		if err := journal.NewMCPServer(j, a.parser).Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Printf("Unknown subcommand: %s\n", subcommand)
		printHelp()
		os.Exit(1)
	}
}

// exit reports err and stops with status 1
func (a *app) exit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, a.theme.Error(err.Error()))
	var he *hintError
	if errors.As(err, &he) && he.hint != "" {
		fmt.Fprintln(os.Stderr, a.theme.Hint(he.hint))
	}
	os.Exit(1)
}

// root finds the journal for the working directory, falling back to the
// configured journal path when no project is found nearby
func (a *app) root() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	root := journal.Locate(cwd)
	if !config.ProjectExists(root) && a.cfg.Journal != "" {
		root = a.cfg.Journal
	}
	return root
}

// journal opens the current journal. It must have been initialized.
func (a *app) journal() (*journal.Journal, error) {
	j, err := journal.Open(a.root())
	if err != nil {
		return nil, err
	}
	if !j.Initialized() {
		fmt.Println(a.theme.NotInitialized())
		os.Exit(1)
	}
	j.Push = a.cfg.GitPush
	return j, nil
}

// date resolves a date expression, today when empty
func (a *app) date(expr string) (calendar.Date, error) {
	d, err := a.parser.Parse(expr)
	if err != nil {
		return calendar.Date{}, &hintError{msg: "Invalid date format: " + expr, hint: dateparse.Usage}
	}
	return d, nil
}

// editorFor picks the override, then the project's editor, then the global one
func (a *app) editorFor(j *journal.Journal, override string) string {
	if override != "" {
		return override
	}
	if p, err := config.LoadProject(j.Root); err == nil && p.Editor != "" {
		return p.Editor
	}
	return a.cfg.Editor
}

func commit(j *journal.Journal, message string, paths ...string) {
	if err := j.Commit(message, paths...); err != nil {
		log.Printf("Warning: git commit failed: %v", err)
	}
}

func entryName(path string) string {
	return filepath.Base(path)
}

func printHelp() {
	help := `jerd - terminal-first journaling

USAGE:
    jerd [COMMAND] [ARGS]

COMMANDS:
    (no command)              Browse entries interactively
    init [path]               Initialize a journal (path "." uses this directory)
    n, new [date] [OPTIONS]   Create an entry from a template and open it
        -t, --template <name>   Template to use (overrides config)
        -e, --editor <name>     Editor to use (overrides config)
    o, open [date] [-e name]  Open an existing entry
    show [date]               Render an entry in the terminal
    ls, list [-a]             Show the tree of all entries
    ls, list <year>           Show the entries of a year
    ls, list <month> [year]   Show the entries of a month
    del [date] [-y]           Delete an entry (asks first unless -y)
    mood [OPTIONS]            Mood graph for the last 7 days
        -w, --week              Last 7 days (default)
        -m, --month             Last 30 days
        -y, --year              Last 365 days
        <month> [year]          A calendar month
    streak [OPTIONS]          Journaling streak for the last 3 months
        -w, --week              Last 7 days
        -m, --month             Last 30 days
        -y, --year              Last 365 days
    config [-e] [-t]          Change the editor and the default template
    browse                    Browse entries interactively
    mcp                       Start MCP server (stdio) for AI agent integration
    -h, --help, help          Show this help message

DATES:
    Dates may be written as several words: jerd new 25 dec
    today, yesterday, tomorrow, now
    2025-12-25, 2025/12/25
    25, 25th, 25 dec, 25th December 2024
    dec, dec 25, December 2025
    monday, mon, last monday

BROWSE MODE:
    j/k or ↑/↓          Navigate entries
    g / G               Jump to top / bottom
    Enter               Open the selected entry
    n                   Create today's entry
    d                   Delete the selected entry (with confirmation)
    /                   Filter entries
    q, Ctrl+C           Quit

CONFIGURATION:
    ~/.config/jerd/config.toml:
    editor = "nvim"
    journal = "~/journal"
    color_mode = "dark"
    git_push = false

ENVIRONMENT VARIABLES:
    JERD_DIR            Journal used when none is found near the current directory
    EDITOR              Editor to use when none is configured
    JERD_COLOR_MODE     light or dark
    JERD_GIT_PUSH       Push commits to the remote (true/false)
`
	fmt.Print(help)
}
