// Package journal stores one Markdown file per day under
// <root>/YYYY/YYYY-MM/YYYY-MM-DD.md and feeds those files to the activity
// and mood aggregators.
package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/shamimbinnur/jerd/internal/activity"
	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/config"
	"github.com/shamimbinnur/jerd/internal/frontmatter"
	"github.com/shamimbinnur/jerd/internal/git"
	"github.com/shamimbinnur/jerd/internal/mood"
	"github.com/shamimbinnur/jerd/internal/template"
)

// Ext is the entry file extension
const Ext = ".md"

// maxLevels is how far Locate climbs: entry dir, month, year, root
const maxLevels = 3

// ErrEntryNotFound is returned when a day has no entry
var ErrEntryNotFound = errors.New("no journal entry for this date")

var (
	yearDirRe  = regexp.MustCompile(`^\d{4}$`)
	monthDirRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

// Journal is a journal rooted at Root
type Journal struct {
	Root string
	Push bool // push commits to the remote, if any
}

// Open returns the journal at root
func Open(root string) (*Journal, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Journal{Root: abs}, nil
}

// Locate finds the journal root for startDir: the nearest directory at
// most three levels up holding a project file, else startDir/jerd.
func Locate(startDir string) string {
	current, err := filepath.Abs(startDir)
	if err != nil {
		current = startDir
	}
	for level := 0; level <= maxLevels; level++ {
		if config.ProjectExists(current) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return filepath.Join(startDir, "jerd")
}

// Initialized reports whether the root holds a project file
func (j *Journal) Initialized() bool {
	return config.ProjectExists(j.Root)
}

// EntryPath returns where the entry for d lives, whether or not it exists
func (j *Journal) EntryPath(d calendar.Date) string {
	return filepath.Join(j.monthDir(d.Year(), d.Month()), d.String()+Ext)
}

func (j *Journal) monthDir(year int, month time.Month) string {
	y := strconv.Itoa(year)
	return filepath.Join(j.Root, y, fmt.Sprintf("%s-%02d", y, int(month)))
}

// Exists reports whether d has an entry. Errors count as no entry.
func (j *Journal) Exists(d calendar.Date) bool {
	info, err := os.Stat(j.EntryPath(d))
	return err == nil && !info.IsDir()
}

// Mood returns the mood recorded in d's entry, or mood.None
func (j *Journal) Mood(d calendar.Date) mood.Label {
	return mood.Parse(frontmatter.ReadField(j.EntryPath(d), "mood"))
}

// Create writes content as d's entry unless one exists. It returns the
// entry path and whether a file was written.
func (j *Journal) Create(d calendar.Date, content string) (string, bool, error) {
	path := j.EntryPath(d)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, false, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return path, false, nil
		}
		return path, false, err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return path, false, err
	}
	return path, true, f.Close()
}

// Draft renders the content of a new entry for d from the named template.
// An empty name means the project's default template.
func (j *Journal) Draft(d calendar.Date, name string) (string, error) {
	if name == "" {
		project, err := config.LoadProject(j.Root)
		if err != nil {
			return "", err
		}
		name = project.DefaultTemplate
	}
	set, err := template.Load(j.Root)
	if err != nil {
		return "", err
	}
	tpl, err := set.Find(name)
	if err != nil {
		return "", err
	}
	return template.Render(tpl, d), nil
}

// Read returns d's entry
func (j *Journal) Read(d calendar.Date) (string, error) {
	data, err := os.ReadFile(j.EntryPath(d))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrEntryNotFound, d)
		}
		return "", err
	}
	return string(data), nil
}

// Write replaces d's entry, creating it if needed
func (j *Journal) Write(d calendar.Date, content string) (string, error) {
	path := j.EntryPath(d)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, err
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}

// Delete removes d's entry. Month and year directories left empty are
// removed too.
func (j *Journal) Delete(d calendar.Date) (string, error) {
	path := j.EntryPath(d)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return path, fmt.Errorf("%w: %s", ErrEntryNotFound, d)
		}
		return path, err
	}
	// Remove fails on non-empty directories, which is what we want
	monthDir := filepath.Dir(path)
	if os.Remove(monthDir) == nil {
		os.Remove(filepath.Dir(monthDir))
	}
	return path, nil
}

// Years lists the years that have a directory, oldest first
func (j *Journal) Years() ([]int, error) {
	entries, err := os.ReadDir(j.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var years []int
	for _, e := range entries {
		if e.IsDir() && yearDirRe.MatchString(e.Name()) {
			y, _ := strconv.Atoi(e.Name())
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

// Months lists the months of year that have a directory, in calendar order
func (j *Journal) Months(year int) ([]time.Month, error) {
	entries, err := os.ReadDir(filepath.Join(j.Root, strconv.Itoa(year)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var months []time.Month
	for _, e := range entries {
		m := monthDirRe.FindStringSubmatch(e.Name())
		if !e.IsDir() || m == nil || m[1] != strconv.Itoa(year) {
			continue
		}
		n, _ := strconv.Atoi(m[2])
		if n >= 1 && n <= 12 {
			months = append(months, time.Month(n))
		}
	}
	sort.Slice(months, func(a, b int) bool { return months[a] < months[b] })
	return months, nil
}

// Entries lists the dated entries of one month, oldest first. Files that
// don't follow the naming convention are ignored.
func (j *Journal) Entries(year int, month time.Month) ([]calendar.Date, error) {
	entries, err := os.ReadDir(j.monthDir(year, month))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var dates []calendar.Date
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != Ext {
			continue
		}
		d, err := calendar.Parse(name[:len(name)-len(Ext)])
		if err != nil || d.Year() != year || d.Month() != month {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })
	return dates, nil
}

// All lists every entry in the journal, oldest first
func (j *Journal) All() ([]calendar.Date, error) {
	years, err := j.Years()
	if err != nil {
		return nil, err
	}
	var all []calendar.Date
	for _, y := range years {
		months, err := j.Months(y)
		if err != nil {
			return nil, err
		}
		for _, m := range months {
			dates, err := j.Entries(y, m)
			if err != nil {
				return nil, err
			}
			all = append(all, dates...)
		}
	}
	return all, nil
}

// Activity returns which days of start..end have an entry
func (j *Journal) Activity(start, end calendar.Date) []activity.Day {
	return activity.CollectParallel(start, end, j.Exists)
}

// Moods returns the mood series for start..end
func (j *Journal) Moods(start, end calendar.Date) []mood.Day {
	return mood.CollectParallel(start, end, j.Mood, j.Exists)
}

// Commit records changes to paths when the journal is a git repository
func (j *Journal) Commit(message string, paths ...string) error {
	return git.Commit(paths, message, j.Push)
}

// LastDays is the n-day range ending today
func LastDays(today calendar.Date, n int) (calendar.Date, calendar.Date) {
	if n < 1 {
		n = 1
	}
	return today.AddDays(-(n - 1)), today
}

// MonthRange is the first to the last day of a month
func MonthRange(year int, month time.Month) (calendar.Date, calendar.Date) {
	start := calendar.MustNew(year, month, 1)
	return start, calendar.MustNew(year, month, calendar.DaysIn(year, month))
}
