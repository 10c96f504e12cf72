package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shamimbinnur/jerd/internal/calendar"
)

const (
	treeBranch   = "├──"
	treeLast     = "└──"
	treeVertical = "│  "
	treeSpace    = "   "
)

// Month is one month of entries in the tree
type Month struct {
	Month   time.Month
	Entries []calendar.Date
}

// Year is one year of entries in the tree
type Year struct {
	Year   int
	Months []Month
}

// Tree draws every year, month and entry
func (t *Theme) Tree(years []Year) string {
	var b strings.Builder
	b.WriteString("\n" + t.title.Render("📁 Journal Entries") + "\n\n")
	for i, y := range years {
		last := i == len(years)-1
		b.WriteString(connector(last) + " 📅 " + t.year.Render(strconv.Itoa(y.Year)) + "\n")
		t.writeMonths(&b, y.Months, childPrefix("", last))
	}
	return b.String()
}

// YearTree draws the months of one year
func (t *Theme) YearTree(y Year) string {
	var b strings.Builder
	b.WriteString("\n" + t.title.Render(fmt.Sprintf("📅 %d", y.Year)) + "\n\n")
	t.writeMonths(&b, y.Months, "")
	return b.String()
}

// MonthList draws the entries of one month
func (t *Theme) MonthList(year int, m Month) string {
	var b strings.Builder
	b.WriteString("\n" + t.title.Render(fmt.Sprintf("📆 %s %d", m.Month, year)) + "\n\n")
	t.writeEntries(&b, m.Entries, "")
	return b.String()
}

func (t *Theme) writeMonths(b *strings.Builder, months []Month, prefix string) {
	for i, m := range months {
		last := i == len(months)-1
		b.WriteString(prefix + connector(last) + " 📆 " + t.month.Render(m.Month.String()) + "\n")
		t.writeEntries(b, m.Entries, childPrefix(prefix, last))
	}
}

func (t *Theme) writeEntries(b *strings.Builder, entries []calendar.Date, prefix string) {
	for i, d := range entries {
		b.WriteString(prefix + connector(i == len(entries)-1) + " 📝 " + t.entry.Render(d.String()+".md") + "\n")
	}
}

func connector(last bool) string {
	if last {
		return treeLast
	}
	return treeBranch
}

func childPrefix(prefix string, last bool) string {
	if last {
		return prefix + treeSpace
	}
	return prefix + treeVertical
}
