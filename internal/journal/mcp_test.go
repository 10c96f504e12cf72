package journal

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/config"
	"github.com/shamimbinnur/jerd/internal/dateparse"
	"github.com/shamimbinnur/jerd/internal/template"
)

func newTestServer(t *testing.T) *MCPServer {
	t.Helper()
	j := newJournal(t)
	if err := config.SaveProject(j.Root, config.DefaultProject()); err != nil {
		t.Fatal(err)
	}
	if err := template.Save(j.Root, template.Defaults()); err != nil {
		t.Fatal(err)
	}
	return NewMCPServer(j, dateparse.NewWithToday(calendar.MustNew(2025, 6, 15)))
}

func TestMCPServerTools(t *testing.T) {
	s := newTestServer(t)
	if s.server == nil {
		t.Fatal("NewMCPServer did not create a server")
	}
}

func TestMCPParseDate(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, res, err := s.parseDate(ctx, nil, ParseDateArgs{Expression: "yesterday"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Date != "2025-06-14" || res.Weekday != "Saturday" || res.Exists {
		t.Errorf("parse_date = %+v", res)
	}

	_, _, err = s.parseDate(ctx, nil, ParseDateArgs{Expression: "someday"})
	if !errors.Is(err, dateparse.ErrUnrecognized) {
		t.Errorf("expected ErrUnrecognized, got %v", err)
	}
}

func TestMCPWriteAndGetEntry(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, res, err := s.writeEntry(ctx, nil, WriteEntryArgs{Date: "today", Template: "blank"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Date != "2025-06-15" || !strings.HasPrefix(res.Message, "Created") {
		t.Errorf("write_entry = %+v", res)
	}

	// second template write leaves the entry alone
	_, res, err = s.writeEntry(ctx, nil, WriteEntryArgs{Date: "today"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Message != "Entry already exists" {
		t.Errorf("second write_entry = %+v", res)
	}

	_, got, err := s.getEntry(ctx, nil, GetEntryArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got.Content, "Sunday, June 15, 2025") || got.Mood != "" {
		t.Errorf("get_entry = %+v", got)
	}

	content := "---\nmood: great\ntags: [work]\n---\nShipped it.\n"
	if _, _, err := s.writeEntry(ctx, nil, WriteEntryArgs{Date: "today", Content: content}); err != nil {
		t.Fatal(err)
	}
	_, got, err = s.getEntry(ctx, nil, GetEntryArgs{Date: "2025-06-15"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != content || got.Mood != "great" || len(got.Tags) != 1 || got.Tags[0] != "work" {
		t.Errorf("get_entry after update = %+v", got)
	}

	if _, _, err := s.getEntry(ctx, nil, GetEntryArgs{Date: "tomorrow"}); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("missing entry error = %v", err)
	}
}

func TestMCPWriteEntryUnknownTemplate(t *testing.T) {
	s := newTestServer(t)
	_, _, err := s.writeEntry(context.Background(), nil, WriteEntryArgs{Template: "work"})
	if !errors.Is(err, template.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestMCPListEntries(t *testing.T) {
	s := newTestServer(t)
	write(t, s.journal, "2024-12-31", "---\nmood: low\n---\n")
	write(t, s.journal, "2025-06-01", "")
	write(t, s.journal, "2025-06-14", "")

	ctx := context.Background()
	_, all, err := s.listEntries(ctx, nil, ListEntriesArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if all.Count != 3 || all.Entries[0].Date != "2025-06-14" || all.Entries[2].Mood != "low" {
		t.Errorf("list_entries = %+v", all)
	}

	_, june, _ := s.listEntries(ctx, nil, ListEntriesArgs{Year: 2025, Month: 6, Limit: 1})
	if june.Count != 1 || june.Entries[0].Date != "2025-06-14" {
		t.Errorf("list_entries June = %+v", june)
	}

	_, y2024, _ := s.listEntries(ctx, nil, ListEntriesArgs{Year: 2024})
	if y2024.Count != 1 {
		t.Errorf("list_entries 2024 = %+v", y2024)
	}

	if _, _, err := s.listEntries(ctx, nil, ListEntriesArgs{Month: 6}); err == nil {
		t.Error("month without year should fail")
	}
}

func TestMCPStreakAndMood(t *testing.T) {
	s := newTestServer(t)
	write(t, s.journal, "2025-06-13", "---\nmood: good\n---\n")
	write(t, s.journal, "2025-06-14", "---\nmood: great\n---\n")
	write(t, s.journal, "2025-06-15", "---\nmood: good\n---\n")
	write(t, s.journal, "2025-06-10", "")

	ctx := context.Background()
	_, streak, err := s.streak(ctx, nil, StreakArgs{Days: 7})
	if err != nil {
		t.Fatal(err)
	}
	if streak.Current != 3 || streak.Longest != 3 || streak.Entries != 4 || streak.Total != 7 || streak.Percentage != 57 {
		t.Errorf("journal_streak = %+v", streak)
	}

	_, week, err := s.moodTrend(ctx, nil, MoodArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if week.Start != "2025-06-09" || week.WithMood != 3 || week.WithoutMood != 1 || week.Missing != 3 {
		t.Errorf("journal_mood = %+v", week)
	}
	if len(week.Breakdown) != 2 || week.Breakdown[0].Mood != "good" || week.Breakdown[0].Count != 2 {
		t.Errorf("breakdown = %+v", week.Breakdown)
	}

	_, feb, err := s.moodTrend(ctx, nil, MoodArgs{Month: 2, Year: 2024})
	if err != nil {
		t.Fatal(err)
	}
	if feb.Start != "2024-02-01" || feb.End != "2024-02-29" || feb.Missing != 29 {
		t.Errorf("journal_mood Feb = %+v", feb)
	}
}

func TestMCPDaysLimit(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	for _, days := range []int{-1, maxDays + 1, 1000000} {
		if _, _, err := s.streak(ctx, nil, StreakArgs{Days: days}); err == nil || err.Error() != "days must be 1-3660" {
			t.Errorf("journal_streak days=%d: err = %v", days, err)
		}
		if _, _, err := s.moodTrend(ctx, nil, MoodArgs{Days: days}); err == nil || err.Error() != "days must be 1-3660" {
			t.Errorf("journal_mood days=%d: err = %v", days, err)
		}
	}

	_, streak, err := s.streak(ctx, nil, StreakArgs{Days: maxDays})
	if err != nil {
		t.Fatal(err)
	}
	if streak.Total != maxDays || streak.End != "2025-06-15" {
		t.Errorf("journal_streak at the limit = %+v", streak)
	}
	if _, _, err := s.moodTrend(ctx, nil, MoodArgs{Days: maxDays}); err != nil {
		t.Errorf("journal_mood at the limit: %v", err)
	}
}
