package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/frontmatter"
)

var sunday = calendar.MustNew(2025, 6, 15)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"YYYY-MM-DD", "2025-06-15"},
		{"dddd, MMMM D, YYYY", "Sunday, June 15, 2025"},
		{"ddd MMM D YY", "Sun Jun 15 25"},
		{"D/M/YYYY", "15/6/2025"},
		{"[Week of] MMMM", "Week of June"},
		{"dd d", "Su 0"},
		{"HH:mm A", "00:00 AM"},
		{"[x", "[x"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.pattern, sunday); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}

	if got := FormatDate("DD/MM", calendar.MustNew(2024, 2, 3)); got != "03/02" {
		t.Errorf("zero padding: got %q", got)
	}
}

func TestRenderBlank(t *testing.T) {
	blank, err := Defaults().Find("blank")
	if err != nil {
		t.Fatal(err)
	}

	got := Render(blank, sunday)
	want := "---\ndate: 2025-06-15\ntags: []\nmood:\n---\n\n" +
		"## 📅 Date\n\nSunday, June 15, 2025\n\n" +
		"## 📝 Notes\n\n\n"
	if got != want {
		t.Errorf("Render(blank) =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderDefaultHasMoodField(t *testing.T) {
	def, err := Defaults().Find("default")
	if err != nil {
		t.Fatal(err)
	}
	out := Render(def, sunday)

	fm, body := frontmatter.Parse([]byte(out))
	if fm == nil {
		t.Fatal("rendered entry has no frontmatter")
	}
	if _, ok := fm["mood"]; !ok {
		t.Error("expected an empty mood field")
	}
	if got := fm.List("tags"); len(got) != 2 || got[0] != "daily" {
		t.Errorf("tags = %v", got)
	}
	if !strings.HasPrefix(body, "## 📖 Daily Journal - 2025-06-15\n\n") {
		t.Errorf("{{date}} not expanded in title: %q", body[:40])
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("entry should end with a newline")
	}
}

func TestRenderSectionTypes(t *testing.T) {
	tpl := Template{
		Name: "mixed",
		Sections: []Section{
			{Type: TypeList, Title: "Todo", Items: []string{"a", "b on {{date}}"}},
			{Type: TypeList, Title: "Empty"},
			{Type: "video", Title: "Skipped"},
			{Type: TypeText, Content: "no title"},
			{Type: TypeAutoDate},
		},
	}

	out := Render(tpl, sunday)
	_, body := frontmatter.Parse([]byte(out))
	want := "## Todo\n\n- a\n- b on 2025-06-15\n\n## Empty\n\n- \n\nno title\n\n2025-06-15\n"
	if body != want {
		t.Errorf("body =\n%q\nwant\n%q", body, want)
	}
}

func TestFind(t *testing.T) {
	set := Defaults()
	if got := set.Names(); len(got) != 2 || got[0] != "default" || got[1] != "blank" {
		t.Errorf("Names() = %v", got)
	}

	_, err := set.Find("work")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("Find(work) error = %v, want ErrTemplateNotFound", err)
	}
	if !strings.Contains(err.Error(), "default, blank") {
		t.Errorf("error should list available templates: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()

	if _, err := Load(root); err == nil {
		t.Error("Load without a file should fail")
	}

	if err := Save(root, Defaults()); err != nil {
		t.Fatal(err)
	}
	set, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	blank, err := set.Find("blank")
	if err != nil {
		t.Fatal(err)
	}
	if blank.Sections[0].Format != "dddd, MMMM D, YYYY" {
		t.Errorf("format lost in round trip: %+v", blank.Sections[0])
	}
}
