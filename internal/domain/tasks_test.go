package domain

import (
	"reflect"
	"testing"
)

const simpleText = `# 2019-05-18

## Daily checklist

* [ ] Take a vitamin C
* [X] Eat your daily carrot!

## Todo

* [ ] Finish vimwiki article
`

const multipleListTypesText = `# Text with more list types

## List with dashes

- [ ] First dashed thing
- [ ] Second dashed thing

## List with asterisks

* [ ] And here we use asterisk
`

const textWithSublists = `# Text with sublists

- [ ] Some simple task
- [ ] Major task composed of multiple actions
    - [ ] Some nested task
    - [ ] Another minor task
- [ ] Another simple task
`

const simpleTextVimwikiSyntax = `= 2019-05-18 =

== Daily checklist ==

* [ ] Take a vitamin C
* [X] Eat your daily carrot!

== Todo ==

* [ ] Finish vimwiki article
`

const textWithEverythingIndented = `= TODO =

  - [ ] Some long text so this needs
    to be multi-line

  - [ ] Top-level task, that is indented
    - [ ] First nesting level
      - [ ] Second nesting level
      - [ ] Some micro action
`

func TestTaskCounter_Count(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		counter TaskCounter
		want    int
	}{
		{"simple text", simpleText, TaskCounter{}, 2},
		{"dashes only", multipleListTypesText, TaskCounter{Bullets: []string{"-"}}, 2},
		{"default bullets", multipleListTypesText, TaskCounter{}, 3},
		{"sublists counted", textWithSublists, TaskCounter{}, 5},
		{"sublists ignored", textWithSublists, TaskCounter{IgnoreSublists: true}, 3},
		{"indented counted", textWithEverythingIndented, TaskCounter{}, 5},
		{"indented top level ignored", textWithEverythingIndented, TaskCounter{IgnoreSublists: true}, 0},
		{
			name:    "indentation level skips leading characters",
			text:    textWithEverythingIndented,
			counter: TaskCounter{IgnoreSublists: true, IndentationLevel: 2},
			want:    2,
		},
		{"section only", simpleText, TaskCounter{Section: "## Daily checklist"}, 1},
		{"last section runs to end", simpleText, TaskCounter{Section: "## Todo"}, 1},
		{"vimwiki section", simpleTextVimwikiSyntax, TaskCounter{Section: "== Daily checklist =="}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.counter.Count(tt.text); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTaskCounter_SectionText(t *testing.T) {
	t.Run("markdown section to end of text", func(t *testing.T) {
		c := TaskCounter{Section: "## Todo"}
		got, found := c.SectionText(simpleText)
		if !found {
			t.Fatal("expected section to be found")
		}
		want := "## Todo\n\n* [ ] Finish vimwiki article\n"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("vimwiki section ends before next equal heading", func(t *testing.T) {
		c := TaskCounter{Section: "== Daily checklist =="}
		got, _ := c.SectionText(simpleTextVimwikiSyntax)
		want := "== Daily checklist ==\n\n* [ ] Take a vitamin C\n* [X] Eat your daily carrot!\n\n"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("level token inside body ends the section early", func(t *testing.T) {
		text := "== Todo ==\n* [ ] a\nuse == to compare\n* [ ] b\n== Done ==\n"
		c := TaskCounter{Section: "== Todo =="}
		if got := c.Count(text); got != 1 {
			t.Errorf("expected the known early cut to leave 1 task, got %d", got)
		}
	})
}

func TestTaskCounter_MissingSection(t *testing.T) {
	t.Run("empty policy counts nothing", func(t *testing.T) {
		c := TaskCounter{Section: "## Nowhere", MissingSection: MissingSectionEmpty}
		text, found := c.SectionText(simpleText)
		if found || text != "" {
			t.Errorf("expected no text and not found, got %q %v", text, found)
		}
		if got := c.Count(simpleText); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("whole document policy counts everything", func(t *testing.T) {
		c := TaskCounter{Section: "## Nowhere", MissingSection: MissingSectionWholeDocument}
		text, found := c.SectionText(simpleText)
		if found || text != simpleText {
			t.Errorf("expected whole text and not found, got found=%v", found)
		}
		if got := c.Count(simpleText); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})
}

func TestTaskCounter_UnfinishedTasks(t *testing.T) {
	c := TaskCounter{}
	got := c.UnfinishedTasks(simpleText)
	want := []string{"* [ ] Take a vitamin C", "* [ ] Finish vimwiki article"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseBullets(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"*-", []string{"*", "-"}},
		{"*", []string{"*"}},
		{"", nil},
		{"•", []string{"•"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBullets(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBullets(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMissingSectionPolicy(t *testing.T) {
	if p, ok := ParseMissingSectionPolicy("all"); !ok || p != MissingSectionWholeDocument {
		t.Errorf("expected all to parse as whole document")
	}
	if p, ok := ParseMissingSectionPolicy(""); !ok || p != MissingSectionEmpty {
		t.Errorf("expected empty string to default to empty policy")
	}
	if _, ok := ParseMissingSectionPolicy("sometimes"); ok {
		t.Error("expected unknown policy to be rejected")
	}
}
