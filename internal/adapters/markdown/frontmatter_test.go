package markdown

import (
	"slices"
	"testing"
)

const withFrontMatter = "---\n" + // 1
	"title: Garden\n" + // 2
	"# planted in spring\n" + // 3
	"tags: [outdoor, plants]\n" + // 4
	"---\n" + // 5
	"# Beds\n" + // 6
	"```\n" + // 7
	"# raised\n" + // 8
	"```\n" // 9

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte(withFrontMatter))
	if err != nil {
		t.Fatalf("ParseFrontMatter() error: %v", err)
	}
	if meta.Title != "Garden" {
		t.Errorf("expected title Garden, got %q", meta.Title)
	}
	if !slices.Equal(meta.Tags, []string{"outdoor", "plants"}) {
		t.Errorf("expected tags outdoor, plants; got %v", meta.Tags)
	}
	if len(body) == 0 || body[0] == '-' {
		t.Errorf("expected body without the metadata block, got %q", body)
	}
}

func TestParseFrontMatter_None(t *testing.T) {
	src := []byte("# Just a heading\n")
	meta, body, err := ParseFrontMatter(src)
	if err != nil {
		t.Fatalf("ParseFrontMatter() error: %v", err)
	}
	if !meta.IsZero() {
		t.Errorf("expected no metadata, got %+v", meta)
	}
	if string(body) != string(src) {
		t.Errorf("expected body unchanged, got %q", body)
	}
}

func TestFrontMatterLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"yaml block", withFrontMatter, 5},
		{"toml block", "+++\ntitle = \"x\"\n+++\n# H\n", 3},
		{"no block", "# H\n---\n", 0},
		{"unclosed", "---\ntitle: x\n# H\n", 0},
		{"byte order mark", "\uFEFF---\ntitle: x\n---\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frontMatterLines([]byte(tt.src)); got != tt.want {
				t.Errorf("frontMatterLines() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSkipLines(t *testing.T) {
	skip := SkipLines([]byte(withFrontMatter))

	for _, line := range []int{1, 2, 3, 4, 5, 8} {
		if !skip(line) {
			t.Errorf("expected line %d to be skipped", line)
		}
	}
	if skip(6) {
		t.Error("expected the heading after the front matter to be kept")
	}
}

func TestSkipLines_WithoutFrontMatter(t *testing.T) {
	skip := SkipLines([]byte("---\n# Kept\n"))
	if skip(2) {
		t.Error("expected a lone thematic break not to hide headings")
	}
}
