package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WIKIMAP_WIKI", "WIKIMAP_ROOT", "WIKIMAP_EXT", "WIKIMAP_DIARY_DIR",
		"WIKIMAP_FILETYPE", "WIKIMAP_LOG_LEVEL", "WIKIMAP_LOG_JSON", "WIKIMAP_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "wiki_path: /notes\nroot: home\nextension: md\nfiletype: .md\nlog_json: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.WikiPath != "/notes" {
		t.Errorf("expected wiki path /notes, got %s", cfg.WikiPath)
	}
	if cfg.Root != "home" {
		t.Errorf("expected root home, got %s", cfg.Root)
	}
	if cfg.Extension != ".md" {
		t.Errorf("expected extension normalised to .md, got %s", cfg.Extension)
	}
	if cfg.Filetype != "md" {
		t.Errorf("expected filetype md, got %s", cfg.Filetype)
	}
	if cfg.DiaryDir != DefaultDiaryDir {
		t.Errorf("expected default diary dir, got %s", cfg.DiaryDir)
	}
	if !cfg.LogJSON {
		t.Error("expected log_json to be read")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("root: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("root: home\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("WIKIMAP_ROOT", "start")
	t.Setenv("WIKIMAP_LOG_JSON", "true")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Root != "start" {
		t.Errorf("expected env root start, got %s", cfg.Root)
	}
	if !cfg.LogJSON {
		t.Error("expected env to enable JSON logs")
	}
}

func TestWikiPath(t *testing.T) {
	clearEnv(t)
	if got := WikiPath(); got != DefaultWikiPath {
		t.Errorf("expected %s, got %s", DefaultWikiPath, got)
	}

	t.Setenv("WIKIMAP_WIKI", "/tmp/wiki")
	if got := WikiPath(); got != "/tmp/wiki" {
		t.Errorf("expected /tmp/wiki, got %s", got)
	}
}

func TestDefaultPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "wikimap", "config.yaml") {
		t.Errorf("unexpected default path %s", got)
	}

	t.Setenv("WIKIMAP_CONFIG", "/etc/wikimap.yaml")
	if got := DefaultPath(); got != "/etc/wikimap.yaml" {
		t.Errorf("expected WIKIMAP_CONFIG to win, got %s", got)
	}
}
