package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"JERD_DIR", "EDITOR", "JERD_COLOR_MODE", "JERD_GIT_PUSH"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configContent := `editor = "nvim"
journal = "$HOME/notes"
color_mode = "light"
git_push = true

[colors]
active = "green"
title = "#ff00ff"
`

	configDir := filepath.Join(tmpDir, ".config", "jerd")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Editor != "nvim" {
		t.Errorf("Expected editor = nvim, got %s", cfg.Editor)
	}
	if cfg.Journal != filepath.Join(tmpDir, "notes") {
		t.Errorf("Expected journal under HOME, got %s", cfg.Journal)
	}
	if !cfg.GitPush {
		t.Error("Expected git_push = true")
	}
	if cfg.Colors.Active != "2" {
		t.Errorf("Expected color name to resolve to ANSI 2, got %s", cfg.Colors.Active)
	}
	if cfg.Colors.Title != "#ff00ff" {
		t.Errorf("Expected hex color to pass through, got %s", cfg.Colors.Title)
	}
	// unset entries come from the light palette
	if cfg.Colors.Inactive != "#d0d7de" {
		t.Errorf("Expected light inactive color, got %s", cfg.Colors.Inactive)
	}
}

func TestEnvironmentVariablesPrecedence(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	configContent := `journal = "/config/journal"
color_mode = "light"
`
	if err := os.WriteFile(path, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("JERD_DIR", "/env/journal")
	t.Setenv("JERD_COLOR_MODE", "dark")
	t.Setenv("EDITOR", "hx")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Journal != "/env/journal" {
		t.Errorf("Expected journal from env, got %s", cfg.Journal)
	}
	if cfg.ColorMode != "dark" {
		t.Errorf("Expected color mode from env, got %s", cfg.ColorMode)
	}
	if cfg.Editor != "hx" {
		t.Errorf("Expected EDITOR from env, got %s", cfg.Editor)
	}
	if cfg.Colors.Active != "#39d353" {
		t.Errorf("Expected dark active color, got %s", cfg.Colors.Active)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Editor != DefaultEditor() {
		t.Errorf("Expected default editor, got %s", cfg.Editor)
	}
	if cfg.Colors.Active == "" || cfg.Colors.Muted == "" {
		t.Error("Expected palette defaults to be filled")
	}
}

func TestInvalidColorMode(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`color_mode = "sepia"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected an error for an unknown color mode")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := &Config{Editor: "micro", Journal: "/j", GitPush: true}
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Editor != "micro" || loaded.Journal != "/j" || !loaded.GitPush {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestProjectLifecycle(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	if _, err := LoadProject(root); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Expected ErrNotInitialized, got %v", err)
	}
	if ProjectExists(root) {
		t.Fatal("project should not exist yet")
	}

	if err := SaveProject(root, DefaultProject()); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProject(root)
	if err != nil {
		t.Fatal(err)
	}
	if p.JerdPath != "./jerd" || p.DefaultTemplate != "default" || p.Editor != "nano" {
		t.Errorf("unexpected defaults: %+v", p)
	}

	p, err = UpdateProject(root, func(p *Project) {
		p.Editor = "code"
		p.DefaultTemplate = "blank"
	})
	if err != nil {
		t.Fatal(err)
	}
	reloaded, _ := LoadProject(root)
	if reloaded != p || reloaded.Editor != "code" {
		t.Errorf("update not persisted: %+v", reloaded)
	}
}

func TestLoadProjectPartialFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ProjectFile), []byte(`{"editor": "vim"}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProject(root)
	if err != nil {
		t.Fatal(err)
	}
	if p.Editor != "vim" || p.JerdPath != "./jerd" {
		t.Errorf("partial file should keep defaults: %+v", p)
	}
}

func TestLoadProjectBadJSON(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ProjectFile), []byte(`module.exports = {}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(root); err == nil || errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected a parse error, got %v", err)
	}
}
