package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectFile is the per-journal settings file written by "jerd init".
// Its content is JSON.
const ProjectFile = "jerd.config.js"

// ErrNotInitialized is returned when a directory has no project file
var ErrNotInitialized = errors.New("jerd is not initialized here; run 'jerd init' first")

// Project holds the settings stored next to a journal
type Project struct {
	Editor          string `json:"editor"`
	JerdPath        string `json:"jerdPath"`
	DateFormat      string `json:"dateFormat"`
	DefaultTemplate string `json:"defaultTemplate"`
	UIStyle         string `json:"uiStyle"`
}

// DefaultProject is what "jerd init" writes
func DefaultProject() Project {
	return Project{
		Editor:          DefaultEditor(),
		JerdPath:        "./jerd",
		DateFormat:      "YYYY-MM-DD",
		DefaultTemplate: "default",
		UIStyle:         "colorful",
	}
}

// LoadProject reads the project file in root. Fields missing from the file
// keep their defaults.
func LoadProject(root string) (Project, error) {
	p := DefaultProject()
	data, err := os.ReadFile(filepath.Join(root, ProjectFile))
	if err != nil {
		if os.IsNotExist(err) {
			return p, ErrNotInitialized
		}
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
	}
	return p, nil
}

// SaveProject writes p to root's project file
func SaveProject(root string, p Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, ProjectFile), append(data, '\n'), 0644)
}

// UpdateProject loads root's project file, applies fn and writes it back
func UpdateProject(root string, fn func(*Project)) (Project, error) {
	p, err := LoadProject(root)
	if err != nil {
		return p, err
	}
	fn(&p)
	return p, SaveProject(root, p)
}

// ProjectExists reports whether root holds a project file
func ProjectExists(root string) bool {
	_, err := os.Stat(filepath.Join(root, ProjectFile))
	return err == nil
}
