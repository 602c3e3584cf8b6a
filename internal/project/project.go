// Package project provides project file handling and persistence. A project
// file bundles everything one wall build needs: the profile, the hold map,
// and the output settings, so regenerating the layout is a single command.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// File represents a wall layout project file (.wallproj).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	// Profile is a built-in wall profile name; SpecPath overrides it with a
	// custom spec JSON (relative to the project file).
	Profile  string `json:"profile,omitempty"`
	SpecPath string `json:"spec,omitempty"`

	// Data file paths (relative to project file)
	HoldMapPath string `json:"holdmap,omitempty"`
	OutputDir   string `json:"output_dir,omitempty"`

	// User settings
	Settings Settings `json:"settings,omitempty"`
}

// Settings holds generation preferences for the project.
type Settings struct {
	Views        string  `json:"views,omitempty"` // comma-separated operations
	Preview      bool    `json:"preview"`
	PreviewScale float64 `json:"preview_scale,omitempty"` // px per mm
}

// New creates a new project file with default settings.
func New(name, profile string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
		Profile:  profile,
		Settings: Settings{
			Views:        "all",
			Preview:      false,
			PreviewScale: 0.25,
		},
	}
}

// Load loads a project from a .wallproj file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, err
	}

	return &proj, nil
}

// Save saves the project to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// resolve returns a path relative to the project file as an absolute path.
func resolve(projectPath, rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(filepath.Dir(projectPath), rel)
}

// GetSpecPath returns the absolute path to the custom spec file, or "" when
// the project uses a built-in profile.
func (p *File) GetSpecPath(projectPath string) string {
	return resolve(projectPath, p.SpecPath)
}

// GetHoldMapPath returns the absolute path to the hold map workbook.
func (p *File) GetHoldMapPath(projectPath string) string {
	return resolve(projectPath, p.HoldMapPath)
}

// GetOutputDir returns the absolute output directory. Defaults to the
// project file's directory.
func (p *File) GetOutputDir(projectPath string) string {
	if p.OutputDir == "" {
		return filepath.Dir(projectPath)
	}
	return resolve(projectPath, p.OutputDir)
}
