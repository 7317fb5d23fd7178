package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noMekTomlMessage = "no mek.toml found\nplease name the schema files explicitly, e.g.:\n  meksmith generate proto/frame.mek"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package  packageConfig  `toml:"package"`
	Generate generateConfig `toml:"generate"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type generateConfig struct {
	Target  string   `toml:"target"`
	Out     string   `toml:"out"`
	Schemas []string `toml:"schemas"`
}

func findMekToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "mek.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findMekToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// schemaPaths resolves the manifest's schema list against the project root.
// An empty list means every *.mek file under the root.
func (m *projectManifest) schemaPaths() ([]string, error) {
	if len(m.Config.Generate.Schemas) == 0 {
		files, err := listSchemas(m.Root)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%s: no *.mek files under %s", m.Path, m.Root)
		}
		return files, nil
	}
	paths := make([]string, 0, len(m.Config.Generate.Schemas))
	for _, rel := range m.Config.Generate.Schemas {
		paths = append(paths, filepath.Join(m.Root, rel))
	}
	return paths, nil
}
