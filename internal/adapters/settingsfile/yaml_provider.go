package settingsfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/hsh/internal/core/domain/settings"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the default settings file location.
	EnvConfigPath     = "HSH_CONFIG"
	defaultConfigName = ".hshrc.yaml"
)

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML settings file.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

/*
DefaultPath picks the settings file: $HSH_CONFIG when set, otherwise
~/.hshrc.yaml. It returns an empty string when neither can be determined.
*/
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultConfigName)
}

// GetSettings reads and parses settings from the configured YAML file.
// If the file does not exist or is empty, it returns the defaults and no error.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return settings.Default(), nil
	}

	var loaded settings.Settings
	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments or "---" has no document at all.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}

	return loaded.WithDefaults(), nil
}
