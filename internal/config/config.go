// Package config loads tool configuration: the property-name mapping and
// output paths from a YAML file, and Notion credentials from the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the papnt.yaml file contents.
type Config struct {
	// Propnames renames canonical destination keys to the property names
	// used by the target database. Keys left out keep their canonical
	// names.
	Propnames map[string]string `yaml:"propnames"`

	// BibDir is where makebib writes .bib files.
	BibDir string `yaml:"dir_save_bib"`

	// CachePath is the payload cache location; empty disables caching.
	CachePath string `yaml:"cache_path"`

	// Mailto is the contact address sent to CrossRef's polite pool.
	Mailto string `yaml:"mailto"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for key, name := range cfg.Propnames {
		if name == "" {
			return nil, fmt.Errorf("%s: propnames entry %q maps to an empty name", path, key)
		}
	}
	return &cfg, nil
}

// Credentials holds the Notion integration token and target database.
type Credentials struct {
	Token      string
	DatabaseID string
}

// LoadCredentials reads NOTION_TOKEN and NOTION_DATABASE_ID, loading a
// .env file first when one exists.
func LoadCredentials() (Credentials, error) {
	// Missing .env is fine; the variables may come from the environment.
	_ = godotenv.Load()

	creds := Credentials{
		Token:      os.Getenv("NOTION_TOKEN"),
		DatabaseID: os.Getenv("NOTION_DATABASE_ID"),
	}
	if creds.Token == "" {
		return Credentials{}, fmt.Errorf("NOTION_TOKEN is not set")
	}
	if creds.DatabaseID == "" {
		return Credentials{}, fmt.Errorf("NOTION_DATABASE_ID is not set")
	}
	return creds, nil
}
