package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/cth1011/feedboard/internal/feedback"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// SeedEntry is one pre-loaded record in the config file. Ids are not
// configurable; they are assigned positionally at load.
type SeedEntry struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Category    string    `yaml:"category,omitempty"`
	Rating      int       `yaml:"rating"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type Config struct {
	// DateFormat is a Go time layout for list timestamps. Empty or
	// "relative" shows relative times ("2d", "5h").
	DateFormat string `yaml:"date_format,omitempty"`

	Seed []SeedEntry `yaml:"seed"`
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "feedboard", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	for i, e := range cfg.Seed {
		if e.Title == "" {
			return fmt.Errorf("seed %d: title is required", i)
		}
		if e.Rating < 1 || e.Rating > 5 {
			return fmt.Errorf("seed %q: rating must be between 1 and 5, got %d", e.Title, e.Rating)
		}
		if _, err := feedback.ParseCategory(e.Category); err != nil {
			return fmt.Errorf("seed %q: %w", e.Title, err)
		}
		if e.CreatedAt.IsZero() {
			return fmt.Errorf("seed %q: created_at is required", e.Title)
		}
	}
	return nil
}

// SeedRecords converts the configured seed into board records. Ids run
// 1..n oldest entry first, and the result is in raw board order (newest
// insertion first), as if each entry had been added in turn.
func (c *Config) SeedRecords() []feedback.Feedback {
	entries := make([]SeedEntry, len(c.Seed))
	copy(entries, c.Seed)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	records := make([]feedback.Feedback, len(entries))
	for i, e := range entries {
		cat, _ := feedback.ParseCategory(e.Category) // validated at load
		records[len(entries)-1-i] = feedback.Feedback{
			ID:          i + 1,
			Title:       e.Title,
			Description: e.Description,
			Category:    cat,
			Rating:      e.Rating,
			CreatedAt:   e.CreatedAt,
		}
	}
	return records
}
