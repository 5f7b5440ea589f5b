package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"dconn.dev/showcase/internal/models"
)

// Settings holds everything read from the environment
type Settings struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	ProjectsPath    string        `env:"PROJECTS_PATH" envDefault:"data/projects.json"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	DefaultLocale   string        `env:"DEFAULT_LOCALE" envDefault:"pt-BR"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Config holds all application configuration
type Config struct {
	Settings
	Projects *models.ProjectList
}

// Load reads .env (when present), the environment and the projects file
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	settings, err := ParseSettings()
	if err != nil {
		return nil, err
	}

	projects, err := LoadProjects(settings.ProjectsPath)
	if err != nil {
		return nil, err
	}

	return &Config{Settings: settings, Projects: projects}, nil
}

// ParseSettings loads settings from environment variables
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// LoadProjects reads and parses the projects file
func LoadProjects(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read projects %s: %w", path, err)
	}

	var projects models.ProjectList
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse projects %s: %w", path, err)
	}

	seen := make(map[string]bool, len(projects.Projects))
	for _, p := range projects.Projects {
		if p.ID == "" {
			continue
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("parse projects %s: duplicate id %q", path, p.ID)
		}
		seen[p.ID] = true
	}

	return &projects, nil
}
