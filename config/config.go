package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model: where to listen, where
// to store data, which feed to scrape, and how to summarize.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Feed     FeedConfig     `yaml:"feed"`
	Summary  SummaryConfig  `yaml:"summary"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type FeedConfig struct {
	// Provider is "nitter" or "file".
	Provider   string `yaml:"provider"`
	NitterBase string `yaml:"nitterBase"`
	// Queries are the search terms sent to the instance.
	Queries []string `yaml:"queries"`
	// FixturePath is used by the file provider.
	FixturePath string `yaml:"fixturePath"`
	// Keywords override the relevance filter; empty means the defaults.
	Keywords          []string `yaml:"keywords"`
	RequestsPerSecond float64  `yaml:"requestsPerSecond"`
	Pages             int      `yaml:"pages"`
}

type SummaryConfig struct {
	// UseOpenAI appends an LLM note to the deterministic digest. The key
	// is always taken from env OPENAI_API_KEY.
	UseOpenAI bool   `yaml:"useOpenAI"`
	Model     string `yaml:"model"`
}

type ScheduleConfig struct {
	// RefreshSpec is a cron expression for the periodic feed refresh.
	RefreshSpec string `yaml:"refreshSpec"`
}

// Default returns a configuration that works out of the box with the file
// provider disabled and a public Nitter instance.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: "./sentinel.db"},
		Feed: FeedConfig{
			Provider:          "nitter",
			NitterBase:        "https://nitter.net",
			Queries:           []string{"bitcoin", "ethereum", "crypto"},
			RequestsPerSecond: 1,
			Pages:             2,
		},
		Summary:  SummaryConfig{UseOpenAI: false, Model: "gpt-4o-mini"},
		Schedule: ScheduleConfig{RefreshSpec: "0 * * * *"},
	}
}

// Load reads YAML config from path. A missing file is not an error: the
// defaults are returned so the binary runs without any setup.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
