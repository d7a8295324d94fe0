package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/masmgr/historian/internal/changekind"
)

// Config is the root configuration structure.
type Config struct {
	History     HistoryConfig     `json:"history" yaml:"history"`
	Sentinels   SentinelConfig    `json:"sentinels" yaml:"sentinels"`
	ChangeKinds []changekind.Rule `json:"changeKinds" yaml:"changeKinds"`
	LLM         LLMConfig         `json:"llm" yaml:"llm"`
}

// HistoryConfig holds blame and aggregation options.
type HistoryConfig struct {
	Grouping        string `json:"grouping" yaml:"grouping"`               // Default: "commit"
	Backend         string `json:"backend" yaml:"backend"`                 // Default: "gogit"
	Source          string `json:"source" yaml:"source"`                   // Default: "worktree"
	BurstWindowDays int    `json:"burstWindowDays" yaml:"burstWindowDays"` // Default: 7
}

// SentinelConfig holds the fallback strings for missing commit metadata.
type SentinelConfig struct {
	UnknownEmail string `json:"unknownEmail" yaml:"unknownEmail"`
	NoSummary    string `json:"noSummary" yaml:"noSummary"`
}

// LLMConfig holds text-generation client options.
type LLMConfig struct {
	Provider       string `json:"provider" yaml:"provider"` // ollama, openai, gemini
	Host           string `json:"host" yaml:"host"`
	Port           int    `json:"port" yaml:"port"`
	Model          string `json:"model" yaml:"model"`
	APIKeyEnv      string `json:"apiKeyEnv" yaml:"apiKeyEnv"`
	TimeoutSeconds int    `json:"timeoutSeconds" yaml:"timeoutSeconds"` // 0 disables the timeout
}

// Timeout returns the configured request timeout.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Grouping:        "commit",
			Backend:         "gogit",
			Source:          "worktree",
			BurstWindowDays: 7,
		},
		Sentinels: SentinelConfig{
			UnknownEmail: "<UNKNOWN EMAIL>",
			NoSummary:    "<NO COMMIT MESSAGE>",
		},
		ChangeKinds: changekind.DefaultRules(),
		LLM: LLMConfig{
			Provider:       "ollama",
			Host:           "localhost",
			Port:           11434,
			Model:          "llama3",
			APIKeyEnv:      "GEMINI_API_KEY",
			TimeoutSeconds: 300,
		},
	}
}

// defaultFileNames are searched in the working directory, then in the home directory.
var defaultFileNames = []string{".historian.json", ".historian.yaml", ".historian.yml"}

// LoadConfig loads configuration from a file, merging with defaults.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		dirs := []string{"."}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			dirs = append(dirs, home)
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			dirs = append(dirs, envHome)
		}
	search:
		for _, dir := range dirs {
			for _, name := range defaultFileNames {
				p := filepath.Join(dir, name)
				if _, err := os.Stat(p); err == nil {
					path = p
					break search
				}
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file in the format implied by its extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
