// Package config loads service configuration from YAML with environment
// variable expansion.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quorumlabs/maestro/internal/agent/ai"
)

// Config is the full service configuration.
type Config struct {
	Host string    `yaml:"host"`
	Port int       `yaml:"port"`
	Log  LogConfig `yaml:"log"`

	Groq   ProviderConfig `yaml:"groq"`
	Tavily ProviderConfig `yaml:"tavily"`

	// Routing maps personas to capability identifiers ("provider/model").
	Routing ai.Routing `yaml:"routing"`

	// ModelAliases maps deprecated model names to replacements. Empty means
	// the built-in table.
	ModelAliases map[string]string `yaml:"model_aliases"`

	// MaxToolRounds bounds the generate/tool loop per request.
	MaxToolRounds int `yaml:"max_tool_rounds"`

	// RequestTimeoutSeconds is enforced at the transport boundary.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// LogConfig controls the root logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// ProviderConfig holds credentials for one external API. An empty BaseURL
// means the provider's public endpoint.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// DefaultConfig returns the configuration used when no file is supplied.
// Credentials come from the environment.
func DefaultConfig() Config {
	return Config{
		Host:                  "127.0.0.1",
		Port:                  8000,
		Log:                   LogConfig{Level: "info", Pretty: true},
		Groq:                  ProviderConfig{APIKey: os.Getenv("GROQ_API_KEY")},
		Tavily:                ProviderConfig{APIKey: os.Getenv("TAVILY_API_KEY")},
		Routing:               DefaultRouting(),
		MaxToolRounds:         8,
		RequestTimeoutSeconds: 90,
	}
}

// DefaultRouting maps each persona to its stock Groq model.
func DefaultRouting() ai.Routing {
	return ai.Routing{
		Vision:    "groq/meta-llama/llama-4-scout-17b-16e-instruct",
		Financial: "groq/llama-3.3-70b-versatile",
		Creative:  "groq/llama-3.1-8b-instant",
	}
}

// LoadFromBytes parses YAML configuration after expanding ${VAR} references
// from the environment. Unset fields keep their defaults.
func LoadFromBytes(data []byte) (Config, error) {
	c := DefaultConfig()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	if c.MaxToolRounds <= 0 {
		c.MaxToolRounds = 8
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = 90
	}
	return c, nil
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}
	return LoadFromBytes(data)
}
