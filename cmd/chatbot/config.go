package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// defaultSystemPrompt is the assistant persona, constant for the session
// lifetime unless overridden at startup.
const defaultSystemPrompt = "You are a helpful travel assistant. Provide friendly, informative advice about travel destinations, planning, and tips."

const (
	defaultTranscriptPath = "conversation_log.txt"
	defaultLogPath        = "chatbot.log"
	defaultConfigPath     = "chatbot.yaml"
	defaultTimeout        = 2 * time.Minute
)

// Config holds everything read at startup. Immutable once loaded.
type Config struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Model      string

	SystemPrompt   string
	TranscriptPath string
	LogPath        string
	Timeout        time.Duration
	Debug          bool
}

// fileConfig is the optional YAML tuning layer. Only non-empty fields
// override the environment-derived values.
type fileConfig struct {
	SystemPrompt string `yaml:"system_prompt"`
	Transcript   string `yaml:"transcript"`
	LogFile      string `yaml:"log_file"`
	Timeout      string `yaml:"timeout"`
	Debug        bool   `yaml:"debug"`
}

// Environment variable parsing functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// loadConfig assembles the startup configuration: .env file if present,
// then environment variables, then the optional YAML tuning file, then
// command-line flags.
func loadConfig(cmd *cli.Command) (*Config, error) {
	envFile := cmd.String("env-file")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	config := &Config{
		Endpoint:   os.Getenv("OPENAI_API_ENDPOINT"),
		APIKey:     os.Getenv("OPENAI_API_KEY"),
		APIVersion: os.Getenv("OPENAI_API_VERSION"),
		Model:      os.Getenv("OPENAI_DEPLOYED_MODEL"),

		SystemPrompt:   getEnvOrDefault("CHATBOT_SYSTEM_PROMPT", defaultSystemPrompt),
		TranscriptPath: getEnvOrDefault("CHATBOT_TRANSCRIPT", defaultTranscriptPath),
		LogPath:        getEnvOrDefault("CHATBOT_LOG_FILE", defaultLogPath),
		Timeout:        getEnvDuration("REQUEST_TIMEOUT", defaultTimeout),
	}

	if path := configFilePath(cmd); path != "" {
		override, err := loadConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(config, override, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging config file: %w", err)
		}
	}

	if cmd.IsSet("transcript") {
		config.TranscriptPath = cmd.String("transcript")
	}
	if cmd.IsSet("log-file") {
		config.LogPath = cmd.String("log-file")
	}
	if cmd.Bool("debug") {
		config.Debug = true
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// configFilePath resolves the YAML tuning file. An explicitly requested file
// must exist; the default path is used only when present.
func configFilePath(cmd *cli.Command) string {
	if cmd.IsSet("config") {
		return cmd.String("config")
	}
	path := getEnvOrDefault("CHATBOT_CONFIG", defaultConfigPath)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadConfigFile parses the YAML tuning file into a Config override.
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	override := &Config{
		SystemPrompt:   fc.SystemPrompt,
		TranscriptPath: fc.Transcript,
		LogPath:        fc.LogFile,
		Debug:          fc.Debug,
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout in %s: %w", path, err)
		}
		override.Timeout = d
	}
	return override, nil
}

// validate checks that every required credential was supplied. A missing
// value is fatal before the session is constructed.
func (c *Config) validate() error {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, "OPENAI_API_ENDPOINT")
	}
	if c.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.APIVersion == "" {
		missing = append(missing, "OPENAI_API_VERSION")
	}
	if c.Model == "" {
		missing = append(missing, "OPENAI_DEPLOYED_MODEL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
