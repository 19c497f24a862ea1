package importer

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultCommand = "php"
)

var defaultArgs = []string{"symfony", "apostrophe:import-blog"}

// Config describes how the downstream blog importer is started. Request
// options are appended to Args.
type Config struct {
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Dir     string            `yaml:"dir"`
	Env     map[string]string `yaml:"env"`
}

func DefaultConfig() *Config {
	return &Config{
		Command: defaultCommand,
		Args:    append([]string(nil), defaultArgs...),
	}
}

// LoadConfig reads an importer configuration file. An empty path yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	importerConfig, err := parseConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	if err := validateConfig(importerConfig); err != nil {
		return nil, fmt.Errorf("invalid importer config %s: %w", path, err)
	}

	slog.Debug("Importer configuration loaded", "path", path, "command", importerConfig.Command, "args", importerConfig.Args)

	return importerConfig, nil
}

func parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var importerConfig Config
	if err := yaml.Unmarshal(data, &importerConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// The default arguments only belong to the default command.
	if importerConfig.Command == "" {
		importerConfig.Command = defaultCommand
		if importerConfig.Args == nil {
			importerConfig.Args = append([]string(nil), defaultArgs...)
		}
	}

	return &importerConfig, nil
}

func validateConfig(importerConfig *Config) error {
	if importerConfig == nil {
		return fmt.Errorf("importer config is nil")
	}

	if strings.TrimSpace(importerConfig.Command) == "" {
		return fmt.Errorf("command is required")
	}

	for i, arg := range importerConfig.Args {
		if strings.HasPrefix(arg, "--posts") {
			return fmt.Errorf("argument at index %d: --posts is set by the import", i)
		}
	}

	for key := range importerConfig.Env {
		if key == "" || strings.ContainsAny(key, "= ") {
			return fmt.Errorf("invalid environment variable name: %q", key)
		}
	}

	return nil
}

// environ renders Env as KEY=VALUE pairs appended to the current
// environment.
func (c *Config) environ() []string {
	if len(c.Env) == 0 {
		return nil
	}

	env := os.Environ()
	for key, value := range c.Env {
		env = append(env, key+"="+value)
	}
	return env
}
