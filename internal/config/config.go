// Package config loads and validates the linter configuration.
//
// The format is a small YAML document naming each enabled rule and its
// option tokens:
//
//	rules:
//	  jsx-curly-spacing:
//	    options: ["never"]
//
// Option tokens are validated against the registered rule's schema
// here, before any rule is built, so rule implementations only ever
// see tokens they declared.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artursvonda/jsxlint/internal/rules"
)

// RuleConfig carries the per-rule settings.
type RuleConfig struct {
	Options []string `yaml:"options"`
}

// Config is the full linter configuration for one run.
type Config struct {
	Rules map[string]RuleConfig `yaml:"rules"`
}

// Default returns the configuration used when no file is given:
// jsx-curly-spacing forbidding spaces inside braces.
func Default() *Config {
	return &Config{
		Rules: map[string]RuleConfig{
			"jsx-curly-spacing": {Options: []string{"never"}},
		},
	}
}

// Parse decodes a YAML configuration document and validates every
// rule name and option token against the registry.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for name, rc := range cfg.Rules {
		meta, ok := rules.Describe(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q, known rules are %v", name, rules.Names())
		}

		if err := meta.Options.Validate(rc.Options); err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
	}

	return &cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
