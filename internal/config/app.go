package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig carries the runtime settings shared by the CLI and the HTTP
// server. Values come from a config file, environment variables with the
// DECISION_TREE_ prefix, and command-line flags, in ascending precedence.
type AppConfig struct {
	ProgramsFile string `mapstructure:"programs_file"`
	GraphFile    string `mapstructure:"graph_file"`
	ProfileFile  string `mapstructure:"profile_file"`

	ListenAddr string `mapstructure:"listen_addr"`

	Lifestyle   string `mapstructure:"lifestyle"`
	AidScenario string `mapstructure:"aid_scenario"`

	Verbose bool `mapstructure:"verbose"`
}

// NewViper returns a viper instance with the application defaults and
// environment binding in place.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("programs_file", "programs.yaml")
	v.SetDefault("graph_file", "career_graph.yaml")
	v.SetDefault("profile_file", "")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("lifestyle", "frugal")
	v.SetDefault("aid_scenario", "no_aid")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("DECISION_TREE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadAppConfig reads the optional config file and unmarshals the merged
// settings. An empty path skips the file and uses defaults, environment,
// and flags only.
func LoadAppConfig(v *viper.Viper, configFile string) (AppConfig, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
