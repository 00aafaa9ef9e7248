package config

import (
	"fmt"
	"strings"

	internal "github.com/ZanzyTHEbar/xtag/xtag"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	XTag XTagConfig `mapstructure:"xtag"`
}

// XTagConfig stores the scanning defaults. Command-line flags override any
// of these per run.
type XTagConfig struct {
	// Algorithm is the hash algorithm name (canonical or alias).
	Algorithm string `mapstructure:"algorithm"`
	// Namespace is the xattr prefix the tags live under.
	Namespace string `mapstructure:"namespace"`
	// IgnoreFile is the name of the per-root exclusion file.
	IgnoreFile string `mapstructure:"ignoreFile"`
	Recursive  bool   `mapstructure:"recursive"`
	Check      bool   `mapstructure:"check"`
	Force      bool   `mapstructure:"force"`
	DryRun     bool   `mapstructure:"dryRun"`
	Print      bool   `mapstructure:"print"`
	Verbosity  int    `mapstructure:"verbosity"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("xtag.algorithm", internal.DefaultAlgorithm)
	viper.SetDefault("xtag.namespace", internal.DefaultNamespace)
	viper.SetDefault("xtag.ignoreFile", internal.DefaultIgnoreFile)
	viper.SetDefault("xtag.recursive", false)
	viper.SetDefault("xtag.check", false)
	viper.SetDefault("xtag.force", false)
	viper.SetDefault("xtag.dryRun", false)
	viper.SetDefault("xtag.print", false)
	viper.SetDefault("xtag.verbosity", 0)

	viper.SetEnvPrefix(strings.ToUpper(internal.DefaultAppName))
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // xtag.dryRun becomes XTAG_XTAG_DRYRUN

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
