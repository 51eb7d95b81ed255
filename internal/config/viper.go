package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Import struct {
		BatchSize          int  `mapstructure:"batch_size" yaml:"batch_size"`
		SkipDuplicates     bool `mapstructure:"skip_duplicates" yaml:"skip_duplicates"`
		CreateCategories   bool `mapstructure:"create_categories" yaml:"create_categories"`
		CreateAccounts     bool `mapstructure:"create_accounts" yaml:"create_accounts"`
		MergeSubCategories bool `mapstructure:"merge_sub_categories" yaml:"merge_sub_categories"`
	} `mapstructure:"import" yaml:"import"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Categories struct {
		MappingFile string `mapstructure:"mapping_file" yaml:"mapping_file"`
	} `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig loads configuration with hierarchical precedence:
// defaults, then an optional config.yaml, then QIANJI_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.qianji-csv")
	v.AddConfigPath(".qianji-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("QIANJI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// keep going with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("import.batch_size", 500)
	v.SetDefault("import.skip_duplicates", true)
	v.SetDefault("import.create_categories", true)
	v.SetDefault("import.create_accounts", true)
	v.SetDefault("import.merge_sub_categories", true)

	v.SetDefault("data.directory", ".qianji-csv/data")
	v.SetDefault("categories.mapping_file", "")
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level '%s'", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("unknown log format '%s'", config.Log.Format)
	}
	if config.Import.BatchSize <= 0 {
		return fmt.Errorf("import batch_size must be positive, got %d", config.Import.BatchSize)
	}
	return nil
}
