package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ScanSettings are the defaults for one scan pass. Flags override
// whatever the settings file provides.
type ScanSettings struct {
	MinUnderpricing float64 `mapstructure:"min_underpricing"`
	MinProbability  float64 `mapstructure:"min_probability"`
	MaxSymbols      int     `mapstructure:"max_symbols"`
	DelayMs         int     `mapstructure:"delay_ms"`
	UniverseFile    string  `mapstructure:"universe_file"`
}

func Load(configPath string) (*ScanSettings, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("scanner")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SCANNER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults and environment
	}

	var settings ScanSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("min_underpricing", 1.0)
	v.SetDefault("min_probability", 0.5)
	v.SetDefault("max_symbols", 200)
	v.SetDefault("delay_ms", 300)
	v.SetDefault("universe_file", "data/sp500.csv")
}
