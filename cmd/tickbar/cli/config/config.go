package config

import "time"

// Config represents the tickbar CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	Progress string     `mapstructure:"progress"`
	Demo     DemoConfig `mapstructure:"demo"`
}

// DemoConfig holds defaults for the demo command.
type DemoConfig struct {
	Items int           `mapstructure:"items"`
	Delay time.Duration `mapstructure:"delay"`
}
