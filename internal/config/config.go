package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every knob the launcher needs. The defaults match a stock
// Enterprise Search Pipeline checkout, so the zero-flag invocation works
// from the pipeline directory without any configuration at all.
type Config struct {
	MarkerFile    string   `mapstructure:"marker_file"`
	EnvFile       string   `mapstructure:"env_file"`
	Interpreter   string   `mapstructure:"interpreter"`
	Packages      []string `mapstructure:"packages"`
	Host          string   `mapstructure:"host"`
	Port          int      `mapstructure:"port"`
	Reload        bool     `mapstructure:"reload"`
	AppTarget     string   `mapstructure:"app_target"`
	FallbackEntry string   `mapstructure:"fallback_entry"`
	LogLevel      string   `mapstructure:"log_level"`
}

// Load builds the effective configuration: hardcoded defaults, then an
// optional .devserve.yaml in the working directory, then DEVSERVE_* env vars.
// The application's own .env file is NOT parsed here; devserve only checks
// that it exists, the app reads it itself.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("marker_file", "fastapi_file.py")
	v.SetDefault("env_file", ".env")
	v.SetDefault("interpreter", "python3")
	v.SetDefault("packages", []string{"uvicorn", "fastapi"})
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("reload", true)
	v.SetDefault("app_target", "fastapi_file:app")
	v.SetDefault("fallback_entry", "start_api.py")
	v.SetDefault("log_level", "info")

	v.SetConfigName(".devserve")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DEVSERVE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ServerURL is the address printed in the startup banner. The bind host is
// 0.0.0.0, so localhost is what a developer can actually open.
func (c Config) ServerURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// DocsURL points at the interactive API docs served by the application.
func (c Config) DocsURL() string {
	return c.ServerURL() + "/docs"
}
