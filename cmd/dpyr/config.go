package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings of the dpyr command. Values come from flags, then
// DPYR_* environment variables, then the config file, then defaults.
type Config struct {
	LogLevel    string
	LogEncoding string
	Format      string
	Rows        int
	DB          string
	Threads     int
	MemoryLimit string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-encoding", "console")
	v.SetDefault("format", "table")
	v.SetDefault("rows", 5)
	v.SetDefault("db", "")
	v.SetDefault("threads", 0)
	v.SetDefault("memory-limit", "")
}

// loadConfig resolves the Config from flags, the environment and an optional config file
func loadConfig(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DPYR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}
	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	return &Config{
		LogLevel:    v.GetString("log-level"),
		LogEncoding: v.GetString("log-encoding"),
		Format:      v.GetString("format"),
		Rows:        v.GetInt("rows"),
		DB:          v.GetString("db"),
		Threads:     v.GetInt("threads"),
		MemoryLimit: v.GetString("memory-limit"),
	}, nil
}
