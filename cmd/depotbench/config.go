package main

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Config holds the defaults read from the environment; flags override them
type Config struct {
	Profile     string `config:"DEPOT_BENCH_PROFILE"`
	ProfilePath string `config:"DEPOT_BENCH_PROFILE_PATH"`
	LogLevel    string `config:"DEPOT_BENCH_LOG_LEVEL"`
}

func loadConfig() (Config, error) {
	cfg := Config{
		ProfilePath: ".",
		LogLevel:    "info",
	}
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to read environment")
	}
	return cfg, nil
}
