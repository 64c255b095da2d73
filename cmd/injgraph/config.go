package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the command configuration. Environment variables (optionally
// read from .env) set the defaults; flags override them.
type Config struct {
	Manifest        string
	LogLevel        string
	Addr            string
	DependencyCheck bool
}

// loadConfig reads the environment, then parses args over it.
func loadConfig(args []string, output io.Writer, envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env is optional.
	_ = godotenv.Load(files...)

	cfg := &Config{
		Manifest:        env("INJGRAPH_MANIFEST", "injgraph.yaml"),
		LogLevel:        env("INJGRAPH_LOG_LEVEL", "info"),
		Addr:            env("INJGRAPH_ADDR", ""),
		DependencyCheck: envBool("INJGRAPH_DEPENDENCY_CHECK", true),
	}

	fs := flag.NewFlagSet("injgraph", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "path to the component manifest")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Addr, "serve", cfg.Addr, "serve the report over HTTP on this address instead of printing it")
	fs.BoolVar(&cfg.DependencyCheck, "dependency-check", cfg.DependencyCheck, "compute the construction order")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func env(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}

	return b
}
