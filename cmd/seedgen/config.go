package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nkiryanov/pointseed/internal/logger"
	"github.com/nkiryanov/pointseed/internal/models"
)

const (
	defaultProfile      = models.ProfileRealistic
	defaultOutputDir    = "."
	defaultLoggingLevel = logger.LevelInfo
	defaultEnvironment  = logger.EnvDevelopment
)

type Config struct {
	// Fixture profile to generate (realistic, wxpay)
	Profile string

	// Random seed; zero means time based, the chosen seed is logged to replay the run
	Seed int64

	// Directory the SQL file is written to
	OutputDir string

	// Default logging level
	LogLevel string

	// Environment
	Environment string
}

func NewConfig() *Config {
	return &Config{
		Profile:     defaultProfile,
		OutputDir:   defaultOutputDir,
		LogLevel:    defaultLoggingLevel,
		Environment: defaultEnvironment,
	}
}

// Load variable from '.env' file (should be located at working directory)
func (c *Config) LoadDotEnv(getwd func() (string, error)) error {
	wd, err := getwd()
	if err != nil {
		return err
	}

	envMap, err := godotenv.Read(filepath.Join(wd, ".env"))

	switch {
	case err == nil:
		return c.LoadEnv(func(key string) string {
			return envMap[key]
		})
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return err
	}
}

func (c *Config) LoadEnv(getenv func(string) string) error {
	// Set option to value if it not empty
	setString := func(o *string) func(value string) error {
		return func(value string) error {
			if value != "" {
				*o = value
			}
			return nil
		}
	}
	setInt64 := func(o *int64) func(value string) error {
		return func(value string) error {
			if value == "" {
				return nil
			}
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			*o = v
			return nil
		}
	}

	envMap := map[string]func(string) error{
		"PROFILE":     setString(&c.Profile),
		"SEED":        setInt64(&c.Seed),
		"OUTPUT_DIR":  setString(&c.OutputDir),
		"LOG_LEVEL":   setString(&c.LogLevel),
		"ENVIRONMENT": setString(&c.Environment),
	}

	for key, parseFn := range envMap {
		if err := parseFn(getenv(key)); err != nil {
			return fmt.Errorf("invalid %s. Err: %w", key, err)
		}
	}

	return nil
}

// BindFlags registers options on fs with the current values as defaults
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Profile, "profile", "p", c.Profile, "Fixture profile (realistic, wxpay)")
	fs.Int64VarP(&c.Seed, "seed", "s", c.Seed, "Random seed, 0 picks one from the clock")
	fs.StringVarP(&c.OutputDir, "output-dir", "o", c.OutputDir, "Directory to write the SQL file to")
	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Logging level (debug, info, warn, error)")
	fs.StringVarP(&c.Environment, "environment", "e", c.Environment, "Environment (dev, prod)")
}

func (c *Config) ParseFlags(args []string) error {
	fs := pflag.NewFlagSet("seedgen", pflag.ContinueOnError)
	c.BindFlags(fs)

	return fs.Parse(args)
}
