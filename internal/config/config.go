// Package config loads the function settings from defaults, an optional TOML file and the
// environment.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Credentials selects the Google credentials used for the Sheets and Storage APIs. An empty
// File falls back to application default credentials.
type Credentials struct {
	File string `toml:"file"`
}

// CORS holds the fixed headers emitted by the public readers.
type CORS struct {
	AllowOrigin  string `toml:"allow_origin"`
	AllowMethods string `toml:"allow_methods"`
	AllowHeaders string `toml:"allow_headers"`
}

// LastMovie configures the last-movie-watched reader.
type LastMovie struct {
	Spreadsheet string `toml:"spreadsheet"`
	Range       string `toml:"range"`
	Header      bool   `toml:"header"`
	Bucket      string `toml:"bucket"`
	Object      string `toml:"object"`
	CORS        bool   `toml:"cors"`
}

// NetWorth configures the net-worth snapshot exporter.
type NetWorth struct {
	Spreadsheet string `toml:"spreadsheet"`
	Range       string `toml:"range"`
	Bucket      string `toml:"bucket"`
	Object      string `toml:"object"`
	CORS        bool   `toml:"cors"`
}

// Export configures the generic sheet-to-bucket exporter.
type Export struct {
	Range string `toml:"range"`
}

// Columns names the activity CSV headers.
type Columns struct {
	Date       string `toml:"date"`
	Distance   string `toml:"distance"`
	Pace       string `toml:"pace"`
	MovingTime string `toml:"moving_time"`
	HeartRate  string `toml:"heart_rate"`
	Sport      string `toml:"sport"`
	Name       string `toml:"name"`
}

// Chart holds the rendered image settings.
type Chart struct {
	Title  string  `toml:"title"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	DPI    float64 `toml:"dpi"`
}

// Running configures the weekly running chart renderer.
type Running struct {
	CSVObject     string  `toml:"csv_object"`
	ChartObject   string  `toml:"chart_object"`
	Variant       string  `toml:"variant"`
	WeekEnd       string  `toml:"week_end"`
	PaceGoal      float64 `toml:"pace_goal"`
	HeartRateGoal float64 `toml:"heart_rate_goal"`
	Sport         string  `toml:"sport"`
	NameContains  string  `toml:"name_contains"`
	DecimalComma  bool    `toml:"decimal_comma"`
	Columns       Columns `toml:"columns"`
	Chart         Chart   `toml:"chart"`
}

// Config is the root configuration for every function in the module.
type Config struct {
	Debug       bool        `toml:"debug"`
	Credentials Credentials `toml:"credentials"`
	CORS        CORS        `toml:"cors"`
	LastMovie   LastMovie   `toml:"last_movie"`
	NetWorth    NetWorth    `toml:"net_worth"`
	Export      Export      `toml:"export"`
	Running     Running     `toml:"running"`
}

// Sample returns the annotated sample configuration file.
func Sample() string {
	return sampleConfig
}

// Load builds the configuration from the defaults, the TOML file at path (or CONFIG_FILE when
// path is empty) and the environment. A .env file in the working directory is loaded first
// if present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file (%w)", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}

	if path = strings.TrimSpace(path); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open config file %s (%w)", path, err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("unable to parse config file %s (%w)", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders the effective configuration as TOML.
func (c *Config) Marshal() (string, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (c *Config) applyEnv() error {
	if v := getEnv("CREDENTIALS_FILE"); v != "" {
		c.Credentials.File = v
	}

	if v := getEnv("CORS_ALLOW_ORIGIN"); v != "" {
		c.CORS.AllowOrigin = v
	}

	if v := getEnv("BUCKET_NAME"); v != "" {
		c.LastMovie.Bucket = v
		c.NetWorth.Bucket = v
	}

	if v := getEnv("LAST_MOVIE_BUCKET"); v != "" {
		c.LastMovie.Bucket = v
	}

	if v := getEnv("NET_WORTH_BUCKET"); v != "" {
		c.NetWorth.Bucket = v
	}

	if v := getEnv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEBUG value '%s' (%w)", v, err)
		}
		c.Debug = debug
	}

	return nil
}

func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return ""
}
