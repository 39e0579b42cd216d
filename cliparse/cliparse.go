package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	SeedPath      string
	AllowedOrigin string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("horizon-bay", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.SeedPath, "seed", "", "Path to a seed YAML file (default: embedded dataset)")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin (default: reflect request origin)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4180 // default
		}
	}
	if cfg.SeedPath == "" {
		cfg.SeedPath = os.Getenv("SEED_PATH")
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	return cfg, nil
}
