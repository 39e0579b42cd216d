// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4180)
  - SeedPath: Alternate seed YAML file (default: embedded dataset)
  - AllowedOrigin: CORS origin (default: reflect the request origin)

# CLI Flags

	-p       Server port
	-seed    Seed file path
	-origin  Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	SEED_PATH      → -seed
	ALLOWED_ORIGIN → -origin

CLI flags take precedence over environment variables. main loads a .env file
with godotenv before parsing, so a local .env can supply any of these.

Nothing is required: the server starts on the default port with the embedded
seed dataset when no configuration is given.
*/
package cliparse
