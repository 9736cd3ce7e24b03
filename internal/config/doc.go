// Package config loads swcrawl's startup configuration.
//
// # Sources
//
// Values are layered, later sources winning:
//
//  1. Built-in defaults (Default)
//  2. ~/.config/swcrawl/config.toml, or the path passed to Load
//  3. SWCRAWL_* environment variables
//
// A missing file is not an error. Blank file values fall back to the
// defaults. A .env file in the working directory is loaded by the binary
// before Load runs, so its variables count as environment overrides.
//
// # File format
//
//	api_base = "https://swapi.dev/api/"
//	request_timeout = "15s"   # "0s" disables the per-request deadline
//	concurrency = 0           # 0 = one goroutine per character
//	log_path = "~/.local/state/swcrawl/swcrawl.log"
//	log_level = "info"
//
// # Environment
//
//	SWCRAWL_API_BASE, SWCRAWL_REQUEST_TIMEOUT, SWCRAWL_CONCURRENCY,
//	SWCRAWL_LOG_PATH, SWCRAWL_LOG_LEVEL
//
// # Errors
//
// Load fails on unreadable files, invalid TOML ("parse config"), invalid
// durations, unparseable environment values ("parse env") and negative
// timeout or concurrency values.
package config
