// Package config loads runtime configuration for the team console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config or $TEAMCONSOLE_CONFIG.
//  3. Environment variables TEAMCONSOLE_* (read with cleanenv).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the team API
//	-t int      request timeout (seconds)
//	-s string   state file for remembered sessions
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:3001",
//	  "request_timeout": "10s",
//	  "state_path": "teamconsole.db",
//	  "log_level": "info",
//	  "rate_limit": 5
//	}
//
// The assembled Config is validated before it is returned.
package config
