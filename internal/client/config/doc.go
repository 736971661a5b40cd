// Package config loads runtime configuration for the case console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API (trailing slash added if missing)
//	-d string   path of the local SQLite file holding the session credential
//	-l string   log level: debug|info|warn|error
//	-p int      page size requested from the case list endpoint
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000/api/",
//	  "database_path": "casekeeper.db",
//	  "log_level": "info",
//	  "page_size": 10,
//	  "stale_time": "5s"
//	}
//
// Fields missing from the JSON keep their default.
package config
