// Package config loads runtime configuration for the marketplace CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote API
//	-m bool     mock mode (local accounts, no server)
//	-d string   path of the local data file
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds. Keys left out of the file keep their defaults:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "mock_mode": false,
//	  "data_file": "gatormarket.db",
//	  "mock_latency": "500ms",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "email_domain": "@ufl.edu",
//	  "log_level": "warn",
//	  "image_bucket": "",
//	  "image_region": "us-east-1",
//	  "image_endpoint": ""
//	}
//
// Environment variables are not read; the AWS SDK picks up its own
// credentials when an image bucket is configured.
package config
