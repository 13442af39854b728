// Package config loads runtime configuration for the FarmKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, everything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   directory DSN ("" = in-memory map, ":memory:" = in-memory SQLite)
//	-e string   seed admin email
//	-p string   seed admin password
//	-n string   seed admin display name
//	-t int      reset ticket size in random bytes
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
// Only keys present in the file override defaults:
//
//	directory_dsn: ":memory:"
//	reset_ticket_size: 24
//	log_level: debug
//	seed_admin:
//	  email: owner@farm.com
//	  password: changeme
//	  name: Farm Owner
//	  farm_size: 80 acres
//	  preferred_crops: [Barley, Oats]
//
// Invalid files and flags cause a panic at start-up.
package config
