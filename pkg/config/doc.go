// Package config handles configuration management for barrel.
// It supports loading configuration from multiple sources including
// the embedded defaults, a TOML project file, a .env file, environment
// variables, and command-line flags, and resolves the result into an
// immutable types.SelectionConfig.
package config
