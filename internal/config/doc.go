// Package config loads tool configuration from YAML with environment
// variable expansion, default application, and validation.
package config
