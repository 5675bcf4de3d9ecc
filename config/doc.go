// Package config builds the read-only key/value mapping that drives
// configure templates. Parse reads the flat KEY=VALUE configuration
// string, LoadStamps reads Bazel workspace status files, LoadFile reads
// YAML, JSON or KEY=VALUE files, and Load layers all of them into a
// single Values, expanding {STAMP} references in configured values.
package config
