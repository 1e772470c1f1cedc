// Package solverconfig loads solve.Limits/solve.Options defaults for
// cmd/sokolve-bench from an optional YAML config file, overridable by
// environment variables. The solve package itself stays config-library
// free; this is purely a convenience loader for the bench harness.
package solverconfig
