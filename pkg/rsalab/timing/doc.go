// Package timing provides a small wall-clock helper for the console
// tooling: run a function once and report its elapsed time in
// milliseconds. It is for coarse, human-facing reports; use go test
// benchmarks for real measurements.
package timing
