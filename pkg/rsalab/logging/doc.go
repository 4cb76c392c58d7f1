// Package logging provides a minimal logging facade for the rsalab packages.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing, redaction,
// or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/cryptoclass/rsalab-go/pkg/rsalab/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Logging Big Integers
//
// Primes, exponents, moduli, and message blocks are all big.Int values. Even
// in a teaching library the habit of logging them raw is worth avoiding, so
// the package provides an attribute that records only the bit length:
//
//	logger.Info(ctx, "prime accepted", logging.Bits("candidate", p))
//	// Logs: candidate=1024
//
// When a value must be acknowledged without being shown at all, mark it
// redacted instead:
//
//	logger.Debug(ctx, "derived private exponent", logging.Redacted("d"))
//	// Logs: d="[redacted]"
//
// # Usage in rsalab Code
//
// The arithmetic packages (modmath, prime) perform no logging; they surface
// everything through return values. Loggers appear only at the I/O edges:
// the bitstring codec reports width mismatches, the timing helper reports
// elapsed milliseconds, and the command-line driver narrates its progress.
package logging
