// Package internalcheck holds source-level policy tests for the rsalab
// packages.
//
// The checks load the module with go/packages and walk the syntax trees:
// the arithmetic packages must not call the math/big shortcuts they exist
// to re-derive, must not touch math/rand, and must not hex-format values
// that could be key material.
//
// # Internal Use Only
//
// Nothing here is part of the public API; the package exists to be run by
// go test and may change without notice.
package internalcheck
