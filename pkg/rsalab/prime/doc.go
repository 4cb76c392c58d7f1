// Package prime provides probabilistic primality testing and random prime
// generation for RSA key material.
//
// Tester combines a small-prime trial-division prefilter with iterated
// Miller-Rabin rounds driven by modmath.Exp. Generator samples uniformly
// random candidates of an exact bit length, masks them into the required
// shape, filters out candidates incompatible with the conventional public
// exponent 2^16+1, and tests until a probable prime appears.
//
// # Candidate Shape
//
// A generated candidate always has:
//
//   - exactly the requested bit length (top bit set),
//   - the second-highest bit set, so the product of two candidates never
//     falls a bit short of the doubled length,
//   - the lowest bit set (odd),
//   - a residue different from 1 modulo 65537.
//
// # Bounded Search
//
// Generate is bounded: it checks the context between candidates and gives up
// with ErrAttemptsExhausted after MaxAttempts candidates, so adversarial
// parameters cannot hang a caller. Both knobs are plain struct fields with
// documented defaults.
//
// Every call reads fresh entropy from the configured reader; no state is
// shared between calls and nothing is reproducible unless the caller injects
// a deterministic reader.
package prime
