// Package modmath implements the modular arithmetic underlying textbook RSA
// from first principles: binary modular exponentiation, the extended Euclidean
// algorithm, and modular inverse computation.
//
// The package deliberately avoids the math/big shortcuts for these operations
// (big.Int.Exp, big.Int.ModInverse, big.Int.GCD); implementing them by hand is
// the point of the library. math/big serves only as the arbitrary-precision
// integer substrate providing addition, multiplication, division, shifts, and
// comparisons.
//
// # Conventions
//
//   - Exp(a, 0, m) is 1 for every base a, including a = 0, even when m is 1.
//     All other results are canonical residues in [0, m).
//   - ExtGCD returns a non-negative gcd together with Bézout coefficients and
//     accepts any integer inputs, positive, negative, or zero.
//   - Inverse reports ErrNotInvertible when gcd(a, m) != 1 instead of
//     returning meaningless coefficients; callers cannot forget the
//     coprimality check.
//
// Operands are never mutated; every function allocates its results.
package modmath
