package modmath

import (
	"errors"
	"math/big"
)

var (
	// ErrNilOperand indicates a nil *big.Int was passed where a value is
	// required.
	ErrNilOperand = errors.New("modmath: nil operand")

	// ErrNegativeExponent indicates a negative exponent was passed to Exp.
	ErrNegativeExponent = errors.New("modmath: negative exponent")

	// ErrNonPositiveModulus indicates a zero or negative modulus.
	ErrNonPositiveModulus = errors.New("modmath: modulus must be positive")

	// ErrNotInvertible indicates gcd(a, m) != 1, so a has no multiplicative
	// inverse modulo m. Callers deriving an RSA private exponent must treat
	// this as a signal to retry with a different public exponent.
	ErrNotInvertible = errors.New("modmath: value is not invertible modulo m")
)

var one = big.NewInt(1)

// Exp computes base^exponent mod modulus by binary square-and-multiply.
//
// The exponent bits are scanned least-significant first while a running power
// of the base is squared each step and multiplied into the accumulator on set
// bits, with every intermediate reduced modulo modulus. The loop runs once per
// exponent bit, so a 1024-bit exponent costs 1024 iterations with no recursion.
//
// A zero exponent yields 1 for every base, including base 0, by convention;
// this holds even for modulus 1, where all other results reduce to 0. A
// negative base is reduced into [0, modulus) first, so results are always
// canonical residues.
//
// Exp returns ErrNegativeExponent for exponent < 0, ErrNonPositiveModulus for
// modulus <= 0, and ErrNilOperand for nil arguments.
func Exp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if base == nil || exponent == nil || modulus == nil {
		return nil, ErrNilOperand
	}
	if exponent.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if modulus.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	if exponent.Sign() == 0 {
		return big.NewInt(1), nil
	}

	result := big.NewInt(1)
	power := new(big.Int).Mod(base, modulus)
	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, power)
			result.Mod(result, modulus)
		}
		if i+1 < n {
			power.Mul(power, power)
			power.Mod(power, modulus)
		}
	}
	return result, nil
}

// ExtGCD runs the iterative extended Euclidean algorithm and returns
// (g, x, y) such that a*x + b*y = g = gcd(a, b).
//
// The gcd is normalized to be non-negative for any combination of input
// signs; the Bézout identity holds exactly as returned. ExtGCD(0, 0) yields
// g = 0. The coefficients alone say nothing about invertibility: use Inverse
// when a modular inverse is what is actually wanted.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int, err error) {
	if a == nil || b == nil {
		return nil, nil, nil, ErrNilOperand
	}

	// Loop invariants: r0 = a*x0 + b*y0 and r1 = a*x1 + b*y1.
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	x0, x1 := big.NewInt(1), big.NewInt(0)
	y0, y1 := big.NewInt(0), big.NewInt(1)

	q, t := new(big.Int), new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)
		r0.Sub(r0, t.Mul(q, r1))
		r0, r1 = r1, r0
		x0.Sub(x0, t.Mul(q, x1))
		x0, x1 = x1, x0
		y0.Sub(y0, t.Mul(q, y1))
		y0, y1 = y1, y0
	}

	if r0.Sign() < 0 {
		r0.Neg(r0)
		x0.Neg(x0)
		y0.Neg(y0)
	}
	return r0, x0, y0, nil
}

// GCD returns the non-negative greatest common divisor of a and b, computed
// through ExtGCD.
func GCD(a, b *big.Int) (*big.Int, error) {
	g, _, _, err := ExtGCD(a, b)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Inverse returns the multiplicative inverse of a modulo m, normalized into
// [0, m).
//
// The inverse exists only when gcd(a, m) == 1; otherwise Inverse returns
// ErrNotInvertible. This folds the coprimality check into the derivation so
// that no caller can mistake an arbitrary Bézout coefficient for a valid
// inverse. m must be positive.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, ErrNilOperand
	}
	if m.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}

	g, x, _, err := ExtGCD(a, m)
	if err != nil {
		return nil, err
	}
	if g.Cmp(one) != 0 {
		return nil, ErrNotInvertible
	}
	return x.Mod(x, m), nil
}
