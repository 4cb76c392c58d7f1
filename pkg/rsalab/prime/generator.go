package prime

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	// MinBits is the smallest candidate size Generate accepts. Below two
	// bits the top-two-bit mask cannot be applied.
	MinBits = 2

	// MaxBits is the largest candidate size Generate accepts. math/big is
	// unbounded, so the 4096-bit magnitude bound of the fixed-width
	// environments this library models is enforced here, at the API
	// boundary, instead of by silent wraparound.
	MaxBits = 4096

	// DefaultAttemptsPerBit scales the default candidate budget with the
	// requested size. A random odd bits-bit integer is prime with
	// probability about 2/(bits ln 2), so 64 attempts per bit leaves
	// enormous headroom before the budget runs out.
	DefaultAttemptsPerBit = 64

	// conventionalExponent is 2^16+1, the customary RSA public exponent.
	// Candidates p with p ≡ 1 (mod 2^16+1) are rejected: for such p the
	// exponent divides p-1 and therefore phi(n), making it non-invertible
	// during key derivation.
	conventionalExponent = 65537
)

var (
	// ErrAttemptsExhausted reports that Generate gave up after its candidate
	// budget without finding a prime.
	ErrAttemptsExhausted = errors.New("prime: candidate attempts exhausted")

	// ErrBitsOutOfRange reports a requested bit length outside
	// [MinBits, MaxBits].
	ErrBitsOutOfRange = errors.New("prime: bit length out of range")
)

// Generator produces random probable primes of an exact bit length.
//
// The zero value is ready to use: candidates from crypto/rand, a zero-value
// Tester, and a budget of DefaultAttemptsPerBit candidates per requested bit.
// Each call owns its sampling state, so a Generator is safe for concurrent
// use as long as the injected reader is.
type Generator struct {
	// Rand supplies candidate entropy. nil selects crypto/rand.Reader.
	Rand io.Reader

	// Tester validates candidates. nil selects a zero-value Tester sharing
	// Rand for its witnesses.
	Tester *Tester

	// MaxAttempts caps the number of candidates examined per call. Values
	// <= 0 select DefaultAttemptsPerBit * bits.
	MaxAttempts int
}

// Generate returns a probable prime with exactly the given bit length, its
// two most significant bits and its low bit set, and a residue different
// from 1 modulo 2^16+1.
//
// The context is checked between candidates, so callers can impose deadlines
// or cancel a search. When the candidate budget runs out first, Generate
// returns ErrAttemptsExhausted.
func (g *Generator) Generate(ctx context.Context, bits int) (*big.Int, error) {
	if bits < MinBits || bits > MaxBits {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBitsOutOfRange, bits, MinBits, MaxBits)
	}

	reader := g.Rand
	if reader == nil {
		reader = rand.Reader
	}
	tester := g.Tester
	if tester == nil {
		tester = &Tester{Rand: g.Rand}
	}
	maxAttempts := g.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultAttemptsPerBit * bits
	}

	// b is the number of significant bits in the leading byte.
	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}
	buf := make([]byte, (bits+7)/8)
	filter := big.NewInt(conventionalExponent)
	rem := new(big.Int)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("prime: reading candidate bytes: %w", err)
		}

		// Clear excess high bits so the candidate is at most bits wide.
		buf[0] &= uint8(int(1<<b) - 1)
		// Set the top two bits: the candidate gets exactly the requested
		// bit length, and the product of two such candidates never comes
		// up a bit short.
		if b >= 2 {
			buf[0] |= 3 << (b - 2)
		} else {
			// b == 1: the top bit sits alone in the leading byte.
			buf[0] |= 1
			if len(buf) > 1 {
				buf[1] |= 0x80
			}
		}
		// An even candidate this large certainly is not prime.
		buf[len(buf)-1] |= 1

		candidate := new(big.Int).SetBytes(buf)

		if rem.Mod(candidate, filter).Cmp(one) == 0 {
			continue
		}

		ok, err := tester.IsProbablePrime(candidate)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w after %d candidates", ErrAttemptsExhausted, maxAttempts)
}
