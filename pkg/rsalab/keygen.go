package rsalab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab/modmath"
	"github.com/cryptoclass/rsalab-go/pkg/rsalab/prime"
)

const (
	// DefaultExponentAttempts bounds the public-exponent search in
	// GenerateKeyPair.
	DefaultExponentAttempts = 100

	// maxExponentBits caps the drawn public exponent. e only has to be
	// coprime to phi, and a small e keeps Encrypt cheap.
	maxExponentBits = 32
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// FromPrimes derives a key pair from two distinct primes and a public
// exponent: n = p*q, phi = (p-1)(q-1), d = e^-1 mod phi.
//
// An exponent that shares a factor with phi has no inverse; that is
// reported as ErrExponentNotInvertible so callers can retry with a fresh
// e. The primality of p and q is the caller's responsibility (see the
// prime package); only their range and distinctness are checked here.
//
// The returned pair holds copies of every operand and is immutable.
func FromPrimes(p, q, e *big.Int) (*KeyPair, error) {
	if p == nil || q == nil || e == nil {
		return nil, errors.New("rsalab: nil operand")
	}
	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: factors must be at least 2", ErrInvalidPrime)
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: factors must be distinct", ErrInvalidPrime)
	}
	if e.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExponent, e)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	d, err := modmath.Inverse(e, phi)
	if err != nil {
		if errors.Is(err, modmath.ErrNotInvertible) {
			return nil, fmt.Errorf("%w: gcd(e, phi) != 1", ErrExponentNotInvertible)
		}
		return nil, err
	}

	// Tripwire only: the gcd check inside Inverse already rules this out,
	// but a broken derivation must never escape as a usable key pair.
	check := new(big.Int).Mul(e, d)
	if check.Mod(check, phi).Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: (e*d) mod phi != 1", ErrKeyValidation)
	}

	return &KeyPair{
		Public:  &PublicKey{e: new(big.Int).Set(e), n: n},
		Private: &PrivateKey{d: d, n: new(big.Int).Set(n)},
	}, nil
}

// KeyGenerator derives key pairs with a freshly drawn prime public
// exponent. The zero value is ready to use.
type KeyGenerator struct {
	// Rand supplies entropy for the exponent search. Nil means
	// crypto/rand.Reader.
	Rand io.Reader

	// Rounds is the Miller-Rabin round count applied to exponent
	// candidates. Zero means prime.DefaultRounds.
	Rounds int

	// MaxAttempts bounds the exponent search. Zero means
	// DefaultExponentAttempts.
	MaxAttempts int
}

// GenerateKeyPair derives a key pair from p and q, drawing a random prime
// public exponent of min(bits, 32) bits. Candidates that are not coprime
// to phi are discarded and redrawn; after MaxAttempts candidates the
// search gives up with ErrAttemptsExhausted. The context is consulted
// between attempts.
func (g *KeyGenerator) GenerateKeyPair(ctx context.Context, p, q *big.Int, bits int) (*KeyPair, error) {
	ebits := bits
	if ebits > maxExponentBits {
		ebits = maxExponentBits
	}

	gen := &prime.Generator{
		Rand:   g.Rand,
		Tester: &prime.Tester{Rounds: g.Rounds, Rand: g.Rand},
	}

	maxAttempts := g.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultExponentAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e, err := gen.Generate(ctx, ebits)
		if err != nil {
			return nil, fmt.Errorf("rsalab: generating exponent: %w", err)
		}

		pair, err := FromPrimes(p, q, e)
		if errors.Is(err, ErrExponentNotInvertible) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return pair, nil
	}

	return nil, fmt.Errorf("%w after %d candidates", ErrAttemptsExhausted, maxAttempts)
}
