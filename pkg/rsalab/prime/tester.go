package prime

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab/modmath"
)

// DefaultRounds is the number of Miller-Rabin rounds used when a Tester does
// not specify one. Each passed round divides the error probability for a
// composite input by at least four, bounding it by 4^-20 overall.
const DefaultRounds = 20

// smallPrimes holds the first ten odd primes used for trial division ahead of
// the Miller-Rabin rounds. Two is absent: candidates are odd by construction.
var smallPrimes = [...]int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31}

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Tester is a probabilistic primality tester combining trial division by
// small primes with iterated Miller-Rabin rounds.
//
// The zero value is ready to use: DefaultRounds rounds with witnesses drawn
// from crypto/rand. Round one always uses the fixed witness 2, so Rounds = 1
// reproduces the historical single-witness form of the test. That form is not
// cryptographically sufficient on its own: specific composites (4033, 8321,
// and the rest of the strong pseudoprimes to base 2) pass it. Remaining
// rounds draw uniform witnesses from [2, n-2].
type Tester struct {
	// Rounds is the number of Miller-Rabin rounds. Values <= 0 select
	// DefaultRounds.
	Rounds int

	// Rand supplies witness entropy. nil selects crypto/rand.Reader.
	Rand io.Reader
}

// IsProbablePrime reports whether n is prime, with error probability at most
// 4^-rounds when n is composite.
//
// Values below 2 and even values above 2 report composite, and a value equal
// to one of the trial-division primes reports prime. Those paths are
// defensive: candidates produced by Generator are always odd and larger
// than 31. An entropy failure while drawing witnesses surfaces as an error,
// never as a degraded verdict.
func (t *Tester) IsProbablePrime(n *big.Int) (bool, error) {
	if n == nil {
		return false, errors.New("prime: nil value")
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	rem := new(big.Int)
	sp := new(big.Int)
	for _, p := range smallPrimes {
		sp.SetInt64(p)
		if n.Cmp(sp) == 0 {
			return true, nil
		}
		if rem.Mod(n, sp).Sign() == 0 {
			return false, nil
		}
	}

	// Write n-1 = 2^s * d with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	rounds := t.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	reader := t.Rand
	if reader == nil {
		reader = rand.Reader
	}

	witness := new(big.Int)
	witnessMax := new(big.Int).Sub(n, three)
	for round := 0; round < rounds; round++ {
		if round == 0 {
			// Round one always tests the historical fixed witness.
			witness.Set(two)
		} else {
			w, err := rand.Int(reader, witnessMax)
			if err != nil {
				return false, fmt.Errorf("prime: drawing witness: %w", err)
			}
			witness.Add(w, two)
		}

		ok, err := millerRabinRound(n, nMinusOne, d, witness, s)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// millerRabinRound reports whether n survives one Miller-Rabin round with the
// given witness, using the decomposition n-1 = 2^s * d.
func millerRabinRound(n, nMinusOne, d, witness *big.Int, s int) (bool, error) {
	x, err := modmath.Exp(witness, d, n)
	if err != nil {
		return false, err
	}
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true, nil
	}
	for i := 1; i < s; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return true, nil
		}
		if x.Cmp(one) == 0 {
			// A nontrivial square root of 1 proves n composite.
			return false, nil
		}
	}
	return false, nil
}
