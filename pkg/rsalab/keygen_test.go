package rsalab_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab"
	"github.com/cryptoclass/rsalab-go/pkg/rsalab/prime"
)

// zeroReader yields an endless stream of zero bytes, pinning every prime
// candidate to the generator's deterministic mask.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestFromPrimesTextbookKey(t *testing.T) {
	pair, err := rsalab.FromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)

	require.Equal(t, "3233", pair.Public.N().String())
	require.Equal(t, "17", pair.Public.E().String())
	require.Equal(t, "2753", pair.Private.D().String())
	require.Equal(t, "3233", pair.Private.N().String())
}

func TestFromPrimesRejectsNonCoprimeExponent(t *testing.T) {
	// phi(61*53) = 3120 = 2^4 * 3 * 5 * 13, so 3 and 13 share a factor.
	for _, e := range []int64{3, 13} {
		_, err := rsalab.FromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(e))
		require.ErrorIs(t, err, rsalab.ErrExponentNotInvertible, "e=%d", e)
	}
}

func TestFromPrimesValidation(t *testing.T) {
	p, q, e := big.NewInt(61), big.NewInt(53), big.NewInt(17)

	t.Run("equal factors", func(t *testing.T) {
		_, err := rsalab.FromPrimes(p, p, e)
		require.ErrorIs(t, err, rsalab.ErrInvalidPrime)
	})

	t.Run("factor below 2", func(t *testing.T) {
		_, err := rsalab.FromPrimes(big.NewInt(1), q, e)
		require.ErrorIs(t, err, rsalab.ErrInvalidPrime)

		_, err = rsalab.FromPrimes(p, big.NewInt(0), e)
		require.ErrorIs(t, err, rsalab.ErrInvalidPrime)
	})

	t.Run("exponent below 2", func(t *testing.T) {
		_, err := rsalab.FromPrimes(p, q, big.NewInt(1))
		require.ErrorIs(t, err, rsalab.ErrInvalidExponent)
	})

	t.Run("nil operand", func(t *testing.T) {
		_, err := rsalab.FromPrimes(nil, q, e)
		require.Error(t, err)
	})
}

func TestFromPrimesDoesNotAliasInputs(t *testing.T) {
	p, q, e := big.NewInt(61), big.NewInt(53), big.NewInt(17)
	pair, err := rsalab.FromPrimes(p, q, e)
	require.NoError(t, err)

	// Mutating the inputs afterwards must not disturb the derived keys.
	p.SetInt64(7)
	q.SetInt64(11)
	e.SetInt64(3)

	c, err := pair.Public.Encrypt(big.NewInt(65))
	require.NoError(t, err)
	require.Equal(t, "2790", c.String())
}

func TestGenerateKeyPairRoundTrip(t *testing.T) {
	gen := &prime.Generator{}
	ctx := context.Background()

	p, err := gen.Generate(ctx, 64)
	require.NoError(t, err)
	q, err := gen.Generate(ctx, 64)
	require.NoError(t, err)
	// Two independent 64-bit draws collide with negligible probability.
	require.NotZero(t, p.Cmp(q))

	kg := &rsalab.KeyGenerator{}
	pair, err := kg.GenerateKeyPair(ctx, p, q, 64)
	require.NoError(t, err)

	// (e*d) mod phi == 1 ties the two halves together.
	one := big.NewInt(1)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	check := new(big.Int).Mul(pair.Public.E(), pair.Private.D())
	require.Equal(t, "1", check.Mod(check, phi).String())
	require.Equal(t, new(big.Int).Mul(p, q).String(), pair.Public.N().String())

	m := big.NewInt(1230948092384098)
	c, err := pair.Public.Encrypt(m)
	require.NoError(t, err)
	got, err := pair.Private.Decrypt(c)
	require.NoError(t, err)
	require.Equal(t, m.String(), got.String())
}

func TestGenerateKeyPairExponentAttemptsExhausted(t *testing.T) {
	// The all-zero entropy stream pins the 8-bit exponent candidate at
	// 193, and phi(773*53) = 772*52 is divisible by 193, so no candidate
	// can ever be inverted.
	kg := &rsalab.KeyGenerator{Rand: zeroReader{}, MaxAttempts: 3}

	_, err := kg.GenerateKeyPair(context.Background(), big.NewInt(773), big.NewInt(53), 8)
	require.ErrorIs(t, err, rsalab.ErrAttemptsExhausted)
}

func TestGenerateKeyPairContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kg := &rsalab.KeyGenerator{}
	_, err := kg.GenerateKeyPair(ctx, big.NewInt(61), big.NewInt(53), 16)
	require.ErrorIs(t, err, context.Canceled)
}
