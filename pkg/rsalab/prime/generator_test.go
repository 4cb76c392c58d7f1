package prime_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab/prime"
)

// zeroReader yields an endless stream of zero bytes, so every candidate is
// exactly the generator's mask.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestGenerateCandidateShape(t *testing.T) {
	gen := &prime.Generator{}
	tester := &prime.Tester{}
	ctx := context.Background()
	one := big.NewInt(1)
	filter := big.NewInt(65537)

	for _, bits := range []int{8, 9, 16, 17, 24, 32, 33, 48, 64} {
		p, err := gen.Generate(ctx, bits)
		require.NoError(t, err, "bits=%d", bits)

		require.Equal(t, bits, p.BitLen(), "bits=%d: wrong bit length", bits)
		require.Equal(t, uint(1), p.Bit(0), "bits=%d: candidate must be odd", bits)
		require.Equal(t, uint(1), p.Bit(bits-1), "bits=%d: top bit must be set", bits)
		require.Equal(t, uint(1), p.Bit(bits-2), "bits=%d: second-highest bit must be set", bits)

		rem := new(big.Int).Mod(p, filter)
		require.NotZero(t, rem.Cmp(one), "bits=%d: candidate is 1 mod 65537", bits)

		ok, err := tester.IsProbablePrime(p)
		require.NoError(t, err)
		require.True(t, ok, "bits=%d: generated value must test prime", bits)
	}
}

// TestGenerateDeterministicMask feeds an all-zero entropy stream, so the
// candidate is exactly the mask: 0xC1 = 193 for 8 bits and
// 0xC0000001 = 3221225473 for 32 bits, both prime.
func TestGenerateDeterministicMask(t *testing.T) {
	gen := &prime.Generator{Rand: zeroReader{}}
	ctx := context.Background()

	p, err := gen.Generate(ctx, 8)
	require.NoError(t, err)
	require.Equal(t, "193", p.String())

	p, err = gen.Generate(ctx, 32)
	require.NoError(t, err)
	require.Equal(t, "3221225473", p.String())

	// At the minimum width both mask bits overlap the low bit: always 3.
	p, err = gen.Generate(ctx, prime.MinBits)
	require.NoError(t, err)
	require.Equal(t, "3", p.String())
}

func TestGenerateAttemptsExhausted(t *testing.T) {
	// The 16-bit all-zero candidate is 0xC001 = 49153 = 13*19*199, so the
	// search can never succeed.
	gen := &prime.Generator{Rand: zeroReader{}, MaxAttempts: 5}

	_, err := gen.Generate(context.Background(), 16)
	require.ErrorIs(t, err, prime.ErrAttemptsExhausted)
}

func TestGenerateContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&prime.Generator{}).Generate(ctx, 64)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateBitsOutOfRange(t *testing.T) {
	gen := &prime.Generator{}

	for _, bits := range []int{-5, 0, 1, prime.MaxBits + 1} {
		_, err := gen.Generate(context.Background(), bits)
		require.ErrorIs(t, err, prime.ErrBitsOutOfRange, "bits=%d", bits)
	}
}

func TestGenerateEntropyFailure(t *testing.T) {
	gen := &prime.Generator{Rand: failingReader{}}

	_, err := gen.Generate(context.Background(), 32)
	require.ErrorIs(t, err, errNoEntropy)
}

func BenchmarkGenerate(b *testing.B) {
	gen := &prime.Generator{}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(ctx, 128); err != nil {
			b.Fatal(err)
		}
	}
}
