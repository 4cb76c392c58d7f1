package rsalab

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab/modmath"
)

// PublicKey holds the encrypting half of a key pair: the public exponent e
// and the modulus n. Construct one through FromPrimes or KeyGenerator; the
// zero value is unusable.
//
// Keys are immutable. The accessors return copies, so neither the caller
// nor the key can disturb the other's state.
type PublicKey struct {
	e *big.Int
	n *big.Int
}

// E returns a copy of the public exponent.
func (k *PublicKey) E() *big.Int { return new(big.Int).Set(k.e) }

// N returns a copy of the modulus.
func (k *PublicKey) N() *big.Int { return new(big.Int).Set(k.n) }

// Encrypt applies the forward transform m^e mod n to a single message
// block. The block must lie in [0, n): nil or negative blocks are
// ErrMessageInvalid, blocks at or above n are ErrMessageTooLarge.
func (k *PublicKey) Encrypt(m *big.Int) (*big.Int, error) {
	if k == nil || k.e == nil || k.n == nil {
		return nil, errors.New("rsalab: nil or zero public key")
	}
	if m == nil || m.Sign() < 0 {
		return nil, ErrMessageInvalid
	}
	if m.Cmp(k.n) >= 0 {
		return nil, fmt.Errorf("%w: %d-bit block vs %d-bit modulus", ErrMessageTooLarge, m.BitLen(), k.n.BitLen())
	}
	return modmath.Exp(m, k.e, k.n)
}

// PrivateKey holds the decrypting half: the private exponent d and the
// modulus n.
type PrivateKey struct {
	d *big.Int
	n *big.Int
}

// D returns a copy of the private exponent.
func (k *PrivateKey) D() *big.Int { return new(big.Int).Set(k.d) }

// N returns a copy of the modulus.
func (k *PrivateKey) N() *big.Int { return new(big.Int).Set(k.n) }

// Decrypt applies the inverse transform c^d mod n. The range rules mirror
// Encrypt: the cipher block must lie in [0, n).
func (k *PrivateKey) Decrypt(c *big.Int) (*big.Int, error) {
	if k == nil || k.d == nil || k.n == nil {
		return nil, errors.New("rsalab: nil or zero private key")
	}
	if c == nil || c.Sign() < 0 {
		return nil, ErrCipherInvalid
	}
	if c.Cmp(k.n) >= 0 {
		return nil, fmt.Errorf("%w: %d-bit block vs %d-bit modulus", ErrCipherTooLarge, c.BitLen(), k.n.BitLen())
	}
	return modmath.Exp(c, k.d, k.n)
}

// KeyPair bundles the two halves produced by a single derivation.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}
