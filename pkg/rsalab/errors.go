package rsalab

import (
	"errors"
)

var (
	// ErrInvalidPrime indicates a prime factor that cannot form a modulus
	ErrInvalidPrime = errors.New("rsalab: invalid prime factor")

	// ErrInvalidExponent indicates a public exponent below the minimum of 2
	ErrInvalidExponent = errors.New("rsalab: invalid public exponent")

	// ErrExponentNotInvertible indicates gcd(e, phi) != 1, so no private
	// exponent exists for this prime pair
	ErrExponentNotInvertible = errors.New("rsalab: exponent not invertible modulo phi")

	// ErrKeyValidation indicates a derived key pair failed the
	// (e*d) mod phi == 1 self-check
	ErrKeyValidation = errors.New("rsalab: key pair failed validation")

	// ErrMessageInvalid indicates a nil or negative message block
	ErrMessageInvalid = errors.New("rsalab: message block is nil or negative")

	// ErrMessageTooLarge indicates a message block at or above the modulus;
	// the modular reduction would destroy such a block
	ErrMessageTooLarge = errors.New("rsalab: message block too large for modulus")

	// ErrCipherInvalid indicates a nil or negative cipher block
	ErrCipherInvalid = errors.New("rsalab: cipher block is nil or negative")

	// ErrCipherTooLarge indicates a cipher block at or above the modulus
	ErrCipherTooLarge = errors.New("rsalab: cipher block too large for modulus")

	// ErrAttemptsExhausted indicates the public-exponent search ran out of
	// candidates before finding one coprime to phi
	ErrAttemptsExhausted = errors.New("rsalab: exponent attempts exhausted")
)
