// Package rsalab implements the textbook RSA key lifecycle from first
// principles: deriving a key pair from two primes with the extended
// Euclidean algorithm, and the single-block transforms m^e mod n and
// c^d mod n. The underlying arithmetic lives in the modmath and prime
// subpackages and deliberately avoids the math/big shortcuts, so every
// step of the construction stays inspectable.
//
// Nothing here pads, chunks, or hashes: a message is one integer in
// [0, n). The package is a study aid for the number theory, not a
// substitute for crypto/rsa.
package rsalab
