// Package bitstring converts between big integers and the fixed-width
// '0'/'1' strings used by the console tooling.
//
// FromBits treats the last character as bit zero, so the string reads the
// way a binary expansion is usually written. A width mismatch is
// tolerated: the codec logs a warning and parses what is there, capped at
// width bits. Characters outside '0' and '1' are hard errors, as is
// rendering a value that does not fit its width.
package bitstring
