package bitstring

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab/logging"
)

// Codec converts between big integers and bit strings. The zero value is
// usable; warnings then go through the default logger.
type Codec struct {
	// Log receives width-mismatch warnings. Nil means logging.New(nil).
	Log logging.Logger
}

func (c *Codec) logger() logging.Logger {
	if c != nil && c.Log != nil {
		return c.Log
	}
	return logging.New(nil)
}

// FromBits parses a big-endian bit string into an integer. The last
// character is bit zero. A length other than width is logged as a warning
// and parsing continues with at most width bits from the end of the
// string. Characters other than '0' and '1' are errors.
func (c *Codec) FromBits(ctx context.Context, bits string, width int) (*big.Int, error) {
	if width <= 0 {
		return nil, fmt.Errorf("bitstring: width %d is not positive", width)
	}
	if len(bits) != width {
		c.logger().Warn(ctx, "bit string length does not match width",
			"length", len(bits), "width", width)
	}

	v := new(big.Int)
	for i, j := 0, len(bits)-1; j >= 0 && i < width; i, j = i+1, j-1 {
		switch bits[j] {
		case '0':
		case '1':
			v.SetBit(v, i, 1)
		default:
			return nil, fmt.Errorf("bitstring: invalid character %q at index %d", bits[j], j)
		}
	}
	return v, nil
}

// ToBits renders v as a fixed-width big-endian bit string. There is no
// tolerance on this side: a value wider than width is an error, not a
// truncation.
func (c *Codec) ToBits(v *big.Int, width int) (string, error) {
	if v == nil {
		return "", errors.New("bitstring: nil value")
	}
	if v.Sign() < 0 {
		return "", errors.New("bitstring: negative value")
	}
	if width <= 0 {
		return "", fmt.Errorf("bitstring: width %d is not positive", width)
	}
	if n := v.BitLen(); n > width {
		return "", fmt.Errorf("bitstring: value needs %d bits, width is %d", n, width)
	}

	buf := make([]byte, width)
	for i := range buf {
		if v.Bit(width-1-i) == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf), nil
}
