package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab"
	"github.com/cryptoclass/rsalab-go/pkg/rsalab/logging"
	"github.com/cryptoclass/rsalab-go/pkg/rsalab/prime"
	"github.com/cryptoclass/rsalab-go/pkg/rsalab/timing"
)

func main() {
	bits := flag.Int("bits", 1024, "bit length of each prime factor")
	message := flag.String("message", "1230948092384098", "decimal message block to encrypt")
	rounds := flag.Int("rounds", prime.DefaultRounds, "Miller-Rabin rounds per candidate")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline; 0 disables")
	flag.Parse()

	log.Printf("rsalab-go version: %s", rsalab.LibraryVersion())

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	m, ok := new(big.Int).SetString(*message, 10)
	if !ok {
		log.Fatalf("message %q is not a decimal integer", *message)
	}

	logger := logging.New(nil)
	gen := &prime.Generator{Tester: &prime.Tester{Rounds: *rounds}}

	var p, q *big.Int
	var err error
	timing.Report(ctx, logger, "generate p", func() {
		p, err = gen.Generate(ctx, *bits)
	})
	if err != nil {
		log.Fatalf("generating p: %v", err)
	}
	timing.Report(ctx, logger, "generate q", func() {
		q, err = gen.Generate(ctx, *bits)
	})
	if err != nil {
		log.Fatalf("generating q: %v", err)
	}
	logger.Info(ctx, "primes ready", logging.Bits("p", p), logging.Bits("q", q))

	kg := &rsalab.KeyGenerator{Rounds: *rounds}
	var pair *rsalab.KeyPair
	timing.Report(ctx, logger, "derive key pair", func() {
		pair, err = kg.GenerateKeyPair(ctx, p, q, *bits)
	})
	if err != nil {
		log.Fatalf("deriving key pair: %v", err)
	}

	printKeys(pair)

	encrypted, err := pair.Public.Encrypt(m)
	if err != nil {
		log.Fatalf("encrypting: %v", err)
	}
	decrypted, err := pair.Private.Decrypt(encrypted)
	if err != nil {
		log.Fatalf("decrypting: %v", err)
	}

	fmt.Printf("\nMessage: %s\n", m)
	fmt.Printf("Encrypted: %s\n", encrypted)
	fmt.Printf("Decrypted: %s\n", decrypted)
}

// printKeys writes each key as the exponent on one line and the modulus on
// the next.
func printKeys(pair *rsalab.KeyPair) {
	fmt.Printf("Public key:\n%s\n%s\n", pair.Public.E(), pair.Public.N())
	fmt.Printf("Private key:\n%s\n%s\n", pair.Private.D(), pair.Private.N())
}
