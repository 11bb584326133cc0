// Command toyrsa is a thin front-end over the toyrsa library: generate a
// key pair, encrypt a 32-bit message, or decrypt a ciphertext. Key material
// is passed on the command line; nothing is ever written to disk.
package main

import (
	"fmt"
	"math"
	"os"

	toyrsa "github.com/go-i2p/go-toyrsa"
	"github.com/urfave/cli/v2"
)

var commands = []*cli.Command{
	{
		Name:   "genkey",
		Usage:  "Generate an RSA prime pair and print the key material",
		Action: GenerateKey,
	},
	{
		Name:  "encrypt",
		Usage: "Encrypt a 32-bit message under a public modulus",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "modulus",
				Aliases:  []string{"n"},
				Usage:    "Public modulus n = p*q",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "message",
				Aliases:  []string{"m"},
				Usage:    "Plaintext message (32-bit)",
				Required: true,
			},
		},
		Action: EncryptMessage,
	},
	{
		Name:  "decrypt",
		Usage: "Decrypt a ciphertext with the private prime pair",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "p",
				Usage:    "First private prime",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "q",
				Usage:    "Second private prime",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "ciphertext",
				Aliases:  []string{"c"},
				Usage:    "Ciphertext to decrypt",
				Required: true,
			},
		},
		Action: DecryptMessage,
	},
}

func GenerateKey(c *cli.Context) error {
	p, q := toyrsa.GenKey()
	key := toyrsa.KeyPair{P: p, Q: q}
	fmt.Printf("p: %d\n", key.P)
	fmt.Printf("q: %d\n", key.Q)
	fmt.Printf("n: %d\n", key.Modulus())
	fmt.Printf("e: %d\n", toyrsa.PublicExponent)
	return nil
}

func EncryptMessage(c *cli.Context) error {
	msg := c.Uint64("message")
	if msg > math.MaxUint32 {
		return cli.Exit("message does not fit in 32 bits", 1)
	}
	n := c.Uint64("modulus")
	if uint64(uint32(msg)) >= n {
		return cli.Exit("message must be smaller than the modulus", 1)
	}
	fmt.Printf("%d\n", toyrsa.Encrypt(n, uint32(msg)))
	return nil
}

func DecryptMessage(c *cli.Context) error {
	p, q := c.Uint64("p"), c.Uint64("q")
	if p > math.MaxUint32 || q > math.MaxUint32 {
		return cli.Exit("private primes must fit in 32 bits", 1)
	}
	key := toyrsa.KeyPair{P: uint32(p), Q: uint32(q)}
	ct := c.Uint64("ciphertext")
	if ct >= key.Modulus() {
		return cli.Exit("ciphertext must be smaller than the modulus", 1)
	}
	fmt.Printf("%d\n", toyrsa.Decrypt(key, ct))
	return nil
}

func main() {
	app := &cli.App{
		Name:     "toyrsa",
		Usage:    "Fixed-width toy RSA: key generation, encryption, decryption",
		Commands: commands,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
