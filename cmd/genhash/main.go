// Command genhash prints a bcrypt hash for a password, for seeding
// users.json by hand.
//
// Usage:
//
//	genhash [-cost N] <password>
package main

import (
	"flag"
	"fmt"
	"os"

	"authlite/internal/password"
)

func main() {
	cost := flag.Int("cost", password.DefaultCost, "bcrypt work factor")
	flag.Parse()

	plaintext := flag.Arg(0)
	if plaintext == "" {
		fmt.Fprintln(os.Stderr, "usage: genhash [-cost N] <password>")
		os.Exit(2)
	}

	hasher, err := password.NewHasher(password.Config{Cost: *cost})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
