// Package main is a utility for generating bcrypt password hashes.
// The CMS stores only bcrypt hashes of account passwords — never the raw
// values — so this tool is used when manually seeding the admin account in
// the users table without running the full server.
//
// Usage: go run ./cmd/hash <password>
package main

import (
	"fmt"
	"os"

	"github.com/portfolio-cms/portfolio-cms/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <password>\n", os.Args[0])
		os.Exit(2)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
