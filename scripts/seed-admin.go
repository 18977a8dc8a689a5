// Package main is a development utility for seeding the single admin account.
// It generates a random password, prints it together with its bcrypt hash, and
// emits a ready-to-run SQL INSERT so developers can create a usable login in a
// local database without running the full server flow. Do not use generated
// credentials in production — set a real password via cmd/hash instead.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Generate random bytes
	randomBytes := make([]byte, 24)
	_, err := rand.Read(randomBytes)
	if err != nil {
		log.Fatal(err)
	}

	password := base64.RawURLEncoding.EncodeToString(randomBytes)

	// Hash with bcrypt
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("==========================================================")
	fmt.Println("Admin Credentials Generated")
	fmt.Println("==========================================================")
	fmt.Printf("\nUsername: admin\n")
	fmt.Printf("\nPassword: %s\n", password)
	fmt.Printf("\nHash: %s\n", string(hashBytes))
	fmt.Println("\n==========================================================")
	fmt.Println("SQL Insert:")
	fmt.Println("==========================================================")
	fmt.Printf(`
INSERT INTO users (username, password_hash)
VALUES ('admin', '%s')
ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash;
`, string(hashBytes))
	fmt.Println("\n==========================================================")
}
