package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signs an admin token for local testing against the admin routes.
// Usage: go run scripts/generate_token.go <jwt-secret> <email>
func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run scripts/generate_token.go <jwt-secret> <email>")
	}

	secret := os.Args[1]
	email := os.Args[2]

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"email":    email,
		"is_admin": true,
		"iss":      "pedefacil-auth",
		"iat":      now.Unix(),
		"exp":      now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatal("Error signing token:", err)
	}

	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Token: %s\n", signed)
}
