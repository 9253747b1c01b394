package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Development helper that mints HS256 access tokens compatible with the
// server's Verifier. In production tokens come from the auth provider.
func main() {
	secret := flag.String("secret", "very-secure-jwt-secret", "Secret key for signing the token")
	issuer := flag.String("issuer", "simple-ideas", "Issuer of the token")
	audience := flag.String("audience", "simple-ideas", "Audience of the token")
	userID := flag.String("user-id", "", "User ID claim, must be a UUID (required)")
	email := flag.String("email", "", "Email claim")
	expiry := flag.Duration("expiry", 30*time.Minute, "Token expiry duration (e.g., 30m, 1h, 24h)")
	outputFormat := flag.String("format", "compact", "Output format: compact or full")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Error: user-id is required")
		flag.Usage()
		os.Exit(1)
	}

	now := time.Now()
	expiresAt := now.Add(*expiry)
	claims := jwt.MapClaims{
		"iss":     *issuer,
		"aud":     *audience,
		"sub":     *userID,
		"user_id": *userID,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	if *email != "" {
		claims["email"] = *email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	switch *outputFormat {
	case "compact":
		fmt.Println(tokenStr)
	case "full":
		fmt.Printf("Token: %s\nExpires: %s\n", tokenStr, expiresAt.Format(time.RFC3339))
		claimsJSON, _ := json.MarshalIndent(claims, "", "  ")
		fmt.Printf("Claims:\n%s\n", claimsJSON)
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown output format: %s\n", *outputFormat)
		os.Exit(1)
	}
}
