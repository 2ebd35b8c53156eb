// Command admin-token mints an admin JWT for operational use, such as
// creating groups or seeding a fresh deployment. The secret must match
// the one the API server runs with.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/plumeworks/plume/pkg/jwt"
)

func main() {
	secret := flag.String("secret", "", "JWT signing secret (defaults to JWT_SECRET)")
	userID := flag.String("user", "user:admin", "user record ID to embed in the token")
	username := flag.String("username", "admin", "username to embed in the token")
	issuer := flag.String("issuer", "api.plumeworks.dev", "token issuer")
	expMins := flag.Int("exp", 60, "token lifetime in minutes")
	asJSON := flag.Bool("json", false, "print the token as JSON")
	flag.Parse()

	_ = godotenv.Load()

	if *secret == "" {
		*secret = os.Getenv("JWT_SECRET")
	}
	if *secret == "" {
		fmt.Fprintln(os.Stderr, "error: no signing secret; pass -secret or set JWT_SECRET")
		os.Exit(1)
	}

	svc, err := jwt.NewService(jwt.Config{
		Secret:         *secret,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	token, err := svc.Sign(jwt.Claims{
		UserID:   *userID,
		Username: *username,
		Role:     "admin",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to sign token: %v\n", err)
		os.Exit(1)
	}

	expiresAt := time.Now().Add(time.Duration(*expMins) * time.Minute)

	if *asJSON {
		out := map[string]string{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_at":   expiresAt.UTC().Format(time.RFC3339),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Admin token minted.")
	fmt.Printf("  user:    %s (%s)\n", *username, *userID)
	fmt.Printf("  issuer:  %s\n", *issuer)
	fmt.Printf("  expires: %s\n", expiresAt.Format(time.RFC1123))
	fmt.Println()
	fmt.Println(token)
}
