package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/franciscosanchezn/pizza-admin-api/internal/auth"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	role := flag.String("role", auth.EmployeeRole, "Role claim value (Employee, or empty for a plain user)")
	subject := flag.String("sub", "dev|employee", "Token subject")
	name := flag.String("name", "Dev Employee", "Display name claim")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set to mint development tokens")
	}
	if os.Getenv("AUTH_DOMAIN") != "" {
		log.Fatal("AUTH_DOMAIN is set: the API validates identity provider tokens, dev tokens will be rejected")
	}

	roleClaim := os.Getenv("AUTH_ROLE_CLAIM")
	if roleClaim == "" {
		roleClaim = auth.DefaultRoleClaim
	}

	issuer := auth.NewDevTokenIssuer([]byte(secret), auth.ValidatorConfig{
		Issuer:    os.Getenv("AUTH_ISSUER"),
		Audience:  os.Getenv("AUTH_AUDIENCE"),
		RoleClaim: roleClaim,
	})

	token, err := issuer.Token(*subject, *name, *role)
	if err != nil {
		log.Fatal("Failed to mint token:", err)
	}

	fmt.Printf("✓ Development token minted for subject '%s' (role '%s')\n", *subject, *role)
	fmt.Println(token)
	fmt.Println("\nUse it for testing:")
	fmt.Printf("curl -X PUT 'http://localhost:8080/api/pizzas/1/soldout' \\\n")
	fmt.Printf("  -H 'Authorization: Bearer %s' \\\n", token)
	fmt.Printf("  -H 'Content-Type: application/json' -d 'true'\n")
}
