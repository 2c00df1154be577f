package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nzwalks/backend/internal/config"
	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/pkg/auth"

	"github.com/ilyakaznacheev/cleanenv"
)

// Issues access tokens for local development. Production tokens come from
// the identity provider and only need to share the signing key.
func main() {
	subject := flag.String("subject", "dev-user", "Token subject")
	roles := flag.String("roles", "Reader,Writer", "Comma separated roles")
	ttl := flag.Duration("ttl", 0, "Token lifetime, defaults to JWT_ACCESS_TOKEN_TTL")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	var cfg config.JWTConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading jwt config: %v\n", err)
		os.Exit(1)
	}
	if *ttl > 0 {
		cfg.AccessTokenTTL = *ttl
	}

	granted, err := parseRoles(*roles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	manager, err := auth.NewManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token manager: %v\n", err)
		os.Exit(1)
	}

	token, expiresIn, err := manager.NewJWT(*subject, granted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(expiresIn.Seconds()),
			"subject":      *subject,
			"roles":        granted,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	fmt.Printf("Subject:  %s\n", *subject)
	fmt.Printf("Roles:    %s\n", strings.Join(granted, ", "))
	fmt.Printf("Expires:  %s\n", time.Now().Add(expiresIn).Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
}

func parseRoles(raw string) ([]string, error) {
	var out []string
	for _, r := range strings.Split(raw, ",") {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		switch domain.Role(r) {
		case domain.RoleReader, domain.RoleWriter:
			out = append(out, r)
		default:
			return nil, fmt.Errorf("unknown role %q, expected %s or %s", r, domain.RoleReader, domain.RoleWriter)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one role is required")
	}
	return out, nil
}
