// Command token issues a bearer token for the control plane.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/yanqian/summarize-console/internal/domain/auth"
	"github.com/yanqian/summarize-console/internal/infra/config"
	"github.com/yanqian/summarize-console/pkg/logger"
)

func main() {
	subject := flag.String("subject", "operator", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to auth.tokenTtl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Auth.Secret == "" {
		log.Fatal("auth.secret is not configured")
	}

	svc := auth.NewService(auth.Config{Enabled: true, Secret: cfg.Auth.Secret, TokenTTL: cfg.Auth.TokenTTL}, logger.New())
	token, err := svc.IssueToken(*subject, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	expires := *ttl
	if expires <= 0 {
		expires = cfg.Auth.TokenTTL
	}
	fmt.Println(token)
	log.Printf("expires at %s", time.Now().Add(expires).UTC().Format(time.RFC3339))
}
