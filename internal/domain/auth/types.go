package auth

import "time"

// Config drives control plane authentication.
type Config struct {
	Enabled  bool
	Secret   string
	TokenTTL time.Duration
}

// Claims are extracted from the JWT token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}
