package config

import (
	"crypto/subtle"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// AdminConfig holds the single admin account used by the reports surface.
// Credentials come from the environment; there is no admin signup flow.
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash, preferred
	Password     string // plaintext fallback for local development
}

// NewAdminConfig builds the admin account from ADMIN_EMAIL plus either
// ADMIN_PASSWORD_HASH (bcrypt) or ADMIN_PASSWORD.
func NewAdminConfig() (*AdminConfig, error) {
	cfg := &AdminConfig{
		Email:        os.Getenv("ADMIN_EMAIL"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Password:     os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.Email == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is required but not set")
	}
	if cfg.PasswordHash == "" && cfg.Password == "" {
		return nil, fmt.Errorf("one of ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
	}
	return cfg, nil
}

// Authenticate reports whether the given credentials match the admin account.
func (c *AdminConfig) Authenticate(email, password string) bool {
	if subtle.ConstantTimeCompare([]byte(email), []byte(c.Email)) != 1 {
		return false
	}
	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}
