package auth

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds the settings of the mock authentication backend.
type Config struct {
	Email      string
	Password   string
	UserID     string
	UserName   string
	Delay      time.Duration
	BcryptCost int
}

// DefaultConfig returns the built-in demo account.
func DefaultConfig() Config {
	return Config{
		Email:      "joao@gmail.com",
		Password:   "123",
		UserID:     "1",
		UserName:   "João Silva",
		Delay:      DefaultDelay,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// LoadConfig reads auth configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("JORNADA_AUTH_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("JORNADA_AUTH_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("JORNADA_AUTH_NAME"); v != "" {
		cfg.UserName = v
	}
	if v := os.Getenv("JORNADA_AUTH_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Delay = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("JORNADA_AUTH_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= bcrypt.MinCost && n <= bcrypt.MaxCost {
			cfg.BcryptCost = n
		}
	}

	return cfg
}
