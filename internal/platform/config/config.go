package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration for the embedding service.
type Server struct {
	Addr        string
	RedisURL    string
	PostgresDSN string
	Providers   Providers
}

// Providers groups per-vendor credentials and sandbox overrides. Empty
// credentials mean the vendor is not configured in this environment.
type Providers struct {
	SmileID     SmileID
	Dojah       Dojah
	Certiscreen Certiscreen
	Termii      Termii

	// CheckTimeout bounds each individual vendor call.
	CheckTimeout time.Duration
}

// SmileID configures the document/biometric vendor.
type SmileID struct {
	PartnerID string
	APIKey    string
	BaseURL   string
}

// Dojah configures the national-identifier vendor.
type Dojah struct {
	AppID     string
	SecretKey string
	BaseURL   string
}

// Certiscreen configures the sanctions/PEP screening vendor.
type Certiscreen struct {
	APIKey  string
	BaseURL string
}

// Termii configures the SMS/OTP vendor.
type Termii struct {
	APIKey   string
	SenderID string
	BaseURL  string
}

// Configured reports whether the SMS vendor has usable credentials. The
// registry falls back to the built-in phone checker when it does not.
func (t Termii) Configured() bool {
	return t.APIKey != ""
}

// ScreeningCacheTTL bounds retention of cached AML screening results.
var ScreeningCacheTTL = 15 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("VOUCH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:        addr,
		RedisURL:    os.Getenv("VOUCH_REDIS_URL"),
		PostgresDSN: os.Getenv("VOUCH_POSTGRES_DSN"),
		Providers:   ProvidersFromEnv(),
	}
}

// ProvidersFromEnv reads vendor credentials and sandbox overrides.
func ProvidersFromEnv() Providers {
	timeout := 10 * time.Second
	if raw := os.Getenv("VOUCH_CHECK_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}

	return Providers{
		SmileID: SmileID{
			PartnerID: os.Getenv("SMILEID_PARTNER_ID"),
			APIKey:    os.Getenv("SMILEID_API_KEY"),
			BaseURL:   os.Getenv("SMILEID_BASE_URL"),
		},
		Dojah: Dojah{
			AppID:     os.Getenv("DOJAH_APP_ID"),
			SecretKey: os.Getenv("DOJAH_SECRET_KEY"),
			BaseURL:   os.Getenv("DOJAH_BASE_URL"),
		},
		Certiscreen: Certiscreen{
			APIKey:  os.Getenv("CERTISCREEN_API_KEY"),
			BaseURL: os.Getenv("CERTISCREEN_BASE_URL"),
		},
		Termii: Termii{
			APIKey:   os.Getenv("TERMII_API_KEY"),
			SenderID: os.Getenv("TERMII_SENDER_ID"),
			BaseURL:  os.Getenv("TERMII_BASE_URL"),
		},
		CheckTimeout: timeout,
	}
}
