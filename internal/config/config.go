// Package config loads the service settings from the environment (optionally
// seeded by a .env file) and lets command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

const minSecretLen = 32

var (
	ErrInvalidMode        = errors.New("invalid mode")
	ErrMissingTokenSecret = errors.New("TOKEN_SECRET must be at least 32 bytes in live mode")
	ErrMissingOTPHashKey  = errors.New("OTP_HASH_KEY must be at least 32 bytes in live mode")
	ErrInvalidAuditSink   = errors.New("invalid AUDIT_SINK")
	ErrMissingKafka       = errors.New("KAFKA_BROKERS is required when AUDIT_SINK=kafka")
)

// Config holds runtime settings.
//
// Mock mode runs on in-memory stores seeded from FixturesPath and uses
// development secrets when none are configured. Live mode uses DynamoDB for
// records, Redis for OTPs and acceptance state, and refuses to start without
// real secrets.
type Config struct {
	Port           int
	Mode           Mode
	AllowDevBypass bool

	TokenSecret          string
	TokenTTL             time.Duration
	OTPTTL               time.Duration
	OTPHashKey           string
	AcceptanceSessionTTL time.Duration
	UpstreamTimeout      time.Duration
	PublicBaseURL        string

	FixturesPath string

	RedisAddr       string
	RedisPassword   string
	RateLimitWindow time.Duration
	RateLimitMax    int

	AuditSink       string
	KafkaBrokers    []string
	KafkaAuditTopic string

	OffersTable  string
	PartiesTable string
	AuditTable   string
}

const (
	AuditSinkMemory   = "memory"
	AuditSinkDynamoDB = "dynamodb"
	AuditSinkKafka    = "kafka"
)

const (
	devTokenSecret = "dev-only-token-secret-change-me-0000"
	devOTPHashKey  = "dev-only-otp-hash-key-change-me-0000"
)

// Load reads the environment, then applies flags parsed from args.
func Load(args []string) (Config, error) {
	cfg := fromEnv()
	if err := parseFlags(&cfg, args); err != nil {
		return Config{}, err
	}
	cfg.applyModeDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv() Config {
	mode := Mode(strings.ToLower(getenvDefault("APP_MODE", string(ModeMock))))
	return Config{
		Port:           getenvInt("PORT", 8080),
		Mode:           mode,
		AllowDevBypass: getenvBool("ALLOW_DEV_BYPASS", mode == ModeMock),

		TokenSecret:          os.Getenv("TOKEN_SECRET"),
		TokenTTL:             getenvDuration("TOKEN_TTL", 24*time.Hour),
		OTPTTL:               getenvDuration("OTP_TTL", 15*time.Minute),
		OTPHashKey:           os.Getenv("OTP_HASH_KEY"),
		AcceptanceSessionTTL: getenvDuration("ACCEPTANCE_SESSION_TTL", 30*time.Minute),
		UpstreamTimeout:      getenvDuration("UPSTREAM_TIMEOUT", 5*time.Second),
		PublicBaseURL:        getenvDefault("PUBLIC_BASE_URL", "http://localhost:3000"),

		FixturesPath: os.Getenv("FIXTURES_PATH"),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RateLimitWindow: getenvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:    getenvInt("RATE_LIMIT_MAX", 10),

		AuditSink:       strings.ToLower(os.Getenv("AUDIT_SINK")),
		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaAuditTopic: getenvDefault("KAFKA_AUDIT_TOPIC", "bond.acceptance.audit"),

		OffersTable:  getenvDefault("OFFERS_TABLE", "offers"),
		PartiesTable: getenvDefault("PARTIES_TABLE", "parties"),
		AuditTable:   getenvDefault("AUDIT_TABLE", "audit_events"),
	}
}

func (c *Config) applyModeDefaults() {
	if c.AuditSink == "" {
		if c.Mode == ModeLive {
			c.AuditSink = AuditSinkDynamoDB
		} else {
			c.AuditSink = AuditSinkMemory
		}
	}
	if c.Mode == ModeMock {
		if c.TokenSecret == "" {
			c.TokenSecret = devTokenSecret
		}
		if c.OTPHashKey == "" {
			c.OTPHashKey = devOTPHashKey
		}
	}
}

// Validate rejects combinations the service cannot run with.
func (c Config) Validate() error {
	if c.Mode != ModeMock && c.Mode != ModeLive {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.Mode == ModeLive {
		if len(c.TokenSecret) < minSecretLen {
			return ErrMissingTokenSecret
		}
		if len(c.OTPHashKey) < minSecretLen {
			return ErrMissingOTPHashKey
		}
	}
	switch c.AuditSink {
	case AuditSinkMemory, AuditSinkDynamoDB:
	case AuditSinkKafka:
		if len(c.KafkaBrokers) == 0 {
			return ErrMissingKafka
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAuditSink, c.AuditSink)
	}
	return nil
}

// Environment is the part of the configuration the acceptance protocol consults.
func (c Config) Environment() Environment {
	return Environment{Mode: c.Mode, AllowDevBypass: c.AllowDevBypass}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && strings.TrimSpace(v) != ""
}
