package config

import (
	"os"
	"strings"
	"time"

	pstrings "merit/pkg/platform/strings"
)

// Server captures process-level configuration. Postgres, redis and kafka are
// optional: an empty URL selects the in-memory fallback so the registry runs
// standalone in development and tests.
type Server struct {
	Addr           string
	AdminTokenHash string
	JWTSigningKey  string
	JWTIssuer      string
	JWTAudience    string
	PostgresURL    string
	RedisURL       string
	KafkaBrokers   []string
	KafkaTopic     string
}

// ScoreCacheTTL bounds staleness of the redis score cache between an admin
// correction and its invalidation reaching every node.
var ScoreCacheTTL = 5 * time.Minute

// FromEnv builds a Server config from environment variables so main stays
// lean.
func FromEnv() Server {
	addr := os.Getenv("MERIT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("MERIT_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("MERIT_KAFKA_BROKERS"); raw != "" {
		brokers = pstrings.DedupeAndTrim(strings.Split(raw, ","))
	}

	return Server{
		Addr:           addr,
		AdminTokenHash: os.Getenv("MERIT_ADMIN_TOKEN_HASH"),
		JWTSigningKey:  jwtSigningKey,
		JWTIssuer:      envOr("MERIT_JWT_ISSUER", "merit"),
		JWTAudience:    envOr("MERIT_JWT_AUDIENCE", "merit-registry"),
		PostgresURL:    os.Getenv("MERIT_POSTGRES_URL"),
		RedisURL:       os.Getenv("MERIT_REDIS_URL"),
		KafkaBrokers:   brokers,
		KafkaTopic:     os.Getenv("MERIT_KAFKA_TOPIC"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
