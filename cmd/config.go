package cmd

import "time"

// Config is read from the environment (and .env) by cmd/app.
type Config struct {
	HTTPPort string

	// DBDriver is "postgres" or "sqlite".
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// SQLitePath is the database file for the sqlite driver; empty means in-memory.
	SQLitePath string

	// KafkaBrokers is a comma-separated broker list; empty logs notifications instead.
	KafkaBrokers            string
	KafkaScheduleEventTopic string

	// JWTSecret verifies the HS256 bearer tokens that identify actors.
	JWTSecret string

	// PolicyFile is the YAML ordinance; empty uses the built-in default.
	PolicyFile string
	// AuthzPolicyFile is a Casbin policy CSV; empty lets both parties do everything.
	AuthzPolicyFile string

	DispatchSpec         string
	DispatchBatchSize    int
	DispatchMaxAttempts  int
	DispatchClaimTimeout time.Duration
	DispatchRunTimeout   time.Duration
}

const (
	defaultScheduleEventTopic   = "delivery-schedule-events"
	defaultDispatchBatchSize    = 50
	defaultDispatchMaxAttempts  = 10
	defaultDispatchClaimTimeout = 2 * time.Minute
	defaultDispatchRunTimeout   = 30 * time.Second
)

// WithDefaults fills the optional settings left empty.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if c.DBDriver == "" {
		c.DBDriver = "postgres"
	}
	if c.KafkaScheduleEventTopic == "" {
		c.KafkaScheduleEventTopic = defaultScheduleEventTopic
	}
	if c.DispatchBatchSize <= 0 {
		c.DispatchBatchSize = defaultDispatchBatchSize
	}
	if c.DispatchMaxAttempts <= 0 {
		c.DispatchMaxAttempts = defaultDispatchMaxAttempts
	}
	if c.DispatchClaimTimeout <= 0 {
		c.DispatchClaimTimeout = defaultDispatchClaimTimeout
	}
	if c.DispatchRunTimeout <= 0 {
		c.DispatchRunTimeout = defaultDispatchRunTimeout
	}
	return c
}
