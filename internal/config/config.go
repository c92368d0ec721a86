package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, HTTP server, database
// connection, authentication, WHOIS transport, the checker and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log configures the optional rotated log file
	Log struct {
		// File is the path of the rotated log file. Empty disables file output.
		File string `env:"LOG_FILE" env-default:"" yaml:"file"`
		// MaxSizeMB is the size in megabytes after which the file is rotated
		MaxSizeMB int `env:"LOG_MAX_SIZE_MB" env-default:"100" yaml:"maxSizeMB"`
		// MaxBackups is the number of rotated files to keep
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"5" yaml:"maxBackups"`
		// MaxAgeDays is the number of days rotated files are kept
		MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" env-default:"30" yaml:"maxAgeDays"`
		// Compress gzips rotated files
		Compress bool `env:"LOG_COMPRESS" env-default:"false" yaml:"compress"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the origins allowed to call the API from a browser
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"domainchecker" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ConnectRetries is how many times the initial connection is retried
		ConnectRetries uint64 `env:"DATABASE_CONNECT_RETRIES" env-default:"5" yaml:"connectRetries"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used for bearer authentication
	JWT struct {
		// PublicKey is the PEM encoded public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Whois configures the WHOIS transport
	Whois struct {
		// Timeout bounds a single lookup, the IANA referral included
		Timeout time.Duration `env:"WHOIS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// Servers overrides the registry server per TLD label, e.g. {"com": "whois.verisign-grs.com"}
		Servers map[string]string `env:"WHOIS_SERVERS" env-separator:"," yaml:"servers"`
	} `yaml:"whois"`

	// Checker configures the availability checker and its background queue
	Checker struct {
		// Concurrency is the number of pairs of one batch checked in parallel
		Concurrency int `env:"CHECKER_CONCURRENCY" env-default:"8" yaml:"concurrency"`
		// MinInterval is the shortest spacing between two WHOIS lookups of the process
		MinInterval time.Duration `env:"CHECKER_MIN_INTERVAL" env-default:"200ms" yaml:"minInterval"`
		// MaxInterval is the longest spacing the throttle backs off to on rate limiting
		MaxInterval time.Duration `env:"CHECKER_MAX_INTERVAL" env-default:"5s" yaml:"maxInterval"`
		// RecoverySteps is the number of successful lookups needed to recover full speed
		RecoverySteps int `env:"CHECKER_RECOVERY_STEPS" env-default:"10" yaml:"recoverySteps"`
		// QueueWorkers is the number of batches processed concurrently by the queue
		QueueWorkers int `env:"CHECKER_QUEUE_WORKERS" env-default:"4" yaml:"queueWorkers"`
		// MaxAttempts is the maximum number of attempts for a batch job
		MaxAttempts int `env:"CHECKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// JobTimeout bounds one background batch; a negative value disables it
		JobTimeout time.Duration `env:"CHECKER_JOB_TIMEOUT" env-default:"30m" yaml:"jobTimeout"`
		// UniqueJobPeriod is the window during which an identical batch is enqueued at most once
		UniqueJobPeriod time.Duration `env:"CHECKER_UNIQUE_JOB_PERIOD" env-default:"24h" yaml:"uniqueJobPeriod"`
	} `yaml:"checker"`

	// Tracing configures the OpenTelemetry tracer provider
	Tracing struct {
		// SampleRatio is the fraction of traces recorded and logged at debug level; 0 disables tracing
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Variables from a .env file in the working directory are loaded first, when
// present, so they take part in the environment overrides.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
