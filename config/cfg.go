package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/wholesale-portal/internal/api/http"
	"github.com/jekabolt/wholesale-portal/internal/apisrv/auth"
	"github.com/jekabolt/wholesale-portal/internal/bucket"
	"github.com/jekabolt/wholesale-portal/internal/digest"
	"github.com/jekabolt/wholesale-portal/internal/invoice"
	"github.com/jekabolt/wholesale-portal/internal/mail"
	"github.com/jekabolt/wholesale-portal/internal/ratelimit"
	"github.com/jekabolt/wholesale-portal/internal/store"
	"github.com/jekabolt/wholesale-portal/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      auth.Config      `mapstructure:"auth"`
	Bucket    bucket.Config    `mapstructure:"bucket"`
	Mailer    mail.Config      `mapstructure:"mailer"`
	Invoice   invoice.Config   `mapstructure:"invoice"`
	Digest    digest.Config    `mapstructure:"digest"`
	RateLimit ratelimit.Config `mapstructure:"rate_limit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested keys use double underscore, e.g. MYSQL__DSN for mysql.dsn; the
// common ones are also bound to flat names such as MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/wholesale-portal")
		v.AddConfigPath("/etc/wholesale-portal")
		// the file is optional
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the DSN from parts when only MYSQL_HOST and friends are set.
	if config.DB.DSN == "" {
		host := os.Getenv("MYSQL_HOST")
		port := os.Getenv("MYSQL_PORT")
		user := os.Getenv("MYSQL_USER")
		password := os.Getenv("MYSQL_PASSWORD")
		database := os.Getenv("MYSQL_DATABASE")
		if host != "" && user != "" && password != "" && database != "" {
			if port == "" {
				port = "3306"
			}
			config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
				user, password, host, port, database)
		}
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)

	v.SetDefault("http.port", "8081")
	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.request_timeout", "60s")

	v.SetDefault("auth.password_hasher_salt_size", 16)
	v.SetDefault("auth.password_hasher_iterations", 100000)
	v.SetDefault("auth.jwt_ttl", "24h")

	v.SetDefault("bucket.baseFolder", "portal")
	v.SetDefault("mailer.worker_interval", "1m")
	v.SetDefault("mailer.max_attempts", 5)
	v.SetDefault("invoice.currency", "usd")
	v.SetDefault("invoice.days_until_due", 30)
	v.SetDefault("digest.worker_interval", "168h")
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.master_password", "AUTH_MASTER_PASSWORD")
	v.BindEnv("auth.password_hasher_salt_size", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	v.BindEnv("auth.password_hasher_iterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Bucket
	v.BindEnv("bucket.s3AccessKey", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3SecretAccessKey", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3Endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3BucketName", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3BucketLocation", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.baseFolder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.subdomainEndpoint", "BUCKET_SUBDOMAIN_ENDPOINT")

	// Mailer
	v.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	v.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	v.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	v.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")
	v.BindEnv("mailer.vendor_email", "MAILER_VENDOR_EMAIL")
	v.BindEnv("mailer.worker_interval", "MAILER_WORKER_INTERVAL")
	v.BindEnv("mailer.max_attempts", "MAILER_MAX_ATTEMPTS")

	// Stripe invoicing
	v.BindEnv("invoice.secret_key", "STRIPE_SECRET_KEY")
	v.BindEnv("invoice.currency", "INVOICE_CURRENCY")
	v.BindEnv("invoice.days_until_due", "INVOICE_DAYS_UNTIL_DUE")

	// At-risk digest
	v.BindEnv("digest.worker_interval", "DIGEST_WORKER_INTERVAL")
	v.BindEnv("digest.disabled", "DIGEST_DISABLED")

	// Retailer rate limits
	v.BindEnv("rate_limit.orders_per_hour", "RATE_LIMIT_ORDERS_PER_HOUR")
	v.BindEnv("rate_limit.messages_per_hour", "RATE_LIMIT_MESSAGES_PER_HOUR")
	v.BindEnv("rate_limit.samples_per_day", "RATE_LIMIT_SAMPLES_PER_DAY")
	v.BindEnv("rate_limit.logins_per_minute", "RATE_LIMIT_LOGINS_PER_MINUTE")
}
