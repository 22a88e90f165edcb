// config/config.go
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Email         EmailConfiguration
	Auth          AuthConfiguration
	QR            QRConfiguration
	RateLimit     RateLimitConfiguration
	Log           LogConfiguration
}

type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for the graph database connection
type DatabaseConfiguration struct {
	URI      string
	Username string
	Password string
	Database string
}

type RedisConfiguration struct {
	Addr            string
	Password        string
	DB              int
	DefaultCacheTTL string
}

type ElasticsearchConfiguration struct {
	URL   string
	Index string
}

// EmailConfiguration holds the SMTP account invitations and account mails
// are sent from.
type EmailConfiguration struct {
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
}

type AuthConfiguration struct {
	JWTSecret             string
	TokenTTL              time.Duration
	RequireConfirmedEmail bool
	ConfirmationURL       string
	ResetURL              string
	ResetCooldown         time.Duration
	ResetTokenTTL         time.Duration
	MaxResetAttempts      int
}

type QRConfiguration struct {
	Size int
}

type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

type LogConfiguration struct {
	Dir string
}

var config *Configuration

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.username", "neo4j")
	viper.SetDefault("neo4j.password", "")
	viper.SetDefault("neo4j.database", "")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "eventdesk-audit")
	viper.SetDefault("email.smtpHost", "")
	viper.SetDefault("email.smtpPort", 587)
	viper.SetDefault("email.senderEmail", "")
	viper.SetDefault("email.senderPassword", "")
	viper.SetDefault("auth.jwtSecret", "")
	viper.SetDefault("auth.tokenTTL", "24h")
	viper.SetDefault("auth.requireConfirmedEmail", false)
	viper.SetDefault("auth.confirmationURL", "http://localhost:8080/api/v1/auth/confirm-email")
	viper.SetDefault("auth.resetURL", "http://localhost:3000/reset-password")
	viper.SetDefault("auth.resetCooldown", "90s")
	viper.SetDefault("auth.resetTokenTTL", "20m")
	viper.SetDefault("auth.maxResetAttempts", 10)
	viper.SetDefault("qr.size", 300)
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("log.dir", "logging")
}

func InitConfig() error {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using process environment.")
	}

	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value ("90s", "20m") from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
