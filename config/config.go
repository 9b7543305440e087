package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Document store: "mongo", "firestore" or "memory".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis holds admin sessions.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Identity provider: "password" (users collection + bcrypt) or "firebase".
	AuthProvider        string        `mapstructure:"AUTH_PROVIDER"`
	JWTSecret           string        `mapstructure:"JWT_SECRET"`
	SessionTTL          time.Duration `mapstructure:"SESSION_TTL"`
	BootstrapAdminEmail string        `mapstructure:"BOOTSTRAP_ADMIN_EMAIL"`
	// Only used with AUTH_PROVIDER=password, to create the matching user.
	BootstrapAdminPassword string `mapstructure:"BOOTSTRAP_ADMIN_PASSWORD"`

	// Firebase project.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseAPIKey          string `mapstructure:"FIREBASE_API_KEY"`

	// Default slot layout for a freshly initialised date.
	SlotStartHour int `mapstructure:"SLOT_START_HOUR"`
	SlotEndHour   int `mapstructure:"SLOT_END_HOUR"`
	SlotCapacity  int `mapstructure:"SLOT_CAPACITY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("STORE_BACKEND", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "bookingsite")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("AUTH_PROVIDER", "password")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "config/serviceAccountKey.json")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_API_KEY", "")
	viper.SetDefault("SLOT_START_HOUR", 9)
	viper.SetDefault("SLOT_END_HOUR", 18)
	viper.SetDefault("SLOT_CAPACITY", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
