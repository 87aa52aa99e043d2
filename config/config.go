package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendDynamo   = "dynamodb"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Key-value store selection.
	StoreBackend string `mapstructure:"STORE_BACKEND"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB   int    `mapstructure:"REDIS_STORE_DB"`
	RedisKeyPrefix string `mapstructure:"REDIS_KEY_PREFIX"`

	// MongoDB configuration.
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION"`

	// Postgres configuration.
	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	PostgresTable string `mapstructure:"POSTGRES_TABLE"`

	// DynamoDB configuration.
	DynamoTable     string `mapstructure:"DYNAMO_TABLE"`
	DynamoEndpoint  string `mapstructure:"DYNAMO_ENDPOINT"`
	AWSRegion       string `mapstructure:"AWS_REGION"`
	DynamoAccessKey string `mapstructure:"DYNAMO_ACCESS_KEY"`
	DynamoSecretKey string `mapstructure:"DYNAMO_SECRET_KEY"`

	// Property layout.
	HotelName       string `mapstructure:"HOTEL_NAME"`
	TotalRooms      int    `mapstructure:"TOTAL_ROOMS"`
	FirstRoomNumber int    `mapstructure:"FIRST_ROOM_NUMBER"`
	Timezone        string `mapstructure:"TIMEZONE"`

	// Tariff.
	PriceAC        float64 `mapstructure:"PRICE_AC"`
	PriceNonAC     float64 `mapstructure:"PRICE_NONAC"`
	PriceBed       float64 `mapstructure:"PRICE_BED"`
	PricePillow    float64 `mapstructure:"PRICE_PILLOW"`
	TaxPercent     float64 `mapstructure:"TAX_PERCENT"`
	CurrencySymbol string  `mapstructure:"CURRENCY_SYMBOL"`
	IncludedItems  string  `mapstructure:"INCLUDED_ITEMS"`

	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`
}

var AppConfig Config

const defaultIncludedItems = "Tooth brush,Soap,Tooth paste,Towel,Television (TV),Washing Services,Free Wi-Fi,24 hrs Room Service"

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("STORE_BACKEND", BackendRedis)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_STORE_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "frontdesk:")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "frontdesk")
	v.SetDefault("MONGO_COLLECTION", "kv_store")
	v.SetDefault("POSTGRES_URL", "postgres://localhost:5432/frontdesk?sslmode=disable")
	v.SetDefault("POSTGRES_TABLE", "kv_store")
	v.SetDefault("DYNAMO_TABLE", "FrontdeskStore")
	v.SetDefault("DYNAMO_ENDPOINT", "")
	v.SetDefault("AWS_REGION", "eu-west-3")
	v.SetDefault("DYNAMO_ACCESS_KEY", "")
	v.SetDefault("DYNAMO_SECRET_KEY", "")
	v.SetDefault("HOTEL_NAME", "Royal Hotel Booking Services")
	v.SetDefault("TOTAL_ROOMS", 20)
	v.SetDefault("FIRST_ROOM_NUMBER", 101)
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("PRICE_AC", 3000)
	v.SetDefault("PRICE_NONAC", 2000)
	v.SetDefault("PRICE_BED", 500)
	v.SetDefault("PRICE_PILLOW", 50)
	v.SetDefault("TAX_PERCENT", 12)
	v.SetDefault("CURRENCY_SYMBOL", "₹")
	v.SetDefault("INCLUDED_ITEMS", defaultIncludedItems)
	v.SetDefault("SESSION_TTL", "15m")
}

// Load reads configuration from an optional .env file, config.yaml and the environment.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig and exits on invalid configuration.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate rejects settings the front desk cannot run with.
func (c Config) Validate() error {
	if c.TotalRooms <= 0 {
		return fmt.Errorf("TOTAL_ROOMS must be positive, got %d", c.TotalRooms)
	}
	if c.FirstRoomNumber <= 0 {
		return fmt.Errorf("FIRST_ROOM_NUMBER must be positive, got %d", c.FirstRoomNumber)
	}
	switch c.StoreBackend {
	case BackendMemory, BackendRedis, BackendMongo, BackendPostgres, BackendDynamo:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}
	if c.TaxPercent < 0 {
		return fmt.Errorf("TAX_PERCENT cannot be negative")
	}
	for name, price := range map[string]float64{
		"PRICE_AC": c.PriceAC, "PRICE_NONAC": c.PriceNonAC, "PRICE_BED": c.PriceBed, "PRICE_PILLOW": c.PricePillow,
	} {
		if price < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TIMEZONE; daily counters roll over at midnight in this zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Amenities splits INCLUDED_ITEMS into trimmed, non-empty entries.
func (c Config) Amenities() []string {
	var items []string
	for _, item := range strings.Split(c.IncludedItems, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
