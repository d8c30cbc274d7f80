package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ariebrainware/hospital-directory/util"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `json:"appname"`
	AppEnv  string `json:"appenv"`
	AppPort uint16 `json:"appport"`
	GinMode string `json:"ginmode"`
	DBHost  string `json:"dbhost"`
	DBPort  uint16 `json:"dbport"`
	DBName  string `json:"dbname"`
	DBUSER  string `json:"dbuser"`
	DBPass  string `json:"dbpass"`

	// Identity service
	OAuthURL     string        `json:"oauth_url"`
	AuthMode     string        `json:"auth_mode"`
	JWTSecret    string        `json:"-"`
	AuthCacheTTL time.Duration `json:"auth_cache_ttl"`

	RedisEnabled  bool   `json:"redis_enabled"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"-"`
	RedisDB       int    `json:"redis_db"`

	RateLimit  int           `json:"rate_limit"`
	RateWindow time.Duration `json:"rate_window"`

	GeoIPDBPath string `json:"geoip_db_path"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
}

const (
	AuthModeRemote = "remote"
	AuthModeJWT    = "jwt"
)

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			util.Logger().Info().Err(err).Msg("no .env file loaded, using process environment")
		}
		config = FromEnv()
	})
	return config
}

// FromEnv builds a Config from the current process environment.
func FromEnv() *Config {
	appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
	dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

	cfg := &Config{
		AppName: os.Getenv("APPNAME"),
		AppEnv:  os.Getenv("APPENV"),
		AppPort: uint16(appPort),
		GinMode: os.Getenv("GINMODE"),
		DBHost:  os.Getenv("DBHOST"),
		DBPort:  uint16(dbPort),
		DBName:  os.Getenv("DBNAME"),
		DBUSER:  os.Getenv("DBUSER"),
		DBPass:  os.Getenv("DBPASS"),

		OAuthURL:     strings.TrimRight(os.Getenv("OAUTH_URL"), "/"),
		AuthMode:     strings.ToLower(getEnv("AUTH_MODE", AuthModeRemote)),
		JWTSecret:    os.Getenv("JWTSECRET"),
		AuthCacheTTL: getDuration("AUTH_CACHE_TTL", 30*time.Second),

		RedisEnabled:  getBool("REDIS_ENABLED", false),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		RateLimit:  getInt("RATE_LIMIT", 60),
		RateWindow: getDuration("RATE_WINDOW", time.Minute),

		GeoIPDBPath: os.Getenv("GEOIP_DB_PATH"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
	if cfg.AppPort == 0 {
		cfg.AppPort = 8080
	}
	return cfg
}

// IsTest reports whether the app runs against the in-memory test database.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
