package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the bridge needs at runtime. It is assembled once
// in main and passed explicitly into each constructor, so request handling
// never reaches into the environment.
type Config struct {
	Port string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	// DeviceAuthToken is the shared secret every provisioned RS9W terminal
	// presents as a bearer token. Enrolled per-device tokens are signed
	// with it as well.
	DeviceAuthToken string

	// PublicURL is the base URL terminals are pointed at; it is echoed
	// back in the snapshot's machine_instructions block.
	PublicURL string

	// LogListLimit caps the page size of the punch-log listing.
	LogListLimit int
}

func Load() Config {
	return Config{
		Port:            GetEnv("PORT", "3000"),
		DBUser:          GetEnv("DB_USER", "root"),
		DBPass:          GetEnv("DB_PASS", ""),
		DBHost:          GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:          GetEnv("DB_PORT", "3306"),
		DBName:          GetEnv("DB_NAME", "rs9w_bridge"),
		DeviceAuthToken: GetEnv("DEVICE_AUTH_TOKEN", "rs9w-bridge-secret"),
		PublicURL:       GetEnv("PUBLIC_URL", "http://localhost:3000"),
		LogListLimit:    GetEnvAsInt("LOG_LIST_LIMIT", 50),
	}
}

// DSN builds the MySQL connection string.
// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
