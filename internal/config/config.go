package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultPort = "8082"

type Config struct {
	Port        string
	JWTSecret   string
	MySQLDSN    string
	MongoURI    string
	MongoDBName string
}

// Load reads the env file named by START (".env" when unset) into the
// process environment and collects the settings the service needs.
// A missing env file is fine, a missing required variable is not.
func Load() (*Config, error) {
	file := os.Getenv("START")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file %s: %w", file, err)
	}

	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: os.Getenv("MONGO_DB_NAME"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	var missing []string
	for _, v := range []struct{ key, val string }{
		{"JWT_SECRET", cfg.JWTSecret},
		{"MYSQL_DSN", cfg.MySQLDSN},
		{"MONGO_URI", cfg.MongoURI},
		{"MONGO_DB_NAME", cfg.MongoDBName},
	} {
		if v.val == "" {
			missing = append(missing, v.key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s is not set in environment", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
