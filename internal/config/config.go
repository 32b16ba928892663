package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Recognizer Recognizer `yaml:"recognizer"`
	Sessions   Sessions   `yaml:"sessions"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	// MaxUploadBytes bounds the audio file accepted by the recognize endpoint.
	MaxUploadBytes int64    `yaml:"max_upload_bytes" env-default:"104857600"`
	CORSOrigins    []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`
}

// Database configures the export journal. An empty Host keeps the journal in memory.
type Database struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"bordero"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Recognizer struct {
	URL     string        `yaml:"url" env:"RECOGNIZER_URL" env-default:"http://127.0.0.1:8000"`
	Timeout time.Duration `yaml:"timeout" env:"RECOGNIZER_TIMEOUT" env-default:"5m"`
}

// Sessions bounds how long an untouched editing session is kept in memory.
type Sessions struct {
	IdleTTL       time.Duration `yaml:"idle_ttl" env:"SESSION_IDLE_TTL" env-default:"24h"`
	PurgeInterval time.Duration `yaml:"purge_interval" env-default:"1m"`
}

func (d Database) Enabled() bool {
	return d.Host != ""
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
