package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	AWS      AWS      `mapstructure:"aws"`
}

type Server struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Database struct {
	// Driver is one of sqlite3, postgres (both through gorm) or pgx.
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type AWS struct {
	Region          string        `mapstructure:"region"`
	S3Bucket        string        `mapstructure:"s3_bucket"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	SignMedia       bool          `mapstructure:"sign_media"`
	PresignTTL      time.Duration `mapstructure:"presign_ttl"`
}

// Load reads an optional .env file, then config.yaml from path (or cmd/config/
// and the working directory). Environment variables override file values,
// e.g. DATABASE_DSN for database.dsn.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else {
		log.Printf("config: loaded env from .env")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("cmd/config/")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Printf("config: no config.yaml found, using defaults and env")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "catalog.db")
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.s3_bucket", "")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("aws.sign_media", false)
	v.SetDefault("aws.presign_ttl", 15*time.Minute)
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite3", "postgres", "pgx":
	default:
		return fmt.Errorf("database.driver %q not supported (want sqlite3, postgres or pgx)", c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	if c.AWS.SignMedia {
		if c.AWS.S3Bucket == "" || c.AWS.Region == "" {
			return errors.New("aws.s3_bucket and aws.region are required when aws.sign_media is set")
		}
		if c.AWS.PresignTTL <= 0 {
			return fmt.Errorf("aws.presign_ttl must be positive; got %s", c.AWS.PresignTTL)
		}
	}
	return nil
}
