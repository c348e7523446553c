package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	ServerPort string
	LogLevel   string
	Timezone   string

	AdminPassword string
	UserPassword  string
	JWTSecret     string
	JWTTTL        time.Duration

	StoreDriver string
	DBUrl       string
	XLSXPath    string
	S3          S3Config

	RedisURL     string
	EmployeesTTL time.Duration
	AgendaTTL    time.Duration

	CORSOrigins []string
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
	PathStyle bool
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
	DriverXLSX     = "xlsx"
)

// Load lê .env (se existir) e o ambiente.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return FromViper(v)
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:        getString(v, "APP_ENV", "development"),
		ServerPort: getString(v, "SERVER_PORT", "8080"),
		LogLevel:   getString(v, "LOG_LEVEL", "info"),
		Timezone:   getString(v, "TIMEZONE", "America/Mexico_City"),

		AdminPassword: getString(v, "ADMIN_PASSWORD", ""),
		UserPassword:  getString(v, "USER_PASSWORD", ""),
		JWTSecret:     getString(v, "JWT_SECRET", ""),
		JWTTTL:        time.Duration(getInt(v, "JWT_TTL_MINUTES", 480)) * time.Minute,

		StoreDriver: strings.ToLower(getString(v, "STORE_DRIVER", DriverMemory)),
		DBUrl:       getString(v, "DATABASE_URL", ""),
		XLSXPath:    getString(v, "XLSX_PATH", "agenda.xlsx"),
		S3: S3Config{
			Endpoint:  getString(v, "S3_ENDPOINT", ""),
			Region:    getString(v, "S3_REGION", "us-east-1"),
			Bucket:    getString(v, "S3_BUCKET", ""),
			Prefix:    getString(v, "S3_PREFIX", "vacaciones"),
			AccessKey: getString(v, "S3_ACCESS_KEY", ""),
			SecretKey: getString(v, "S3_SECRET_KEY", ""),
			PathStyle: getBool(v, "S3_PATH_STYLE", false),
		},

		RedisURL:     getString(v, "REDIS_URL", ""),
		EmployeesTTL: time.Duration(getInt(v, "CACHE_EMPLOYEES_TTL", 30)) * time.Second,
		AgendaTTL:    time.Duration(getInt(v, "CACHE_AGENDA_TTL", 15)) * time.Second,

		CORSOrigins: splitList(getString(v, "CORS_ORIGINS", "*")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) validate() error {
	var errs []error

	switch c.StoreDriver {
	case DriverMemory, DriverXLSX:
	case DriverPostgres:
		if c.DBUrl == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for STORE_DRIVER=postgres"))
		}
	case DriverS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for STORE_DRIVER=s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	if !c.IsDevelopment() {
		if c.AdminPassword == "" {
			errs = append(errs, errors.New("ADMIN_PASSWORD is required"))
		}
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required"))
		}
	} else if c.JWTSecret == "" {
		c.JWTSecret = "dev-secret"
	}

	return errors.Join(errs...)
}

func getString(v *viper.Viper, key, def string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	s := strings.TrimSpace(v.GetString(key))
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func getBool(v *viper.Viper, key string, def bool) bool {
	s := strings.TrimSpace(v.GetString(key))
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
