package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Payroll  PayrollConfig
	Payslip  PayslipConfig
}

type AppConfig struct {
	Env           string
	Port          string
	MigrationsDir string
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker       string
	GroupID      string
	PollInterval time.Duration
}

type JWTConfig struct {
	Secret string
}

type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

type PayrollConfig struct {
	GenerateWorkers int
}

const (
	PayslipStorageLocal = "local"
	PayslipStorageS3    = "s3"
)

type PayslipConfig struct {
	Storage       string
	Dir           string
	PublicBaseURL string
	S3            S3Config
}

type S3Config struct {
	Endpoint          string
	Region            string
	Bucket            string
	AccessKey         string
	SecretKey         string
	UsePathStyle      bool
	PresignExpiration time.Duration
}

// DSN is the key/value form used by gorm's postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// URL is the postgres:// form used by golang-migrate.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "payroll")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_GROUP_ID", "go-payroll-payslip")
	v.SetDefault("KAFKA_POLL_INTERVAL", 3*time.Second)

	v.SetDefault("HTTP_READ_TIMEOUT", 5*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	v.SetDefault("PAYROLL_GENERATE_WORKERS", 4)
	v.SetDefault("PAYSLIP_STORAGE", PayslipStorageLocal)
	v.SetDefault("PAYSLIP_STORAGE_DIR", "storage/payslips")
	v.SetDefault("PAYSLIP_PUBLIC_BASE_URL", "/files/payslips")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_USE_PATH_STYLE", true)
	v.SetDefault("S3_PRESIGN_EXPIRATION", 15*time.Minute)
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:           v.GetString("APP_ENV"),
			Port:          v.GetString("PORT"),
			MigrationsDir: v.GetString("MIGRATIONS_DIR"),
		},
		Database: DatabaseConfig{
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			MaxRetries: v.GetInt("DB_MAX_RETRIES"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Broker:       v.GetString("KAFKA_BROKER"),
			GroupID:      v.GetString("KAFKA_GROUP_ID"),
			PollInterval: v.GetDuration("KAFKA_POLL_INTERVAL"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:   v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:    v.GetDuration("HTTP_IDLE_TIMEOUT"),
			RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Payroll: PayrollConfig{
			GenerateWorkers: v.GetInt("PAYROLL_GENERATE_WORKERS"),
		},
		Payslip: PayslipConfig{
			Storage:       v.GetString("PAYSLIP_STORAGE"),
			Dir:           v.GetString("PAYSLIP_STORAGE_DIR"),
			PublicBaseURL: v.GetString("PAYSLIP_PUBLIC_BASE_URL"),
			S3: S3Config{
				Endpoint:          v.GetString("S3_ENDPOINT"),
				Region:            v.GetString("S3_REGION"),
				Bucket:            v.GetString("S3_BUCKET"),
				AccessKey:         v.GetString("S3_ACCESS_KEY"),
				SecretKey:         v.GetString("S3_SECRET_KEY"),
				UsePathStyle:      v.GetBool("S3_USE_PATH_STYLE"),
				PresignExpiration: v.GetDuration("S3_PRESIGN_EXPIRATION"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Payroll.GenerateWorkers < 1 {
		return fmt.Errorf("PAYROLL_GENERATE_WORKERS must be at least 1, got %d", c.Payroll.GenerateWorkers)
	}
	if c.Database.MaxRetries < 1 {
		return fmt.Errorf("DB_MAX_RETRIES must be at least 1, got %d", c.Database.MaxRetries)
	}
	switch c.Payslip.Storage {
	case PayslipStorageLocal:
	case PayslipStorageS3:
		if c.Payslip.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when PAYSLIP_STORAGE=s3")
		}
	default:
		return fmt.Errorf("PAYSLIP_STORAGE must be %q or %q, got %q", PayslipStorageLocal, PayslipStorageS3, c.Payslip.Storage)
	}
	if c.App.IsProduction() && c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}
