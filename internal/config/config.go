package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Logging   LoggingConfig
	Licencias LicenciasConfig
	Referidos ReferidosConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
}

type LoggingConfig struct {
	Level      string
	Format     string
	Output     string
	Filename   string
	MaxSize    int
	MaxAge     int
	MaxBackups int
	Compress   bool
}

type LicenciasConfig struct {
	DiasIniciales  int
	SweepInterval  time.Duration
	SweepAlIniciar bool
}

type ReferidosConfig struct {
	Comision decimal.Decimal
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	sweepSeconds, err := strconv.Atoi(getEnv("LICENCIA_SWEEP_SECONDS", "60"))
	if err != nil || sweepSeconds < 1 {
		sweepSeconds = 60
	}

	diasIniciales, err := strconv.Atoi(getEnv("LICENCIA_DIAS_INICIALES", "30"))
	if err != nil || diasIniciales < 1 {
		diasIniciales = 30
	}

	comision, err := decimal.NewFromString(getEnv("REFERIDO_COMISION", "2.00"))
	if err != nil || comision.LessThanOrEqual(decimal.Zero) {
		comision = decimal.NewFromFloat(2.00)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "jatishop_db"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
			Issuer:    getEnv("JWT_ISSUER", "jatishop-back"),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			Filename:   getEnv("LOG_FILE", ""),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 30),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			Compress:   getEnv("LOG_COMPRESS", "true") == "true",
		},
		Licencias: LicenciasConfig{
			DiasIniciales:  diasIniciales,
			SweepInterval:  time.Duration(sweepSeconds) * time.Second,
			SweepAlIniciar: getEnv("LICENCIA_SWEEP_AL_INICIAR", "true") == "true",
		},
		Referidos: ReferidosConfig{
			Comision: comision,
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
