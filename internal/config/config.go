package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Metrics     Metrics     `mapstructure:",squash"`
	MetricsWarm MetricsWarm `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                    string `mapstructure:"-"`
	Driver                 string `mapstructure:"database_driver"`
	Password               string `mapstructure:"database_password"`
	URL                    string `mapstructure:"database_url"`
	User                   string `mapstructure:"database_user"`
	MaxOpenConns           int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns           int    `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"database_conn_max_lifetime_minutes"`
}

// Metrics controla o cache de métricas de vendas e o retry das agregações
type Metrics struct {
	CacheTTLSeconds  int `mapstructure:"metrics_cache_ttl_seconds"`
	RetryDelayMillis int `mapstructure:"metrics_retry_delay_millis"`
}

// MetricsWarm controla o agendador que pré-aquece o cache de métricas
type MetricsWarm struct {
	CronSchedule string `mapstructure:"metrics_warm_cron"`
	Enabled      bool   `mapstructure:"metrics_warm_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/neopdv")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 15) // reciclar conexões a cada 15 minutos

	// TTL curto: suficiente para absorver o polling do dashboard sem
	// servir números velhos
	viper.SetDefault("METRICS_CACHE_TTL_SECONDS", 15)
	viper.SetDefault("METRICS_RETRY_DELAY_MILLIS", 200)

	viper.SetDefault("METRICS_WARM_CRON", "*/5 * * * *")
	viper.SetDefault("METRICS_WARM_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
