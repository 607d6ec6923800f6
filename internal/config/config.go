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
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	Webhook               Webhook               `mapstructure:",squash"`
	Reconciliation        Reconciliation        `mapstructure:",squash"`
	DashboardSnapshotSync DashboardSnapshotSync `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Webhook configura o disparo de notificações de vendas futuras e
// oportunidades perdidas (um GET único com query string, sem retry).
type Webhook struct {
	BaseURL string `mapstructure:"webhook_base_url"`
	Enabled bool   `mapstructure:"webhook_enabled"`
}

// Reconciliation controla o guarda de regressão da conta Linda Flooring.
type Reconciliation struct {
	Enabled bool `mapstructure:"reconciliation_enabled"`
}

type DashboardSnapshotSync struct {
	CronSchedule string `mapstructure:"dashboard_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"dashboard_snapshot_sync_enabled"`
	LookbackDays int    `mapstructure:"dashboard_snapshot_sync_lookback_days"`
}

// IsProduction retorna verdadeiro quando a aplicação roda em produção.
// Em produção a reconciliação degrada para aviso; fora dela, falha alto.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/flooring")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("WEBHOOK_BASE_URL", "")
	viper.SetDefault("WEBHOOK_ENABLED", false)

	viper.SetDefault("RECONCILIATION_ENABLED", true)

	// Defaults para a fotografia diária do dashboard
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_LOOKBACK_DAYS", 30)
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
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
