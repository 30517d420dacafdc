package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Import            Import            `mapstructure:",squash"`
	Retailers         Retailers         `mapstructure:",squash"`
	WeeklySummarySync WeeklySummarySync `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type App struct {
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

type Import struct {
	BatchSize      int   `mapstructure:"import_batch_size"`
	MaxUploadBytes int64 `mapstructure:"import_max_upload_bytes"`
	PreviewRows    int   `mapstructure:"import_preview_rows"`
}

// Retailers é o vocabulário de bandeiras conhecidas usado na inferência da
// bandeira de uma loja nova. A ordem da lista importa: a primeira bandeira
// cujo nome aparecer no nome da loja vence.
type Retailers struct {
	Names        []string `mapstructure:"-"`
	NamesRaw     string   `mapstructure:"retailer_names"`
	DefaultLabel string   `mapstructure:"retailer_default_label"`
}

type WeeklySummarySync struct {
	CronSchedule string `mapstructure:"weekly_summary_sync_cron"`
	Enabled      bool   `mapstructure:"weekly_summary_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/velocity")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("IMPORT_BATCH_SIZE", 200)                // Tamanho do lote de upsert
	viper.SetDefault("IMPORT_MAX_UPLOAD_BYTES", 20*1024*1024) // 20 MiB por arquivo
	viper.SetDefault("IMPORT_PREVIEW_ROWS", 5)

	// Vocabulário de bandeiras, em ordem de precedência de inferência
	viper.SetDefault("RETAILER_NAMES", "Whole Foods,Sprouts,Natural Grocers,Wegmans,HEB,Publix,Kroger")
	viper.SetDefault("RETAILER_DEFAULT_LABEL", "Whole Foods")

	viper.SetDefault("WEEKLY_SUMMARY_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("WEEKLY_SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	config.Retailers.Names = splitRetailerNames(config.Retailers.NamesRaw)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// splitRetailerNames separa a lista configurada preservando a ordem
func splitRetailerNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
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
