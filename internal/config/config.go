package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Drivers de storage suportados. A escolha é feita uma única vez na inicialização.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageSupabase = "supabase"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Storage        Storage        `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Supabase       Supabase       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	SessionCleanup SessionCleanup `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host      string `mapstructure:"host"`
	Port      string `mapstructure:"port"`
	APIPrefix string `mapstructure:"api_prefix"`
}

type Storage struct {
	Driver string `mapstructure:"storage_driver"`
}

type Database struct {
	DSN      string `mapstructure:"database_dsn"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`
}

type Supabase struct {
	URL            string        `mapstructure:"supabase_url"`
	ServiceRoleKey string        `mapstructure:"supabase_service_role_key"`
	Timeout        time.Duration `mapstructure:"supabase_timeout"`
}

type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	SessionTTL   time.Duration `mapstructure:"auth_session_ttl"`
	CookieName   string        `mapstructure:"auth_cookie_name"`
	CookieSecure bool          `mapstructure:"auth_cookie_secure"`
}

type SessionCleanup struct {
	CronSchedule string `mapstructure:"session_cleanup_cron"`
	Enabled      bool   `mapstructure:"session_cleanup_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("API_PREFIX", "/api")

	viper.SetDefault("STORAGE_DRIVER", StorageMemory)

	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	viper.SetDefault("SUPABASE_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_SESSION_TTL", "24h")
	viper.SetDefault("AUTH_COOKIE_NAME", "dashboard_session")
	viper.SetDefault("AUTH_COOKIE_SECURE", false)

	viper.SetDefault("SESSION_CLEANUP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa valores derivados e valida combinações de configuração
func (c *Config) normalize() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	switch c.Storage.Driver {
	case StorageMemory, StorageSupabase:
	case StoragePostgres:
		if c.Database.DSN == "" {
			c.Database.DSN = fmt.Sprintf(
				"%s://%s:%s@%s",
				c.Database.Driver,
				c.Database.User,
				c.Database.Password,
				c.Database.URL,
			)
		}
	case StorageSQLite:
		if c.Database.DSN == "" {
			c.Database.DSN = "file:dashboard.db?_pragma=foreign_keys(1)&_time_format=sqlite"
		}
	default:
		return fmt.Errorf("config: driver de storage desconhecido: %q", c.Storage.Driver)
	}

	if c.Storage.Driver == StorageSupabase && (c.Supabase.URL == "" || c.Supabase.ServiceRoleKey == "") {
		return fmt.Errorf("config: SUPABASE_URL e SUPABASE_SERVICE_ROLE_KEY são obrigatórios para o driver supabase")
	}

	if c.Server.APIPrefix != "" && !strings.HasPrefix(c.Server.APIPrefix, "/") {
		c.Server.APIPrefix = "/" + c.Server.APIPrefix
	}
	c.Server.APIPrefix = strings.TrimSuffix(c.Server.APIPrefix, "/")

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
