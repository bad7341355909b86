package config

import (
	"flag"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type DBType string

const (
	DBTypePostgres DBType = "postgres"
	DBTypeSQLite   DBType = "sqlite"
	DBTypeInMemory DBType = "inMemory"
)

type Config struct {
	// Порт на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL
	BaseURL *url.URL `env:"BASE_URL"`
	// Строка подключения к postgres. Если задана, выбирается postgres хранилище.
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу sqlite базы
	SQLiteDBPath string `env:"SQLITE_DB_PATH"`
	// Тип хранилища
	DBType DBType `env:"DB" envDefault:"inMemory"`
	// Ключ подписи JWT. В лог конфигурация попадает без него.
	JWTSecret string `env:"JWT_SECRET" json:"-"`
	// Время жизни JWT
	JWTExpire time.Duration `env:"JWT_EXPIRE" envDefault:"24h"`
}

func LoadConfig() (*Config, error) {
	// .env нужен только для локальной разработки, в остальных окружениях его нет.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	loadsFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)

	if conf.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return conf, nil
}

// MustLoadConfig вызывает панику если конфигурацию загрузить не удалось.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// loadsFlags парсит флаги командной строки.
func loadsFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Строка подключения к postgres")
	flag.StringVar(&flagsConfig.SQLiteDBPath, "f", "", "Путь к файлу sqlite базы")

	bDesc := "Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запущенного сервера)"
	flag.Func("b", bDesc, func(rawURL string) error {
		parsedURL, err := url.ParseRequestURI(rawURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}

		// создаем новый инстанс, отсекая тем самым Path и Query если они заданы в базовом урле.
		flagsConfig.BaseURL = &url.URL{
			Scheme: parsedURL.Scheme,
			Host:   parsedURL.Host,
		}
		return nil
	})

	flag.Parse()
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress: defaultIfBlank[string](envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:       defaultIfBlank[*url.URL](envConfig.BaseURL, flagsConfig.BaseURL),
		DatabaseDSN:   defaultIfBlank[string](envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLiteDBPath:  defaultIfBlank[string](envConfig.SQLiteDBPath, flagsConfig.SQLiteDBPath),
		DBType:        defaultIfBlank[DBType](envConfig.DBType, flagsConfig.DBType),
		JWTSecret:     envConfig.JWTSecret,
		JWTExpire:     envConfig.JWTExpire,
	}
}

func defaultIfBlank[T any](value T, defaultValue T) T {
	if v, ok := any(value).(string); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(DBType); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(*url.URL); ok && v == nil {
		return defaultValue
	}
	return value
}
