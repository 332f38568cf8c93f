package config

import (
	"fmt"
	"strings"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr       string `default:"0.0.0.0" env:"APP_HOST"`
		Port             int    `default:"3000"  env:"PORT"`
		LogLevel         string `default:"info" env:"LOG_LEVEL"`
		BodyLimitMB      int    `default:"10" env:"BODY_LIMIT_MB"`
		CorsAllowOrigins string `default:"*" env:"CORS_ALLOW_ORIGINS"`
		ErrNotifyURL     string `default:"" env:"ERR_NOTIFY_URL"`
		SwaggerEnabled   *bool  `default:"false" env:"SWAGGER_ENABLED"`
	}
	Database struct {
		Driver         string `default:"postgres" env:"DB_DRIVER"`
		URL            string `default:"" env:"DATABASE_URL"`
		Host           string `default:"" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"postgres" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"" env:"DB_PASSWORD"`
		SSLMode        string `default:"require" env:"DB_SSL_MODE"`
		MigrateOnStart *bool  `default:"false" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	API struct {
		// список таблиц, доступных через /api/:resource
		Resources string `default:"appointments,employees,shifts" env:"API_RESOURCES"`
	}
	Features struct {
		AIRelay            *bool `default:"true" env:"FEATURE_AI_RELAY"`
		LegacyAppointments *bool `default:"true" env:"FEATURE_APPOINTMENTS"`
		Hello              *bool `default:"true" env:"FEATURE_HELLO"`
	}
	AI struct {
		Provider   string `default:"yandexgpt" env:"AI_PROVIDER"`
		TimeoutSec int    `default:"60" env:"AI_TIMEOUT_SEC"`
		YandexGPT  struct {
			IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
		}
		Ollama struct {
			OllamaURL   string `default:"" env:"OLLAMA_URL"`
			OllamaModel string `default:"" env:"OLLAMA_MODEL"`
		}
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// DatabaseConfigured - задано ли подключение к хранилищу
func (c Configuration) DatabaseConfigured() bool {
	if c.Database.Driver == "sqlite" {
		return c.Database.URL != ""
	}
	return c.Database.URL != "" || c.Database.Host != ""
}

// DatabaseDSN строка подключения, DATABASE_URL имеет приоритет над отдельными параметрами
func (c Configuration) DatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s password=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Name, c.Database.SSLMode, c.Database.Password)
}

func (c Configuration) AllowedResources() []string {
	result := []string{}
	for _, name := range strings.Split(c.API.Resources, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			result = append(result, name)
		}
	}
	return result
}

func IsEnabled(flag *bool) bool {
	return flag != nil && *flag
}
