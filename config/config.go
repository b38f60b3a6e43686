// Package config carga la configuración de la aplicación desde variables de
// entorno (y un archivo .env si existe).
//
// Las variables usan el prefijo VILLA_ y el primer "_" separa la sección de
// la clave: VILLA_DATABASE_MAX_OPEN_CONNS -> database.max_open_conns.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Carga el .env (si existe) antes de leer las variables
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "VILLA_"

// Config contiene la configuración de la aplicación
type Config struct {
	App      AppConfig      `koanf:"app" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	RabbitMQ RabbitMQConfig `koanf:"rabbitmq"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

type AppConfig struct {
	Env  string `koanf:"env" validate:"required"`
	Name string `koanf:"name" validate:"required"`
}

// ServerConfig agrupa la configuración del servidor HTTP. Los timeouts van en segundos.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contiene los datos de conexión y del pool
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=mysql postgres sqlite"`
	Host            string `koanf:"host" validate:"required_unless=Driver sqlite"`
	Port            int    `koanf:"port" validate:"required_unless=Driver sqlite"`
	User            string `koanf:"user"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required_unless=Driver sqlite"`
	SSLMode         string `koanf:"ssl_mode"`
	Path            string `koanf:"path" validate:"required_if=Driver sqlite"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gte=0"`
	Seed            bool   `koanf:"seed"`
	LogLevel        string `koanf:"log_level" validate:"oneof=silent error warn info"`
}

// RabbitMQConfig: si URL está vacía no se publican eventos
type RabbitMQConfig struct {
	URL   string `koanf:"url"`
	Queue string `koanf:"queue"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"required"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// defaults son los valores que se usan si la variable no está definida
var defaults = map[string]any{
	"app.env":                     "development",
	"app.name":                    "villa-api",
	"server.port":                 "8080",
	"server.read_timeout":         10,
	"server.write_timeout":        10,
	"server.idle_timeout":         60,
	"server.shutdown_timeout":     30,
	"server.cors_allowed_origins": []string{"*"},
	"database.driver":             "mysql",
	"database.host":               "localhost",
	"database.port":               3306,
	"database.user":               "villa_user",
	"database.password":           "villa_password",
	"database.name":               "villas_db",
	"database.ssl_mode":           "disable",
	"database.path":               "villas.db",
	"database.max_open_conns":     25,
	"database.max_idle_conns":     25,
	"database.conn_max_lifetime":  300,
	"database.seed":               true,
	"database.log_level":          "warn",
	"rabbitmq.url":                "",
	"rabbitmq.queue":              "villas_queue",
	"log.level":                   "info",
	"log.format":                  "json",
}

// LoadConfig carga la configuración desde variables de entorno con valores por defecto
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("could not set default %s: %w", key, err)
		}
	}

	err := k.Load(env.ProviderWithValue(envPrefix, ".", envKeyValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// listKeys son las claves que se leen como lista separada por comas
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// envKey convierte VILLA_SERVER_READ_TIMEOUT en server.read_timeout
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// envKeyValue traduce la clave y separa por comas los valores de listKeys
func envKeyValue(k, v string) (string, interface{}) {
	key := envKey(k)
	if !listKeys[key] {
		return key, v
	}

	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}
