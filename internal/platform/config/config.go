package config

import (
	"time"

	"github.com/spf13/viper"
)

// Driver identifica el adaptador de almacenamiento a usar.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config reúne los knobs de la capa de datos. Todo tiene default razonable:
// una app embebida debe poder arrancar sin ningún env seteado.
type Config struct {
	StorageDriver Driver `mapstructure:"STORAGE_DRIVER"`
	StoragePath   string `mapstructure:"STORAGE_PATH"`
	PostgresDSN   string `mapstructure:"POSTGRES_DSN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	AutoSaveEnabled    bool `mapstructure:"AUTOSAVE_ENABLED"`
	AutoSaveDebounceMS int  `mapstructure:"AUTOSAVE_DEBOUNCE_MS"`
}

func (c Config) AutoSaveDebounce() time.Duration {
	return time.Duration(c.AutoSaveDebounceMS) * time.Millisecond
}

// New carga config env-first; si no hay envs, intenta un .env local.
// Nunca falla por archivo ausente: los defaults bastan.
func New() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("STORAGE_DRIVER", string(DriverSQLite))
	v.SetDefault("STORAGE_PATH", "petcare.db")
	v.SetDefault("POSTGRES_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("AUTOSAVE_ENABLED", true)
	v.SetDefault("AUTOSAVE_DEBOUNCE_MS", 1000)

	envVars := []string{
		"STORAGE_DRIVER", "STORAGE_PATH", "POSTGRES_DSN",
		"LOG_LEVEL", "LOG_FORMAT",
		"AUTOSAVE_ENABLED", "AUTOSAVE_DEBOUNCE_MS",
	}
	for _, env := range envVars {
		_ = v.BindEnv(env)
	}

	if !v.IsSet("STORAGE_DRIVER") {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		// best-effort: sin .env seguimos con defaults
		_ = v.ReadInConfig()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
