package config

import (
	"fmt"
	"reflect"
	"strings"

	"dex-viewer/core/catalog"
	"dex-viewer/core/database"
	"dex-viewer/core/logger"
	"dex-viewer/core/server"
	"dex-viewer/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, one section per concern.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage the datasets are published to.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the relational mirror.
	Database database.Config `mapstructure:"database"`
	// Catalog holds configuration for dataset loading.
	Catalog catalog.Config `mapstructure:"catalog"`
}

// LoadConfig loads configuration from environment variables and the .env
// file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values the application cannot start with.
func (c *Config) Validate() error {
	if !c.Catalog.IsValidMode() {
		return fmt.Errorf("catalog.mode: unsupported value %q", c.Catalog.Mode)
	}
	if !c.Catalog.IsValidSource() {
		return fmt.Errorf("catalog.source: unsupported value %q", c.Catalog.Source)
	}
	if c.Catalog.Mode == catalog.ModeNetwork && c.Catalog.Origin == "" && c.Server.BaseURL == "" {
		return fmt.Errorf("catalog.mode: network mode needs catalog.origin or server.base_url")
	}
	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverSQLite:
	default:
		return fmt.Errorf("database.driver: unsupported value %q", c.Database.Driver)
	}
	return nil
}

// bindValues walks the struct and registers every 'mapstructure' key in
// Viper with the value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Empty defaults are registered too, otherwise AutomaticEnv never sees the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
