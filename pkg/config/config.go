package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App       AppConfig
	DB        DBConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig configuración del almacén local (un único archivo SQLite).
type DBConfig struct {
	Path string // ruta al archivo de base de datos
}

// InventoryConfig reglas de negocio parametrizables.
type InventoryConfig struct {
	LowStockBelow int // un producto cuenta como "stock bajo" si stock < este umbral
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// OAKY_DB_PATH, OAKY_LOG_LEVEL, OAKY_LOW_STOCK.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "oaky"),
			LogLevel: getString(v, "OAKY_LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Path: getString(v, "OAKY_DB_PATH", "oaky.db"),
		},
		Inventory: InventoryConfig{
			LowStockBelow: getInt(v, "OAKY_LOW_STOCK", 5),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
