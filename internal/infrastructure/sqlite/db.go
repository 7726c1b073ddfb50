package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/oaky-desktop/pkg/config"
)

// Open abre (o crea) la base de datos local y garantiza el esquema.
// La conexión se abre una sola vez al arrancar y vive lo que el proceso;
// no hay pool: un solo escritor, un solo lector.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent), // el logging lo hace pkg/logger
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos %q: %w", cfg.Path, err)
	}

	// Esquema idempotente: crea tabla e índices solo si no existen.
	if err := db.AutoMigrate(&productRecord{}); err != nil {
		return nil, fmt.Errorf("crear esquema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// Close cierra la conexión subyacente al terminar el proceso.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
