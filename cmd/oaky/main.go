package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/oaky-desktop/internal/application/usecase"
	"github.com/jhoicas/oaky-desktop/internal/infrastructure/sqlite"
	"github.com/jhoicas/oaky-desktop/internal/interfaces/cli"
	"github.com/jhoicas/oaky-desktop/pkg/config"
	"github.com/jhoicas/oaky-desktop/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	db, err := sqlite.Open(cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("abrir almacén local")
		fmt.Fprintf(os.Stderr, "Error: no se pudo abrir la base de datos: %v\n", err)
		os.Exit(1)
	}
	defer sqlite.Close(db)

	productRepo := sqlite.NewProductRepository(db)
	productUC := usecase.NewProductUseCase(productRepo, cfg.Inventory.LowStockBelow)
	transferUC := usecase.NewImportUseCase(productRepo, log)

	root := cli.NewRootCmd(cli.Deps{
		Products: productUC,
		Transfer: transferUC,
	})
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
