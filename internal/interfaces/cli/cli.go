// Package cli es el pegamento de presentación: traduce eventos del usuario
// (subcomandos y flags) en llamadas a los casos de uso y muestra resultados y
// errores en lenguaje llano. No contiene lógica de negocio.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/oaky-desktop/internal/application/usecase"
)

// Deps dependencias construidas una sola vez al arrancar y pasadas por
// referencia (sin estado global mutable).
type Deps struct {
	Products *usecase.ProductUseCase
	Transfer *usecase.ImportUseCase
}

// NewRootCmd construye el comando raíz con todos los subcomandos.
func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "oaky",
		Short: "Gestor de inventario local para comercio minorista",
		Long: `Oaky administra el inventario de una tienda pequeña sobre un único
archivo local: búsqueda, altas, ediciones, bajas, ajuste masivo de precios,
import/export CSV y estadísticas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSearchCmd(deps),
		newAddCmd(deps),
		newEditCmd(deps),
		newSetCmd(deps),
		newDeleteCmd(deps),
		newPriceCmd(deps),
		newImportCmd(deps),
		newExportCmd(deps),
		newStatsCmd(deps),
	)
	return root
}
