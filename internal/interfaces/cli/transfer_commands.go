package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "import <archivo.csv>",
		Short: "Importa productos desde un CSV (merge por barcode)",
		Long: `Reconcilia el CSV contra el inventario: un barcode existente actualiza
solo nombre y precio (el stock almacenado no se toca); un barcode nuevo se
inserta con el stock del archivo. Los registros inválidos se saltan y se
reportan al final; el lote nunca se aborta.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return userError(fmt.Errorf("no se pudo abrir %s: %w", args[0], err))
			}
			defer f.Close()

			summary, err := deps.Transfer.Import(f)
			if err != nil {
				return userError(err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Importados: %d  Actualizados: %d  Total: %d\n",
				summary.Imported, summary.Updated, summary.Total)
			if len(summary.Errors) > 0 {
				fmt.Fprintf(w, "Registros rechazados (%d):\n", len(summary.Errors))
				for _, msg := range summary.Errors {
					fmt.Fprintf(w, "  - %s\n", msg)
				}
			}
			return nil
		},
	}
}

func newExportCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "export <archivo.csv>",
		Short: "Exporta todos los productos a un CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return userError(fmt.Errorf("no se pudo crear %s: %w", args[0], err))
			}

			count, err := deps.Transfer.Export(f)
			if err != nil {
				f.Close()
				return userError(err)
			}
			if err := f.Close(); err != nil {
				return userError(fmt.Errorf("cerrar %s: %w", args[0], err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d producto(s) exportado(s) a %s\n", count, args[0])
			return nil
		},
	}
}
