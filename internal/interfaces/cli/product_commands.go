package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/oaky-desktop/internal/application/dto"
	"github.com/jhoicas/oaky-desktop/internal/domain"
)

func newSearchCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "search [término]",
		Short: "Busca productos por código de barras o nombre",
		Long: `Busca productos cuyo código de barras contenga el término (sensible a
mayúsculas) o cuyo nombre lo contenga (insensible). Sin término lista todos
los productos, ordenados por nombre.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			items, err := deps.Products.Search(term)
			if err != nil {
				return userError(err)
			}
			printProducts(cmd.OutOrStdout(), items)
			return nil
		},
	}
}

func newAddCmd(deps Deps) *cobra.Command {
	var (
		barcode  string
		name     string
		priceStr string
		stock    int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crea un producto nuevo",
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseDecimal(priceStr, "precio")
			if err != nil {
				return userError(err)
			}
			if err := validateProductInput(barcode, name, price, stock); err != nil {
				return userError(err)
			}
			out, err := deps.Products.Create(dto.CreateProductRequest{
				Barcode: barcode,
				Name:    name,
				Price:   price,
				Stock:   stock,
			})
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Producto creado exitosamente (id %d)\n", out.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&barcode, "barcode", "", "código de barras (requerido)")
	cmd.Flags().StringVar(&name, "name", "", "nombre del producto (requerido)")
	cmd.Flags().StringVar(&priceStr, "price", "", "precio de venta, mayor que cero (requerido)")
	cmd.Flags().IntVar(&stock, "stock", 0, "unidades en existencia")
	return cmd
}

func newEditCmd(deps Deps) *cobra.Command {
	var (
		barcode  string
		name     string
		priceStr string
		stock    int
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Actualiza un producto por ID (permite reescribir el barcode)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return userError(fmt.Errorf("%w: id inválido: %q", domain.ErrInvalidInput, args[0]))
			}
			price, err := parseDecimal(priceStr, "precio")
			if err != nil {
				return userError(err)
			}
			if err := validateProductInput(barcode, name, price, stock); err != nil {
				return userError(err)
			}
			if _, err := deps.Products.UpdateByID(id, dto.UpdateByIDRequest{
				Barcode: barcode,
				Name:    name,
				Price:   price,
				Stock:   stock,
			}); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Producto actualizado exitosamente")
			return nil
		},
	}
	cmd.Flags().StringVar(&barcode, "barcode", "", "código de barras (requerido)")
	cmd.Flags().StringVar(&name, "name", "", "nombre del producto (requerido)")
	cmd.Flags().StringVar(&priceStr, "price", "", "precio de venta, mayor que cero (requerido)")
	cmd.Flags().IntVar(&stock, "stock", 0, "unidades en existencia")
	return cmd
}

func newSetCmd(deps Deps) *cobra.Command {
	var (
		name     string
		priceStr string
		stock    int
	)
	cmd := &cobra.Command{
		Use:   "set <barcode>",
		Short: "Actualiza un producto por barcode (el barcode no cambia)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			barcode := args[0]
			price, err := parseDecimal(priceStr, "precio")
			if err != nil {
				return userError(err)
			}
			if err := validateProductInput(barcode, name, price, stock); err != nil {
				return userError(err)
			}
			if _, err := deps.Products.UpdateByBarcode(barcode, dto.UpdateByBarcodeRequest{
				Name:  name,
				Price: price,
				Stock: stock,
			}); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Producto actualizado exitosamente")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nombre del producto (requerido)")
	cmd.Flags().StringVar(&priceStr, "price", "", "precio de venta, mayor que cero (requerido)")
	cmd.Flags().IntVar(&stock, "stock", 0, "unidades en existencia")
	return cmd
}

func newDeleteCmd(deps Deps) *cobra.Command {
	var byBarcode bool
	cmd := &cobra.Command{
		Use:   "delete <id|barcode>",
		Short: "Elimina un producto por ID, o por barcode con --barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if byBarcode {
				if err := deps.Products.DeleteByBarcode(args[0]); err != nil {
					return userError(err)
				}
			} else {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return userError(fmt.Errorf("%w: id inválido: %q (use --barcode para eliminar por código)", domain.ErrInvalidInput, args[0]))
				}
				if err := deps.Products.DeleteByID(id); err != nil {
					return userError(err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Producto eliminado exitosamente")
			return nil
		},
	}
	cmd.Flags().BoolVar(&byBarcode, "barcode", false, "interpretar el argumento como código de barras")
	return cmd
}

func newPriceCmd(deps Deps) *cobra.Command {
	var ids []int64
	cmd := &cobra.Command{
		Use:   "price <porcentaje>",
		Short: "Ajuste masivo de precios por porcentaje",
		Long: `Aplica precio = ROUND(precio * (1 + porcentaje/100), 2) en una sola
sentencia. Con --id limita el ajuste a esos productos; sin --id afecta a
todos. El porcentaje puede ser negativo (rebaja).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			percentage, err := parseDecimal(args[0], "porcentaje")
			if err != nil {
				return userError(err)
			}
			if percentage.IsZero() {
				return userError(fmt.Errorf("%w: el porcentaje no puede ser cero", domain.ErrInvalidInput))
			}
			affected, err := deps.Products.BulkUpdatePrice(percentage, ids)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d producto(s) actualizado(s)\n", affected)
			return nil
		},
	}
	cmd.Flags().Int64SliceVar(&ids, "id", nil, "IDs de productos a ajustar (repetible); sin --id se ajustan todos")
	return cmd
}

func newStatsCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Estadísticas del inventario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := deps.Products.Stats()
			if err != nil {
				return userError(err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Productos:        %d\n", out.TotalProducts)
			fmt.Fprintf(w, "Valor inventario: %s\n", out.TotalValue.StringFixed(2))
			fmt.Fprintf(w, "Unidades:         %d\n", out.TotalStock)
			fmt.Fprintf(w, "Stock bajo (<%d):  %d\n", out.LowStockBelow, out.LowStock)
			return nil
		},
	}
}
