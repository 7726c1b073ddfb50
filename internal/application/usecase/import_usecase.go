package usecase

import (
	"io"
	"time"

	"github.com/jhoicas/oaky-desktop/internal/application/dto"
	"github.com/jhoicas/oaky-desktop/internal/domain/entity"
	"github.com/jhoicas/oaky-desktop/internal/domain/repository"
	"github.com/jhoicas/oaky-desktop/internal/infrastructure/csvfile"
	"github.com/jhoicas/oaky-desktop/pkg/logger"
)

// ImportUseCase reconciliación de CSV contra el repositorio (merge por
// barcode) y exportación en orden de almacenamiento.
type ImportUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewImportUseCase construye el caso de uso de import/export.
func NewImportUseCase(repo repository.ProductRepository, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{repo: repo, log: log}
}

// Import procesa todos los registros del CSV, cada uno de forma independiente:
// barcode existente actualiza solo name y price (el stock almacenado no se
// toca, para que un re-import no corrompa existencias); barcode nuevo inserta
// con el stock suministrado. Un registro inválido suma un error a la lista y
// el lote continúa: política de saltar y recolectar, nunca abortar.
func (uc *ImportUseCase) Import(r io.Reader) (*dto.ImportSummary, error) {
	raws, err := csvfile.Read(r)
	if err != nil {
		return nil, err
	}

	summary := &dto.ImportSummary{Total: len(raws), Errors: []string{}}
	for _, raw := range raws {
		rec, err := csvfile.Parse(raw)
		if err != nil {
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}

		existing, err := uc.repo.GetByBarcode(rec.Barcode)
		if err != nil {
			summary.Errors = append(summary.Errors, "error en "+rec.Barcode+": "+err.Error())
			continue
		}

		if existing != nil {
			if err := uc.repo.UpdateNamePrice(rec.Barcode, rec.Name, rec.Price); err != nil {
				summary.Errors = append(summary.Errors, "error en "+rec.Barcode+": "+err.Error())
				continue
			}
			summary.Updated++
			continue
		}

		now := time.Now()
		product := &entity.Product{
			Barcode:   rec.Barcode,
			Name:      rec.Name,
			Price:     rec.Price,
			Stock:     rec.Stock,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(product); err != nil {
			summary.Errors = append(summary.Errors, "error en "+rec.Barcode+": "+err.Error())
			continue
		}
		summary.Imported++
	}

	uc.log.Info().
		Int("imported", summary.Imported).
		Int("updated", summary.Updated).
		Int("rejected", len(summary.Errors)).
		Int("total", summary.Total).
		Msg("importación CSV finalizada")
	return summary, nil
}

// Export emite barcode, name, price y stock de cada producto en orden de
// almacenamiento, sin transformación ni filtrado. Devuelve cuántos emitió.
func (uc *ImportUseCase) Export(w io.Writer) (int, error) {
	products, err := uc.repo.ListAll()
	if err != nil {
		return 0, err
	}
	if err := csvfile.Write(w, products); err != nil {
		return 0, err
	}
	return len(products), nil
}
