// Package numbering orquesta el gate de números de documento: consulta los
// rangos configurados, el índice global de números usados y aplica las reglas
// de dominio de internal/domain/numbering.
package numbering

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/numbering"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// Service aplica el gate de envío para registros con número de documento.
//
// Un registro puede persistirse solo si su número está en blanco, O no es
// duplicado Y cae dentro de algún rango activo. El chequeo aquí es
// consultivo; la garantía final contra envíos concurrentes es el UNIQUE del
// índice de números reclamados, aplicado en la misma tx que el insert.
type Service struct {
	rangeRepo repository.DocumentRangeRepository
	docRepo   repository.DocumentNumberRepository
}

// NewService construye el servicio.
func NewService(rangeRepo repository.DocumentRangeRepository, docRepo repository.DocumentNumberRepository) *Service {
	return &Service{rangeRepo: rangeRepo, docRepo: docRepo}
}

// Check valida candidate contra duplicados y rangos. nil si es aceptable.
// El duplicado se reporta independientemente de la validez de rango.
func (s *Service) Check(ctx context.Context, candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return nil
	}
	dup, err := s.docRepo.Exists(ctx, numbering.Normalize(candidate))
	if err != nil {
		return fmt.Errorf("consultar duplicados: %w", err)
	}
	if dup {
		return domain.ErrDuplicateDocument
	}
	ranges, err := s.rangeRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("cargar rangos: %w", err)
	}
	if res := numbering.ValidateDocumentNumber(candidate, ranges); !res.IsValid {
		return fmt.Errorf("%w: %s", domain.ErrDocumentOutOfRange, res.Message)
	}
	return nil
}

// Validate es el chequeo consultivo del formulario: devuelve el detalle
// (duplicado y/o rango con su mensaje) sin reclamar nada.
func (s *Service) Validate(ctx context.Context, candidate string) (*dto.ValidateDocumentResponse, error) {
	out := &dto.ValidateDocumentResponse{}

	if strings.TrimSpace(candidate) == "" {
		out.IsValid = true
		return out, nil
	}

	dup, err := s.docRepo.Exists(ctx, numbering.Normalize(candidate))
	if err != nil {
		return nil, fmt.Errorf("consultar duplicados: %w", err)
	}
	out.IsDuplicate = dup

	ranges, err := s.rangeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar rangos: %w", err)
	}
	res := numbering.ValidateDocumentNumber(candidate, ranges)
	out.IsValid = res.IsValid && !dup
	out.Message = res.Message
	if dup {
		out.Message = "número de documento ya utilizado"
	}
	return out, nil
}
