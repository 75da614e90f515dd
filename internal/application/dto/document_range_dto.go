package dto

import "time"

// CreateDocumentRangeRequest entrada para crear un rango (solo admin).
// Los límites son texto opaco; el invariante inicio < fin se valida con la
// regla de comparación propia del rango.
type CreateDocumentRangeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	StartNumber string `json:"start_number" validate:"required"`
	EndNumber   string `json:"end_number" validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"` // por defecto true
}

// UpdateDocumentRangeRequest actualización parcial (incluye activar/desactivar).
type UpdateDocumentRangeRequest struct {
	Name        *string `json:"name"`
	StartNumber *string `json:"start_number"`
	EndNumber   *string `json:"end_number"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// DocumentRangeResponse salida de un rango.
type DocumentRangeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StartNumber string    `json:"start_number"`
	EndNumber   string    `json:"end_number"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentRangeListResponse lista completa de rangos.
type DocumentRangeListResponse struct {
	Items []DocumentRangeResponse `json:"items"`
}

// ValidateDocumentRequest consulta consultiva del formulario: ¿este número
// sería aceptado ahora mismo?
type ValidateDocumentRequest struct {
	DocumentNumber string `json:"document_number"`
}

// ValidateDocumentResponse resultado del chequeo consultivo. El gate real se
// re-aplica en el submit; esto solo orienta al operador mientras escribe.
type ValidateDocumentResponse struct {
	IsValid     bool   `json:"is_valid"`
	IsDuplicate bool   `json:"is_duplicate"`
	Message     string `json:"message"`
}
