package numbering

import (
	"fmt"
	"strings"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// Result es la decisión de validación con su razón legible para el operador.
type Result struct {
	IsValid bool
	Message string
}

// ValidateDocumentNumber decide si candidate es aceptable frente al conjunto
// completo de rangos configurados (activos e inactivos).
//
// Reglas, en orden:
//  1. Candidato en blanco (tras trim) -> válido. El número de documento es
//     opcional por registro.
//  2. Sin rangos activos -> válido (fail-open deliberado: un administrador
//     que aún no configuró rangos no debe quedar bloqueado).
//  3. Pertenencia al primer rango activo que contenga el candidato.
//  4. Sin coincidencia -> inválido, enumerando todos los rangos activos con
//     nombre y límites para orientar al operador.
func ValidateDocumentNumber(candidate string, ranges []*entity.DocumentRange) Result {
	if strings.TrimSpace(candidate) == "" {
		return Result{IsValid: true, Message: ""}
	}

	var active []*entity.DocumentRange
	for _, r := range ranges {
		if r != nil && r.IsActive {
			active = append(active, r)
		}
	}
	if len(active) == 0 {
		return Result{IsValid: true, Message: "no hay rangos configurados: se acepta cualquier número"}
	}

	for _, r := range active {
		if ResolveBounds(r.StartNumber, r.EndNumber).Contains(candidate) {
			return Result{IsValid: true, Message: "válido, dentro del rango: " + r.Name}
		}
	}

	names := make([]string, 0, len(active))
	for _, r := range active {
		names = append(names, fmt.Sprintf("%s (%s a %s)", r.Name, r.StartNumber, r.EndNumber))
	}
	return Result{
		IsValid: false,
		Message: "fuera de los rangos permitidos. Rangos activos: " + strings.Join(names, ", "),
	}
}

// Normalize aplica la única normalización usada en la detección de
// duplicados: trim + minúsculas. Sin ninguna otra transformación (no se
// quita puntuación). La validación de rango, en cambio, usa el texto tal
// cual fue escrito.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsDuplicate indica si candidate ya fue usado por algún registro con número
// de documento, de CUALQUIER tipo de entidad (unicidad global). Comparación
// insensible a mayúsculas y a espacios en los extremos.
func IsDuplicate(candidate string, existing []string) bool {
	norm := Normalize(candidate)
	if norm == "" {
		return false
	}
	for _, e := range existing {
		if Normalize(e) == norm {
			return true
		}
	}
	return false
}
