// Package numbering contiene la lógica de dominio para la numeración de
// documentos: pertenencia de un número candidato a los rangos configurados y
// detección de duplicados entre todos los tipos de registro que llevan número.
package numbering

import (
	"strconv"
	"strings"

	"github.com/jhoicas/tesoreria-api/internal/domain"
)

// BoundsKind discrimina la regla de comparación de un rango.
type BoundsKind int

const (
	// BoundsNumeric ambos límites parsean como enteros base 10.
	BoundsNumeric BoundsKind = iota
	// BoundsLexicographic al menos un límite no es numérico; se compara
	// como texto plano (code point a code point).
	BoundsLexicographic
)

// Bounds son los límites de un rango resueltos una sola vez al cargarlo.
//
// La regla es por comparación, no por rango: un rango numérico ("001".."999")
// compara como entero SOLO si el candidato también parsea; si no, cae a la
// comparación lexicográfica sobre los textos crudos. Un rango con un límite
// no numérico ("NF-001".."NF-999") compara siempre como texto. Los datos ya
// aceptados dependen de este despacho exacto; no unificar el comparador.
type Bounds struct {
	Kind       BoundsKind
	Start, End string // textos crudos, siempre conservados para el fallback
	IntStart   int64  // válidos solo si Kind == BoundsNumeric
	IntEnd     int64
}

// parseOperand intenta parsear un operando como entero base 10.
// Contenido no numérico al inicio ("NF-001") falla el parse completo.
func parseOperand(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// ResolveBounds resuelve los límites de un rango: numéricos si AMBOS parsean
// como enteros, lexicográficos en cualquier otro caso.
func ResolveBounds(start, end string) Bounds {
	is, okS := parseOperand(start)
	ie, okE := parseOperand(end)
	if okS && okE {
		return Bounds{Kind: BoundsNumeric, Start: start, End: end, IntStart: is, IntEnd: ie}
	}
	return Bounds{Kind: BoundsLexicographic, Start: start, End: end}
}

// Contains decide si candidate pertenece al rango.
//
// Comparación entera solo cuando los TRES operandos parsean (límites y
// candidato); si cualquiera falla, comparación de texto sobre los crudos.
// Nota afilada conocida: "050" contra un rango numérico compara como 50;
// el mismo literal contra un rango mixto compara como texto, donde
// "050" < "1".
func (b Bounds) Contains(candidate string) bool {
	if b.Kind == BoundsNumeric {
		if c, ok := parseOperand(candidate); ok {
			return b.IntStart <= c && c <= b.IntEnd
		}
	}
	return b.Start <= candidate && candidate <= b.End
}

// ValidateRangeBounds verifica el invariante de creación/actualización de un
// rango: el inicio debe ordenar estrictamente antes que el fin bajo la regla
// de comparación propia del rango. No se re-verifica en lectura.
func ValidateRangeBounds(start, end string) error {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return domain.ErrInvalidRangeBounds
	}
	b := ResolveBounds(start, end)
	if b.Kind == BoundsNumeric {
		if b.IntStart >= b.IntEnd {
			return domain.ErrInvalidRangeBounds
		}
		return nil
	}
	if start >= end {
		return domain.ErrInvalidRangeBounds
	}
	return nil
}
