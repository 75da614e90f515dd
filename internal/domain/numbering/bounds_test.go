package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/numbering"
)

func TestResolveBounds_AmbosNumericos(t *testing.T) {
	b := numbering.ResolveBounds("001", "999")

	assert.Equal(t, numbering.BoundsNumeric, b.Kind)
	assert.Equal(t, int64(1), b.IntStart)
	assert.Equal(t, int64(999), b.IntEnd)
	// Los crudos se conservan para el fallback lexicográfico.
	assert.Equal(t, "001", b.Start)
	assert.Equal(t, "999", b.End)
}

func TestResolveBounds_UnLimiteNoNumerico(t *testing.T) {
	casos := []struct{ start, end string }{
		{"NF-001", "NF-999"},
		{"001", "NF-999"},
		{"NF-001", "999"},
	}
	for _, c := range casos {
		b := numbering.ResolveBounds(c.start, c.end)
		assert.Equal(t, numbering.BoundsLexicographic, b.Kind,
			"(%q,%q) debe resolverse lexicográfico", c.start, c.end)
	}
}

func TestContains_TablaDeCasos(t *testing.T) {
	casos := []struct {
		nombre     string
		start, end string
		candidato  string
		dentro     bool
	}{
		{"numérico dentro", "001", "999", "500", true},
		{"numérico límite inferior", "001", "999", "1", true},
		{"numérico límite superior", "001", "999", "999", true},
		{"numérico fuera por arriba", "001", "999", "1000", false},
		{"numérico fuera por abajo", "010", "999", "9", false},
		{"numérico con ceros a la izquierda", "001", "100", "050", true},
		{"lexicográfico dentro", "NF-001", "NF-999", "NF-500", true},
		{"lexicográfico casación distinta", "NF-001", "NF-999", "nf-500", false},
		{"lexicográfico fuera", "NF-001", "NF-999", "NG-001", false},
		{"candidato no numérico en rango numérico cae a texto", "001", "999", "0ABC", true},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			b := numbering.ResolveBounds(c.start, c.end)
			assert.Equal(t, c.dentro, b.Contains(c.candidato))
		})
	}
}

func TestValidateRangeBounds(t *testing.T) {
	assert.NoError(t, numbering.ValidateRangeBounds("001", "999"))
	assert.NoError(t, numbering.ValidateRangeBounds("NF-001", "NF-999"))

	// Estrictamente menor: iguales también fallan.
	assert.ErrorIs(t, numbering.ValidateRangeBounds("999", "001"), domain.ErrInvalidRangeBounds)
	assert.ErrorIs(t, numbering.ValidateRangeBounds("500", "500"), domain.ErrInvalidRangeBounds)
	assert.ErrorIs(t, numbering.ValidateRangeBounds("NF-9", "NF-1"), domain.ErrInvalidRangeBounds)
	assert.ErrorIs(t, numbering.ValidateRangeBounds("", "999"), domain.ErrInvalidRangeBounds)
	assert.ErrorIs(t, numbering.ValidateRangeBounds("001", "  "), domain.ErrInvalidRangeBounds)

	// El invariante usa la regla propia del rango: "9" < "10" como entero,
	// aunque como texto "9" > "10".
	assert.NoError(t, numbering.ValidateRangeBounds("9", "10"))
}
