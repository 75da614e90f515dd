package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/numbering"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func rango(name, start, end string, active bool) *entity.DocumentRange {
	return &entity.DocumentRange{
		ID:          "rng-" + name,
		Name:        name,
		StartNumber: start,
		EndNumber:   end,
		IsActive:    active,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateDocumentNumber — despacho numérico vs lexicográfico
// ──────────────────────────────────────────────────────────────────────────────

// Rango con límites numéricos: el candidato numérico compara como entero,
// así que "500" cae dentro de ("001","999") aunque como texto "500" > "1".
func TestValidate_RangoNumerico_CandidatoDentro(t *testing.T) {
	ranges := []*entity.DocumentRange{rango("A", "001", "999", true)}

	res := numbering.ValidateDocumentNumber("500", ranges)
	assert.True(t, res.IsValid, "500 está dentro de 1..999 como entero")
	assert.Contains(t, res.Message, "A", "el mensaje debe nombrar el rango que aceptó")
}

func TestValidate_RangoNumerico_CandidatoFuera(t *testing.T) {
	ranges := []*entity.DocumentRange{rango("A", "001", "999", true)}

	res := numbering.ValidateDocumentNumber("1000", ranges)
	assert.False(t, res.IsValid, "1000 > 999 como entero")
}

// "050" contra un rango numérico compara como 50 (dentro de 1..100).
func TestValidate_CerosALaIzquierda_ComparanComoEntero(t *testing.T) {
	ranges := []*entity.DocumentRange{rango("A", "001", "100", true)}

	res := numbering.ValidateDocumentNumber("050", ranges)
	assert.True(t, res.IsValid, "050 debe compararse como el entero 50")
}

// Rango con un límite no numérico: TODA la comparación cae a texto,
// incluso si el candidato sí parsea como entero.
func TestValidate_RangoMixto_CaeALexicografico(t *testing.T) {
	ranges := []*entity.DocumentRange{rango("NF", "NF-001", "NF-999", true)}

	res := numbering.ValidateDocumentNumber("NF-500", ranges)
	assert.True(t, res.IsValid, "NF-500 está entre NF-001 y NF-999 como texto")

	// La casación importa en el chequeo de rango: "nf-500" es OTRO texto
	// ("n" minúscula > "N" mayúscula en code points) y queda fuera.
	res = numbering.ValidateDocumentNumber("nf-500", ranges)
	assert.False(t, res.IsValid,
		"el chequeo de rango usa el texto tal cual, sin normalizar casación")
}

// Candidato no numérico contra rango numérico: falla el parse de uno de los
// tres operandos, así que la comparación es lexicográfica sobre los crudos.
func TestValidate_CandidatoNoNumerico_ContraRangoNumerico(t *testing.T) {
	// Como texto: "001" <= "0ABC" <= "999" (el '0' inicial ordena dentro).
	ranges := []*entity.DocumentRange{rango("A", "001", "999", true)}

	res := numbering.ValidateDocumentNumber("0ABC", ranges)
	assert.True(t, res.IsValid, "sin parse entero, '0ABC' compara como texto entre '001' y '999'")
}

// Borde afilado documentado: "050" contra un rango mixto compara como texto,
// donde "050" < "1".
func TestValidate_BordeAfilado_050ContraRangoMixto(t *testing.T) {
	ranges := []*entity.DocumentRange{rango("M", "1", "9-Z", true)}

	res := numbering.ValidateDocumentNumber("050", ranges)
	assert.False(t, res.IsValid, `como texto "050" < "1": fuera del rango mixto`)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateDocumentNumber — blanco, fail-open, mensajes
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_CandidatoEnBlanco_SiempreValido(t *testing.T) {
	ranges := []*entity.DocumentRange{rango("A", "001", "100", true)}

	for _, c := range []string{"", "   ", "\t"} {
		res := numbering.ValidateDocumentNumber(c, ranges)
		assert.True(t, res.IsValid, "candidato en blanco siempre es válido (%q)", c)
		assert.Empty(t, res.Message, "sin mensaje para candidato en blanco")
	}
}

func TestValidate_SinRangosActivos_FailOpen(t *testing.T) {
	ranges := []*entity.DocumentRange{
		rango("Inactivo", "001", "100", false),
	}

	res := numbering.ValidateDocumentNumber("CUALQUIER-COSA", ranges)
	assert.True(t, res.IsValid,
		"sin rangos activos todo número no-blanco es válido (fail-open)")
	assert.NotEmpty(t, res.Message, "debe explicar que no hay rangos configurados")

	res = numbering.ValidateDocumentNumber("XYZ", nil)
	assert.True(t, res.IsValid, "sin rangos configurados también aplica el fail-open")
}

func TestValidate_RangosInactivosNoParticipan(t *testing.T) {
	ranges := []*entity.DocumentRange{
		rango("Viejo", "001", "999", false),
		rango("Nuevo", "2000", "2999", true),
	}

	res := numbering.ValidateDocumentNumber("500", ranges)
	assert.False(t, res.IsValid, "500 solo pertenece al rango inactivo")
}

// El mensaje de rechazo enumera TODOS los rangos activos con nombre y límites.
func TestValidate_MensajeEnumeraTodosLosRangosActivos(t *testing.T) {
	ranges := []*entity.DocumentRange{
		rango("Recibos", "001", "100", true),
		rango("Notas", "NF-001", "NF-999", true),
		rango("Viejo", "5000", "6000", false),
	}

	res := numbering.ValidateDocumentNumber("99999", ranges)
	require.False(t, res.IsValid)
	assert.Contains(t, res.Message, "Recibos")
	assert.Contains(t, res.Message, "001")
	assert.Contains(t, res.Message, "100")
	assert.Contains(t, res.Message, "Notas")
	assert.Contains(t, res.Message, "NF-001")
	assert.NotContains(t, res.Message, "Viejo", "los rangos inactivos no se enumeran")
}

// ──────────────────────────────────────────────────────────────────────────────
// IsDuplicate / Normalize
// ──────────────────────────────────────────────────────────────────────────────

func TestIsDuplicate_InsensibleAMayusculasYTrim(t *testing.T) {
	existing := []string{"abc-1"}

	assert.True(t, numbering.IsDuplicate("abc-1", existing))
	assert.True(t, numbering.IsDuplicate("ABC-1", existing))
	assert.True(t, numbering.IsDuplicate("  abc-1  ", existing))
}

func TestIsDuplicate_SinOtraNormalizacion(t *testing.T) {
	existing := []string{"abc-1"}

	// No se quita puntuación: "abc1" NO es duplicado de "abc-1".
	assert.False(t, numbering.IsDuplicate("abc1", existing))
	assert.False(t, numbering.IsDuplicate("abc_1", existing))
}

func TestIsDuplicate_BlancoNuncaDuplica(t *testing.T) {
	assert.False(t, numbering.IsDuplicate("", []string{""}))
	assert.False(t, numbering.IsDuplicate("   ", []string{"   "}))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "abc-1", numbering.Normalize("  ABC-1 "))
	assert.Equal(t, "", numbering.Normalize("   "))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario extremo a extremo del gate de envío
// ──────────────────────────────────────────────────────────────────────────────

// Con el rango A(001..100) activo y "050" ya usado:
//   - reenviar "050" se rechaza por duplicado (independiente del rango);
//   - "150" se rechaza por fuera de rango;
//   - "075" se acepta.
func TestGate_EscenarioCompleto(t *testing.T) {
	ranges := []*entity.DocumentRange{rango("A", "001", "100", true)}
	existing := []string{"050"}

	assert.True(t, numbering.IsDuplicate("050", existing),
		"050 repetido debe detectarse como duplicado")
	assert.True(t, numbering.ValidateDocumentNumber("050", ranges).IsValid,
		"el chequeo de rango de 050 sigue siendo válido: el rechazo es por duplicado")

	assert.False(t, numbering.IsDuplicate("150", existing))
	assert.False(t, numbering.ValidateDocumentNumber("150", ranges).IsValid,
		"150 está fuera del rango A")

	assert.False(t, numbering.IsDuplicate("075", existing))
	assert.True(t, numbering.ValidateDocumentNumber("075", ranges).IsValid,
		"075 debe aceptarse")
}
