package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appnumbering "github.com/jhoicas/tesoreria-api/internal/application/numbering"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tesoreria-api/internal/interfaces/http"
)

// fakeRangeRepo repositorio de rangos en memoria.
type fakeRangeRepo struct {
	ranges []*entity.DocumentRange
}

func (f *fakeRangeRepo) Create(context.Context, *entity.DocumentRange) error { return nil }
func (f *fakeRangeRepo) GetByID(context.Context, string) (*entity.DocumentRange, error) {
	return nil, nil
}
func (f *fakeRangeRepo) ListAll(context.Context) ([]*entity.DocumentRange, error) {
	return f.ranges, nil
}
func (f *fakeRangeRepo) Update(context.Context, *entity.DocumentRange) error { return nil }
func (f *fakeRangeRepo) Delete(context.Context, string) error                { return nil }

// fakeDocRepo índice de números usados en memoria (llaves ya normalizadas).
type fakeDocRepo struct {
	used map[string]bool
}

func (f *fakeDocRepo) Exists(_ context.Context, normalized string) (bool, error) {
	return f.used[normalized], nil
}

func (f *fakeDocRepo) Claim(_ context.Context, normalized, _, _ string) error {
	if f.used[normalized] {
		return domain.ErrDuplicateDocument
	}
	f.used[normalized] = true
	return nil
}

func (f *fakeDocRepo) Release(context.Context, string, string) error { return nil }

func buildValidateApp(ranges []*entity.DocumentRange, used ...string) *fiber.App {
	docRepo := &fakeDocRepo{used: map[string]bool{}}
	for _, u := range used {
		docRepo.used[u] = true
	}
	svc := appnumbering.NewService(&fakeRangeRepo{ranges: ranges}, docRepo)
	handler := apphttp.NewDocumentRangeHandler(nil, svc)

	app := fiber.New()
	app.Post("/api/document-ranges/validate", handler.Validate)
	return app
}

func postValidate(t *testing.T, app *fiber.App, docNumber string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/document-ranges/validate",
		strings.NewReader(`{"document_number":"`+docNumber+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func activeRange(name, start, end string) *entity.DocumentRange {
	return &entity.DocumentRange{ID: name, Name: name, StartNumber: start, EndNumber: end, IsActive: true}
}

func TestValidateEndpoint_DentroDeRango(t *testing.T) {
	app := buildValidateApp([]*entity.DocumentRange{activeRange("Recibos 2026", "001", "999")})

	body := postValidate(t, app, "075")
	assert.Equal(t, true, body["is_valid"])
	assert.Equal(t, false, body["is_duplicate"])
}

func TestValidateEndpoint_FueraDeRango(t *testing.T) {
	app := buildValidateApp([]*entity.DocumentRange{activeRange("Recibos 2026", "001", "100")})

	body := postValidate(t, app, "150")
	assert.Equal(t, false, body["is_valid"])
	assert.Contains(t, body["message"], "Recibos 2026",
		"el mensaje debe enumerar los rangos activos")
}

func TestValidateEndpoint_Duplicado(t *testing.T) {
	app := buildValidateApp([]*entity.DocumentRange{activeRange("Recibos 2026", "001", "999")}, "050")

	body := postValidate(t, app, " 050 ")
	assert.Equal(t, false, body["is_valid"], "duplicado con espacios debe detectarse")
	assert.Equal(t, true, body["is_duplicate"])
}

func TestValidateEndpoint_SinRangosConfigurados(t *testing.T) {
	app := buildValidateApp(nil)

	body := postValidate(t, app, "XYZ-999")
	assert.Equal(t, true, body["is_valid"], "sin rangos configurados todo número es válido")
}

func TestValidateEndpoint_NumeroEnBlanco(t *testing.T) {
	app := buildValidateApp([]*entity.DocumentRange{activeRange("Recibos 2026", "001", "100")}, "050")

	body := postValidate(t, app, "")
	assert.Equal(t, true, body["is_valid"], "número en blanco siempre es válido")
	assert.Equal(t, false, body["is_duplicate"])
}
