package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// PrebendaHandler maneja las peticiones HTTP para prebendas (protegido).
type PrebendaHandler struct {
	uc *usecase.PrebendaUseCase
}

// NewPrebendaHandler construye el handler.
func NewPrebendaHandler(uc *usecase.PrebendaUseCase) *PrebendaHandler {
	return &PrebendaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear prebenda o auxilio
// @Tags         prebendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrebendaRequest  true  "Datos de la prebenda"
// @Success      201   {object}  dto.PrebendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/prebendas [post]
func (h *PrebendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrebendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener prebenda por ID
// @Tags         prebendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la prebenda"
// @Success      200  {object}  dto.PrebendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prebendas/{id} [get]
func (h *PrebendaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prebenda no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar prebendas
// @Tags         prebendas
// @Security     Bearer
// @Produce      json
// @Param        year         query  int     false  "Año"
// @Param        month        query  int     false  "Mes (1-12, requiere year)"
// @Param        pastor_name  query  string  false  "Nombre del pastor"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200          {object}  dto.PrebendaListResponse
// @Router       /api/prebendas [get]
func (h *PrebendaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	f := repository.PrebendaFilter{
		Year:       c.QueryInt("year", 0),
		Month:      c.QueryInt("month", 0),
		PastorName: c.Query("pastor_name"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar prebenda
// @Tags         prebendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la prebenda"
// @Param        body  body  dto.UpdatePrebendaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PrebendaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/prebendas/{id} [put]
func (h *PrebendaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePrebendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prebenda no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar prebenda
// @Tags         prebendas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la prebenda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prebendas/{id} [delete]
func (h *PrebendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
