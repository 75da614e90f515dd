package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
)

// PastorHandler maneja el registro de pastores y obreros (protegido).
type PastorHandler struct {
	uc *usecase.PastorUseCase
}

// NewPastorHandler construye el handler.
func NewPastorHandler(uc *usecase.PastorUseCase) *PastorHandler {
	return &PastorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pastor u obrero
// @Tags         pastors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePastorRequest  true  "Datos del pastor"
// @Success      201   {object}  dto.PastorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pastors [post]
func (h *PastorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePastorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pastor por ID
// @Tags         pastors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pastor"
// @Success      200  {object}  dto.PastorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pastors/{id} [get]
func (h *PastorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pastor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pastores
// @Tags         pastors
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PastorListResponse
// @Router       /api/pastors [get]
func (h *PastorHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pastor
// @Tags         pastors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pastor"
// @Param        body  body  dto.UpdatePastorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PastorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pastors/{id} [put]
func (h *PastorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePastorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pastor no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pastor
// @Tags         pastors
// @Security     Bearer
// @Param        id  path  string  true  "ID del pastor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pastors/{id} [delete]
func (h *PastorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
