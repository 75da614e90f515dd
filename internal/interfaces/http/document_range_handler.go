package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	appnumbering "github.com/jhoicas/tesoreria-api/internal/application/numbering"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
)

// DocumentRangeHandler administración de rangos de números de documento.
// Las mutaciones son solo admin; la validación consultiva la usa cualquier
// usuario autenticado desde el formulario.
type DocumentRangeHandler struct {
	uc      *usecase.DocumentRangeUseCase
	numbers *appnumbering.Service
}

// NewDocumentRangeHandler construye el handler.
func NewDocumentRangeHandler(uc *usecase.DocumentRangeUseCase, numbers *appnumbering.Service) *DocumentRangeHandler {
	return &DocumentRangeHandler{uc: uc, numbers: numbers}
}

// Create godoc
// @Summary      Crear rango de documentos (solo admin)
// @Tags         document-ranges
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRangeRequest  true  "Datos del rango"
// @Success      201   {object}  dto.DocumentRangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/document-ranges [post]
func (h *DocumentRangeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRangeRequest
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
// @Summary      Obtener rango por ID
// @Tags         document-ranges
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rango"
// @Success      200  {object}  dto.DocumentRangeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/document-ranges/{id} [get]
func (h *DocumentRangeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rango no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar rangos (activos e inactivos)
// @Tags         document-ranges
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DocumentRangeListResponse
// @Router       /api/document-ranges [get]
func (h *DocumentRangeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar rango (solo admin)
// @Tags         document-ranges
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rango"
// @Param        body  body  dto.UpdateDocumentRangeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DocumentRangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/document-ranges/{id} [put]
func (h *DocumentRangeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentRangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rango no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rango (solo admin)
// @Tags         document-ranges
// @Security     Bearer
// @Param        id  path  string  true  "ID del rango"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/document-ranges/{id} [delete]
func (h *DocumentRangeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate godoc
// @Summary      Validar un número de documento (consultivo)
// @Tags         document-ranges
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateDocumentRequest  true  "Número a validar"
// @Success      200   {object}  dto.ValidateDocumentResponse
// @Router       /api/document-ranges/validate [post]
func (h *DocumentRangeHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.numbers.Validate(c.UserContext(), in.DocumentNumber)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
