package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
)

// FinancialGoalHandler maneja metas financieras (protegido).
type FinancialGoalHandler struct {
	uc *usecase.FinancialGoalUseCase
}

// NewFinancialGoalHandler construye el handler.
func NewFinancialGoalHandler(uc *usecase.FinancialGoalUseCase) *FinancialGoalHandler {
	return &FinancialGoalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear metas de un campo/año
// @Tags         financial-goals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFinancialGoalRequest  true  "Metas"
// @Success      201   {object}  dto.FinancialGoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/financial-goals [post]
func (h *FinancialGoalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancialGoalRequest
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
// @Summary      Obtener meta por ID
// @Tags         financial-goals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la meta"
// @Success      200  {object}  dto.FinancialGoalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financial-goals/{id} [get]
func (h *FinancialGoalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "meta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar metas de un año
// @Tags         financial-goals
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año (por defecto el actual)"
// @Success      200   {object}  dto.FinancialGoalListResponse
// @Router       /api/financial-goals [get]
func (h *FinancialGoalHandler) List(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	out, err := h.uc.ListByYear(c.UserContext(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar meta
// @Tags         financial-goals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la meta"
// @Param        body  body  dto.UpdateFinancialGoalRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FinancialGoalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/financial-goals/{id} [put]
func (h *FinancialGoalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFinancialGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "meta no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar meta
// @Tags         financial-goals
// @Security     Bearer
// @Param        id  path  string  true  "ID de la meta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financial-goals/{id} [delete]
func (h *FinancialGoalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
