package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
)

// RegistrationHandler maneja inscripciones a eventos (protegido).
type RegistrationHandler struct {
	uc        *usecase.RegistrationUseCase
	paymentUC *usecase.PaymentUseCase
}

// NewRegistrationHandler construye el handler.
func NewRegistrationHandler(uc *usecase.RegistrationUseCase, paymentUC *usecase.PaymentUseCase) *RegistrationHandler {
	return &RegistrationHandler{uc: uc, paymentUC: paymentUC}
}

// Create godoc
// @Summary      Crear inscripción
// @Tags         registrations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRegistrationRequest  true  "Datos de la inscripción"
// @Success      201   {object}  dto.RegistrationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registrations [post]
func (h *RegistrationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRegistrationRequest
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
// @Summary      Obtener inscripción por ID
// @Tags         registrations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la inscripción"
// @Success      200  {object}  dto.RegistrationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registrations/{id} [get]
func (h *RegistrationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inscripción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar inscripciones
// @Tags         registrations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.RegistrationListResponse
// @Router       /api/registrations [get]
func (h *RegistrationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar inscripción
// @Tags         registrations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la inscripción"
// @Param        body  body  dto.UpdateRegistrationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RegistrationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/registrations/{id} [put]
func (h *RegistrationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRegistrationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inscripción no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar inscripción
// @Tags         registrations
// @Security     Bearer
// @Param        id  path  string  true  "ID de la inscripción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registrations/{id} [delete]
func (h *RegistrationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPayments godoc
// @Summary      Listar pagos de una inscripción
// @Tags         registrations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la inscripción"
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/registrations/{id}/payments [get]
func (h *RegistrationHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.paymentUC.ListByRegistration(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
