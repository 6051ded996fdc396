package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
)

// EmployeeHandler CRUD de funcionarios.
type EmployeeHandler struct {
	store *inventory.Store
}

func NewEmployeeHandler(store *inventory.Store) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

// Create godoc
// @Summary      Dar de alta funcionario
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del funcionario"
// @Success      201   {object}  entity.Employee
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.AddEmployee(in.ToInput()))
}

// List godoc
// @Summary      Listar funcionarios
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	items := h.store.Employees()
	return c.JSON(dto.EmployeeListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener funcionario
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del funcionario"
// @Success      200  {object}  entity.Employee
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	e, ok := h.store.GetEmployee(c.Params("id"))
	if !ok {
		return notFound(c, "funcionario")
	}
	return c.JSON(e)
}

// Update godoc
// @Summary      Actualizar funcionario
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del funcionario"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Employee
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	e, ok := h.store.UpdateEmployee(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "funcionario")
	}
	return c.JSON(e)
}

// Delete godoc
// @Summary      Eliminar funcionario y sus movimientos
// @Tags         employees
// @Security     Bearer
// @Param        id   path  string  true  "ID del funcionario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if !h.store.DeleteEmployee(c.Params("id")) {
		return notFound(c, "funcionario")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
