package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
)

// SupplierHandler CRUD de proveedores.
type SupplierHandler struct {
	store *inventory.Store
}

func NewSupplierHandler(store *inventory.Store) *SupplierHandler {
	return &SupplierHandler{store: store}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  entity.Supplier
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.AddSupplier(in.ToInput()))
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	items := h.store.Suppliers()
	return c.JSON(dto.SupplierListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  entity.Supplier
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	s, ok := h.store.GetSupplier(c.Params("id"))
	if !ok {
		return notFound(c, "proveedor")
	}
	return c.JSON(s)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Supplier
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	s, ok := h.store.UpdateSupplier(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "proveedor")
	}
	return c.JSON(s)
}

// Delete godoc
// @Summary      Eliminar proveedor (cascada: productos y sus movimientos)
// @Tags         suppliers
// @Security     Bearer
// @Param        id   path  string  true  "ID del proveedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if !h.store.DeleteSupplier(c.Params("id")) {
		return notFound(c, "proveedor")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
