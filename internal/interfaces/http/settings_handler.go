package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
)

// SettingsHandler lectura y actualización del registro único de configuración.
type SettingsHandler struct {
	store *inventory.Store
}

func NewSettingsHandler(store *inventory.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Get godoc
// @Summary      Configuración del negocio
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Settings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.store.Settings())
}

// Update godoc
// @Summary      Actualizar configuración (merge parcial)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Settings
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.store.UpdateSettings(in.ToPatch()))
}
