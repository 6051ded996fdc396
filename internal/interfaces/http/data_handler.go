package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
)

// DataHandler export/import del documento completo y restablecimiento al dataset semilla.
// Solo rol admin.
type DataHandler struct {
	store *inventory.Store
}

func NewDataHandler(store *inventory.Store) *DataHandler {
	return &DataHandler{store: store}
}

// Export godoc
// @Summary      Exportar todo el estado (JSON)
// @Tags         data
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.ExportDocument
// @Router       /api/data/export [get]
func (h *DataHandler) Export(c *fiber.Ctx) error {
	doc := h.store.ExportDocument()
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="carneiro-%s.json"`, doc.ExportedAt.Format("20060102-150405")))
	return c.JSON(doc)
}

// Import godoc
// @Summary      Importar estado completo
// @Description  Reemplaza todo el estado. El documento debe incluir products, suppliers,
// @Description  employees, moves y settings; si falta alguno no se modifica nada.
// @Tags         data
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/data/import [post]
func (h *DataHandler) Import(c *fiber.Ctx) error {
	if err := h.store.Import(c.Body()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset godoc
// @Summary      Restablecer dataset semilla
// @Tags         data
// @Security     Bearer
// @Success      204
// @Router       /api/data/reset [post]
func (h *DataHandler) Reset(c *fiber.Ctx) error {
	h.store.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}
