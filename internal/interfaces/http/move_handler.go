package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// MoveHandler registro y consulta del log de movimientos de stock.
type MoveHandler struct {
	store *inventory.Store
}

// NewMoveHandler construye el handler.
func NewMoveHandler(store *inventory.Store) *MoveHandler {
	return &MoveHandler{store: store}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica la cantidad al stock del producto (las salidas nunca dejan stock negativo).
// @Description  El funcionario debe existir, estar activo y tener permiso de ajuste de stock.
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMoveRequest  true  "Movimiento"
// @Success      201   {object}  entity.StockMove
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/moves [post]
func (h *MoveHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}

	move, err := h.store.RegisterMove(in.ToInput())
	if err != nil {
		return respondError(c, moveRejection(err))
	}
	return c.Status(fiber.StatusCreated).JSON(move)
}

// moveRejection traduce los motivos de RegisterMove a errores de formulario.
func moveRejection(err error) error {
	var verrs dto.ValidationErrors
	if errors.Is(err, inventory.ErrMoveUnknownProduct) {
		verrs = append(verrs, dto.ValidationError{Field: "productId", Message: inventory.ErrMoveUnknownProduct.Error()})
	}
	for _, reason := range []error{inventory.ErrMoveUnknownEmployee, inventory.ErrMoveInactiveEmployee, inventory.ErrMoveNotAllowed} {
		if errors.Is(err, reason) {
			verrs = append(verrs, dto.ValidationError{Field: "employeeId", Message: reason.Error()})
		}
	}
	if len(verrs) == 0 {
		return err
	}
	return verrs
}

// List godoc
// @Summary      Listar movimientos
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        type         query  string  false  "in | out"
// @Param        employee_id  query  string  false  "Filtrar por funcionario"
// @Success      200  {object}  dto.MoveListResponse
// @Router       /api/moves [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	items := h.store.Moves(moveFilter(c))
	return c.JSON(dto.MoveListResponse{Items: items, Total: len(items)})
}

// ExportCSV godoc
// @Summary      Exportar movimientos en CSV (;)
// @Tags         moves
// @Security     Bearer
// @Produce      text/csv
// @Param        encoding     query  string  false  "latin1 para ISO-8859-1"
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        type         query  string  false  "in | out"
// @Param        employee_id  query  string  false  "Filtrar por funcionario"
// @Success      200
// @Router       /api/moves/export.csv [get]
func (h *MoveHandler) ExportCSV(c *fiber.Ctx) error {
	products := make(map[string]string)
	for _, p := range h.store.Products() {
		products[p.ID] = p.Name
	}
	employees := make(map[string]string)
	for _, e := range h.store.Employees() {
		employees[e.ID] = e.Name
	}
	loc := h.store.Settings().Location()

	moves := h.store.Moves(moveFilter(c))
	rows := make([][]string, 0, len(moves))
	for _, m := range moves {
		rows = append(rows, []string{
			m.ID, m.Date.In(loc).Format(time.DateTime), string(m.Type), string(m.Reason),
			m.ProductID, products[m.ProductID], m.Quantity.String(),
			decimalOrEmpty(m.UnitCost), decimalOrEmpty(m.UnitPrice),
			employees[m.EmployeeID], m.Notes,
		})
	}
	header := []string{"id", "data", "tipo", "motivo", "produto_id", "produto", "quantidade",
		"custo_unitario", "preco_unitario", "funcionario", "observacoes"}
	return sendCSV(c, "movimentacoes.csv", header, rows)
}

func moveFilter(c *fiber.Ctx) inventory.MoveFilter {
	return inventory.MoveFilter{
		ProductID:  c.Query("product_id"),
		Type:       entity.Direction(c.Query("type")),
		EmployeeID: c.Query("employee_id"),
	}
}
