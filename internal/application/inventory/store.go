// Package inventory contiene el Store de inventario: fuente única de verdad de productos,
// proveedores, funcionarios, movimientos de stock y configuración del bar.
//
// Cada operación pública es atómica para el llamador (sync.RWMutex) y reemplaza las colecciones
// copy-on-write, de modo que los snapshots entregados al escritor de persistencia nunca se
// modifican después. La persistencia es asíncrona: ninguna operación espera a que termine.
package inventory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	"github.com/jhoicas/carneiro-api/internal/domain/repository"
)

const (
	defaultSaveTimeout  = 5 * time.Second
	defaultAlertTimeout = 3 * time.Second
)

// Store mantiene el estado completo del inventario en memoria.
type Store struct {
	mu        sync.RWMutex
	products  []entity.Product
	suppliers []entity.Supplier
	employees []entity.Employee
	moves     []entity.StockMove
	settings  entity.Settings

	writer      *snapshotWriter
	alerts      AlertPublisher
	inflight    sync.WaitGroup // alertas en publicación
	log         zerolog.Logger
	now         func() time.Time
	newID       func() string
	saveTimeout time.Duration
}

// Option configura el Store en Open.
type Option func(*Store)

// WithClock reemplaza el reloj (tests de vencimiento y timestamps).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = func() time.Time { return now().UTC() } }
}

// WithLogger inyecta el logger estructurado.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithAlertPublisher inyecta el publicador de alertas de stock bajo.
func WithAlertPublisher(p AlertPublisher) Option {
	return func(s *Store) {
		if p != nil {
			s.alerts = p
		}
	}
}

// WithSaveTimeout límite de cada escritura del snapshot.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}

// WithIDGenerator reemplaza el generador de IDs (por defecto UUIDv4).
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Open construye el Store restaurando la sesión anterior desde repo.
// Si no hay snapshot previo se carga el dataset semilla y se persiste.
// repo nil deja el Store sin persistencia (estado efímero).
func Open(ctx context.Context, repo repository.SnapshotRepository, opts ...Option) (*Store, error) {
	s := &Store{
		alerts:      NoopAlertPublisher{},
		log:         zerolog.Nop(),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return uuid.New().String() },
		saveTimeout: defaultSaveTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	var snap *entity.Snapshot
	if repo != nil {
		loaded, err := repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("cargar snapshot: %w", err)
		}
		snap = loaded
	}

	seeded := snap == nil
	if seeded {
		seed := SeedData(s.now())
		snap = &seed
	}
	s.replaceLocked(*snap)

	if repo != nil {
		s.writer = newSnapshotWriter(repo, s.log, s.saveTimeout)
		if seeded {
			s.persistLocked()
		}
	}
	s.log.Info().
		Bool("seeded", seeded).
		Int("products", len(s.products)).
		Int("moves", len(s.moves)).
		Msg("store de inventario listo")
	return s, nil
}

// Flush espera a que el último snapshot encolado quede persistido.
func (s *Store) Flush(ctx context.Context) error {
	if s.writer == nil {
		return nil
	}
	return s.writer.flush(ctx)
}

// Close espera las alertas en curso, persiste el snapshot pendiente y detiene el escritor.
// Tras Close el publicador de alertas puede cerrarse sin perder envíos.
func (s *Store) Close(ctx context.Context) error {
	if err := s.waitAlerts(ctx); err != nil {
		return err
	}
	if s.writer == nil {
		return nil
	}
	return s.writer.close(ctx)
}

func (s *Store) waitAlerts(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("esperar alertas pendientes: %w", ctx.Err())
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// AddProduct agrega un producto con ID nuevo y timestamps actuales. No valida: la entrada
// llega validada desde la capa de formularios.
func (s *Store) AddProduct(in ProductInput) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := entity.Product{
		ID:         s.uniqueID(func(id string) bool { return s.productIndex(id) >= 0 }),
		Name:       in.Name,
		SKU:        in.SKU,
		EAN:        in.EAN,
		Category:   in.Category,
		SupplierID: in.SupplierID,
		Unit:       in.Unit,
		Volume:     in.Volume,
		ABV:        in.ABV,
		Cost:       in.Cost,
		Price:      in.Price,
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		MaxStock:   in.MaxStock,
		Location:   in.Location,
		ExpiryDate: in.ExpiryDate,
		ImageURL:   in.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.products = append(slices.Clip(s.products), p)
	s.persistLocked()
	return p
}

// UpdateProduct mezcla los campos no nil del patch; los flags Clear* vacían los opcionales. Devuelve false si el producto no existe
// (no-op, sin error).
func (s *Store) UpdateProduct(id string, patch ProductPatch) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return entity.Product{}, false
	}
	p := s.products[idx]
	setIf(&p.Name, patch.Name)
	setIf(&p.SKU, patch.SKU)
	setIf(&p.EAN, patch.EAN)
	setIf(&p.Category, patch.Category)
	setIf(&p.SupplierID, patch.SupplierID)
	setIf(&p.Unit, patch.Unit)
	setIf(&p.Volume, patch.Volume)
	setIf(&p.ABV, patch.ABV)
	setIf(&p.Cost, patch.Cost)
	setIf(&p.Price, patch.Price)
	setIf(&p.Stock, patch.Stock)
	setIf(&p.MinStock, patch.MinStock)
	setIf(&p.Location, patch.Location)
	setIf(&p.ImageURL, patch.ImageURL)
	if patch.MaxStock != nil {
		v := *patch.MaxStock
		p.MaxStock = &v
	}
	if patch.ExpiryDate != nil {
		v := *patch.ExpiryDate
		p.ExpiryDate = &v
	}
	if patch.ClearMaxStock {
		p.MaxStock = nil
	}
	if patch.ClearExpiryDate {
		p.ExpiryDate = nil
	}
	if p.Stock.IsNegative() {
		p.Stock = decimal.Zero
	}
	p.UpdatedAt = s.now()

	s.products = replaceAt(s.products, idx, p)
	s.persistLocked()
	return p, true
}

// DeleteProduct elimina el producto y todos los movimientos que lo referencian.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return false
	}
	s.products = slices.Delete(slices.Clone(s.products), idx, idx+1)
	s.moves = filterMoves(s.moves, func(m entity.StockMove) bool { return m.ProductID != id })
	s.persistLocked()
	return true
}

// GetProduct búsqueda puntual; false si no existe.
func (s *Store) GetProduct(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.productIndex(id)
	if idx < 0 {
		return entity.Product{}, false
	}
	return s.products[idx], true
}

// Products devuelve el catálogo en orden de inserción.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// AddSupplier agrega un proveedor con ID nuevo y timestamps actuales.
func (s *Store) AddSupplier(in SupplierInput) entity.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sup := entity.Supplier{
		ID:           s.uniqueID(func(id string) bool { return s.supplierIndex(id) >= 0 }),
		Name:         in.Name,
		CNPJ:         in.CNPJ,
		CPF:          in.CPF,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PaymentTerms: in.PaymentTerms,
		LeadTimeDays: in.LeadTimeDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.suppliers = append(slices.Clip(s.suppliers), sup)
	s.persistLocked()
	return sup
}

// UpdateSupplier mezcla los campos no nil del patch; false si no existe.
func (s *Store) UpdateSupplier(id string, patch SupplierPatch) (entity.Supplier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.supplierIndex(id)
	if idx < 0 {
		return entity.Supplier{}, false
	}
	sup := s.suppliers[idx]
	setIf(&sup.Name, patch.Name)
	setIf(&sup.CNPJ, patch.CNPJ)
	setIf(&sup.CPF, patch.CPF)
	setIf(&sup.Email, patch.Email)
	setIf(&sup.Phone, patch.Phone)
	setIf(&sup.Address, patch.Address)
	setIf(&sup.PaymentTerms, patch.PaymentTerms)
	if patch.LeadTimeDays != nil {
		v := *patch.LeadTimeDays
		sup.LeadTimeDays = &v
	}
	sup.UpdatedAt = s.now()

	s.suppliers = replaceAt(s.suppliers, idx, sup)
	s.persistLocked()
	return sup, true
}

// DeleteSupplier elimina el proveedor, sus productos y, transitivamente, todos los movimientos
// de esos productos. El conjunto de movimientos huérfanos se calcula después de decidir qué
// productos se eliminan, en una sola pasada.
func (s *Store) DeleteSupplier(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.supplierIndex(id)
	if idx < 0 {
		return false
	}
	removed := make(map[string]struct{})
	kept := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.SupplierID == id {
			removed[p.ID] = struct{}{}
			continue
		}
		kept = append(kept, p)
	}

	s.suppliers = slices.Delete(slices.Clone(s.suppliers), idx, idx+1)
	s.products = kept
	s.moves = filterMoves(s.moves, func(m entity.StockMove) bool {
		_, orphan := removed[m.ProductID]
		return !orphan
	})
	s.persistLocked()
	return true
}

// GetSupplier búsqueda puntual; false si no existe.
func (s *Store) GetSupplier(id string) (entity.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.supplierIndex(id)
	if idx < 0 {
		return entity.Supplier{}, false
	}
	return s.suppliers[idx], true
}

// Suppliers devuelve los proveedores en orden de inserción.
func (s *Store) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.suppliers)
}

// ── Funcionarios ──────────────────────────────────────────────────────────────

// AddEmployee agrega un funcionario con ID nuevo y timestamps actuales.
func (s *Store) AddEmployee(in EmployeeInput) entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := entity.Employee{
		ID:             s.uniqueID(func(id string) bool { return s.employeeIndex(id) >= 0 }),
		Name:           in.Name,
		CPF:            in.CPF,
		Phone:          in.Phone,
		Email:          in.Email,
		Role:           in.Role,
		AdmissionDate:  in.AdmissionDate,
		Notes:          in.Notes,
		Shift:          in.Shift,
		BaseSalary:     in.BaseSalary,
		CanAdjustStock: in.CanAdjustStock,
		Active:         in.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.employees = append(slices.Clip(s.employees), e)
	s.persistLocked()
	return e
}

// UpdateEmployee mezcla los campos no nil del patch; false si no existe.
func (s *Store) UpdateEmployee(id string, patch EmployeePatch) (entity.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return entity.Employee{}, false
	}
	e := s.employees[idx]
	setIf(&e.Name, patch.Name)
	setIf(&e.CPF, patch.CPF)
	setIf(&e.Phone, patch.Phone)
	setIf(&e.Email, patch.Email)
	setIf(&e.Role, patch.Role)
	setIf(&e.AdmissionDate, patch.AdmissionDate)
	setIf(&e.Notes, patch.Notes)
	setIf(&e.Shift, patch.Shift)
	setIf(&e.CanAdjustStock, patch.CanAdjustStock)
	setIf(&e.Active, patch.Active)
	if patch.BaseSalary != nil {
		v := *patch.BaseSalary
		e.BaseSalary = &v
	}
	if patch.ClearBaseSalary {
		e.BaseSalary = nil
	}
	e.UpdatedAt = s.now()

	s.employees = replaceAt(s.employees, idx, e)
	s.persistLocked()
	return e, true
}

// DeleteEmployee elimina el funcionario y todos los movimientos registrados a su nombre.
func (s *Store) DeleteEmployee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return false
	}
	s.employees = slices.Delete(slices.Clone(s.employees), idx, idx+1)
	s.moves = filterMoves(s.moves, func(m entity.StockMove) bool { return m.EmployeeID != id })
	s.persistLocked()
	return true
}

// GetEmployee búsqueda puntual; false si no existe.
func (s *Store) GetEmployee(id string) (entity.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.employeeIndex(id)
	if idx < 0 {
		return entity.Employee{}, false
	}
	return s.employees[idx], true
}

// Employees devuelve los funcionarios en orden de inserción.
func (s *Store) Employees() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.employees)
}

// ── Configuración ─────────────────────────────────────────────────────────────

// Settings devuelve el registro de configuración.
func (s *Store) Settings() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings mezcla los campos no nil y refresca UpdatedAt.
func (s *Store) UpdateSettings(patch SettingsPatch) entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.settings
	setIf(&st.BrandName, patch.BrandName)
	setIf(&st.LogoURL, patch.LogoURL)
	setIf(&st.Theme, patch.Theme)
	setIf(&st.PrimaryColor, patch.PrimaryColor)
	setIf(&st.AlertDays, patch.AlertDays)
	setIf(&st.Currency, patch.Currency)
	setIf(&st.Timezone, patch.Timezone)
	st.UpdatedAt = s.now()

	s.settings = st
	s.persistLocked()
	return st
}

// ── helpers ───────────────────────────────────────────────────────────────────

// uniqueID genera IDs hasta encontrar uno libre en la colección.
func (s *Store) uniqueID(taken func(string) bool) string {
	for {
		id := s.newID()
		if id != "" && !taken(id) {
			return id
		}
	}
}

func (s *Store) productIndex(id string) int {
	return slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == id })
}

func (s *Store) supplierIndex(id string) int {
	return slices.IndexFunc(s.suppliers, func(x entity.Supplier) bool { return x.ID == id })
}

func (s *Store) employeeIndex(id string) int {
	return slices.IndexFunc(s.employees, func(e entity.Employee) bool { return e.ID == id })
}

// snapshotLocked comparte las colecciones actuales; es seguro porque nunca se mutan en sitio.
func (s *Store) snapshotLocked() *entity.Snapshot {
	return &entity.Snapshot{
		Products:  s.products,
		Suppliers: s.suppliers,
		Employees: s.employees,
		Moves:     s.moves,
		Settings:  s.settings,
	}
}

// replaceLocked reemplaza el estado completo (reset, import, carga inicial).
func (s *Store) replaceLocked(snap entity.Snapshot) {
	s.products = nonNil(snap.Products)
	s.suppliers = nonNil(snap.Suppliers)
	s.employees = nonNil(snap.Employees)
	s.moves = nonNil(snap.Moves)
	s.settings = snap.Settings
}

func (s *Store) persistLocked() {
	if s.writer == nil {
		return
	}
	s.writer.enqueue(s.snapshotLocked())
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func replaceAt[T any](list []T, idx int, v T) []T {
	next := slices.Clone(list)
	next[idx] = v
	return next
}

func filterMoves(moves []entity.StockMove, keep func(entity.StockMove) bool) []entity.StockMove {
	out := make([]entity.StockMove, 0, len(moves))
	for _, m := range moves {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
