package inventory

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/carneiro-api/internal/domain"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// Reset reemplaza todo el estado por el dataset semilla.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceLocked(SeedData(s.now()))
	s.persistLocked()
	s.log.Info().Msg("inventario restablecido al dataset semilla")
}

// Export serializa el estado completo más la marca exportedAt.
func (s *Store) Export() ([]byte, error) {
	doc := s.ExportDocument()
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("exportar inventario: %w", err)
	}
	return data, nil
}

// ExportDocument copia del estado actual en forma de documento de exportación.
func (s *Store) ExportDocument() entity.ExportDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.ExportDocument{
		Products:   slices.Clone(s.products),
		Suppliers:  slices.Clone(s.suppliers),
		Employees:  slices.Clone(s.employees),
		Moves:      slices.Clone(s.moves),
		Settings:   s.settings,
		ExportedAt: s.now(),
	}
}

// Import reemplaza atómicamente el estado con un documento exportado. Solo se aplica si las
// cinco claves (products, suppliers, employees, moves, settings) están presentes, el documento
// se decodifica por completo, ningún stock es negativo y los IDs de cada colección son únicos y
// no vacíos; en cualquier otro caso el estado queda intacto y se devuelve un error que envuelve
// domain.ErrInvalidSnapshot. Los vencimientos se normalizan a la fecha civil escrita.
func (s *Store) Import(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	for _, key := range entity.Partitions {
		v, ok := raw[key]
		if !ok || string(v) == "null" {
			return fmt.Errorf("%w: falta el campo %q", domain.ErrInvalidSnapshot, key)
		}
	}

	var doc entity.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if err := checkDocument(&doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(entity.Snapshot{
		Products:  doc.Products,
		Suppliers: doc.Suppliers,
		Employees: doc.Employees,
		Moves:     doc.Moves,
		Settings:  doc.Settings,
	})
	s.persistLocked()
	s.log.Info().
		Int("products", len(s.products)).
		Int("moves", len(s.moves)).
		Msg("inventario importado")
	return nil
}

// checkDocument valida los invariantes del Store sobre un documento importado.
func checkDocument(doc *entity.ExportDocument) error {
	for i, p := range doc.Products {
		if p.Stock.IsNegative() {
			return fmt.Errorf("producto %q con stock negativo (%s)", p.ID, p.Stock)
		}
		if p.ExpiryDate != nil {
			y, m, d := p.ExpiryDate.Date()
			civil := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			doc.Products[i].ExpiryDate = &civil
		}
	}
	if err := uniqueIDs("products", doc.Products, func(p entity.Product) string { return p.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("suppliers", doc.Suppliers, func(x entity.Supplier) string { return x.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("employees", doc.Employees, func(e entity.Employee) string { return e.ID }); err != nil {
		return err
	}
	return uniqueIDs("moves", doc.Moves, func(m entity.StockMove) string { return m.ID })
}

func uniqueIDs[T any](partition string, list []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		key := id(v)
		if key == "" {
			return fmt.Errorf("%s: elemento sin id", partition)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s: id duplicado %q", partition, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
