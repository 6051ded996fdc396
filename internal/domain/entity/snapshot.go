package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/carneiro-api/internal/domain"
)

// Particiones del snapshot tal como las guarda el colaborador de persistencia.
const (
	PartitionProducts  = "products"
	PartitionSuppliers = "suppliers"
	PartitionEmployees = "employees"
	PartitionMoves     = "moves"
	PartitionSettings  = "settings"
)

// Partitions orden canónico de las cinco particiones.
var Partitions = []string{PartitionProducts, PartitionSuppliers, PartitionEmployees, PartitionMoves, PartitionSettings}

// Snapshot estado completo del inventario en un instante (persistencia, exportación e importación).
type Snapshot struct {
	Products  []Product   `json:"products"`
	Suppliers []Supplier  `json:"suppliers"`
	Employees []Employee  `json:"employees"`
	Moves     []StockMove `json:"moves"`
	Settings  Settings    `json:"settings"`
}

// ExportDocument documento transportable producido por Export. ExportedAt no forma parte del estado.
type ExportDocument struct {
	Products   []Product   `json:"products"`
	Suppliers  []Supplier  `json:"suppliers"`
	Employees  []Employee  `json:"employees"`
	Moves      []StockMove `json:"moves"`
	Settings   Settings    `json:"settings"`
	ExportedAt time.Time   `json:"exportedAt"`
}

// EncodePartitions serializa cada partición en JSON, con la clave de partición como índice.
func (s Snapshot) EncodePartitions() (map[string][]byte, error) {
	values := map[string]any{
		PartitionProducts:  nonNilSlice(s.Products),
		PartitionSuppliers: nonNilSlice(s.Suppliers),
		PartitionEmployees: nonNilSlice(s.Employees),
		PartitionMoves:     nonNilSlice(s.Moves),
		PartitionSettings:  s.Settings,
	}
	out := make(map[string][]byte, len(values))
	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("codificar partición %s: %w", key, err)
		}
		out[key] = data
	}
	return out, nil
}

// DecodePartitions reconstruye un Snapshot a partir de sus cinco particiones.
// Sin particiones devuelve (nil, nil): no hay sesión previa. Un conjunto incompleto es un error.
func DecodePartitions(parts map[string][]byte) (*Snapshot, error) {
	if len(parts) == 0 {
		return nil, nil
	}
	targets := map[string]any{}
	var snap Snapshot
	targets[PartitionProducts] = &snap.Products
	targets[PartitionSuppliers] = &snap.Suppliers
	targets[PartitionEmployees] = &snap.Employees
	targets[PartitionMoves] = &snap.Moves
	targets[PartitionSettings] = &snap.Settings

	for _, key := range Partitions {
		data, ok := parts[key]
		if !ok {
			return nil, fmt.Errorf("%w: falta la partición %s", domain.ErrInvalidSnapshot, key)
		}
		if err := json.Unmarshal(data, targets[key]); err != nil {
			return nil, fmt.Errorf("%w: partición %s: %v", domain.ErrInvalidSnapshot, key, err)
		}
	}
	return &snap, nil
}

func nonNilSlice[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
