package repository

import (
	"context"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia del estado completo del inventario (DIP).
// El Store lee una vez al arrancar y escribe el snapshot completo después de cada mutación.
type SnapshotRepository interface {
	// Load devuelve el snapshot de la sesión anterior, o (nil, nil) si no existe.
	Load(ctx context.Context) (*entity.Snapshot, error)
	// Save reemplaza el estado persistido por el snapshot dado (las cinco particiones).
	Save(ctx context.Context, snapshot *entity.Snapshot) error
}
