// Package memory adaptador de persistencia en proceso (tests y ejecuciones efímeras).
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	"github.com/jhoicas/carneiro-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo guarda las particiones codificadas en un mapa. Al serializar en Save, los
// snapshots cargados después nunca comparten memoria con el estado del Store.
type SnapshotRepo struct {
	mu    sync.RWMutex
	parts map[string][]byte
}

// NewSnapshotRepository construye el adaptador vacío.
func NewSnapshotRepository() *SnapshotRepo {
	return &SnapshotRepo{}
}

// Load devuelve (nil, nil) si todavía no se guardó nada.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return entity.DecodePartitions(r.parts)
}

// Save reemplaza las cinco particiones.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	parts, err := snap.EncodePartitions()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts = parts
	return nil
}

// Partitions copia de las particiones guardadas.
func (r *SnapshotRepo) Partitions() map[string][]byte {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.parts)
}
