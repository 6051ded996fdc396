package inventory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	"github.com/jhoicas/carneiro-api/internal/domain/repository"
)

var errWriterClosed = errors.New("escritor de snapshot cerrado")

// snapshotWriter persiste snapshots en segundo plano con una sola goroutine.
// Los snapshots encolados mientras otro se escribe se fusionan: solo se guarda el último.
type snapshotWriter struct {
	repo    repository.SnapshotRepository
	log     zerolog.Logger
	timeout time.Duration

	pending chan *entity.Snapshot // buffer 1, siempre contiene el más reciente
	flushes chan chan error
	quit    chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	mu        sync.Mutex
	lastErr   error
}

func newSnapshotWriter(repo repository.SnapshotRepository, log zerolog.Logger, timeout time.Duration) *snapshotWriter {
	w := &snapshotWriter{
		repo:    repo,
		log:     log,
		timeout: timeout,
		pending: make(chan *entity.Snapshot, 1),
		flushes: make(chan chan error),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue nunca bloquea: reemplaza el snapshot pendiente si lo hay.
// Se invoca con el lock del Store tomado, por lo que los productores están serializados.
func (w *snapshotWriter) enqueue(snap *entity.Snapshot) {
	for {
		select {
		case w.pending <- snap:
			return
		default:
		}
		select {
		case <-w.pending:
		default:
		}
	}
}

// flush espera a que se persista lo pendiente y devuelve el último error de escritura.
func (w *snapshotWriter) flush(ctx context.Context) error {
	reply := make(chan error, 1)
	select {
	case w.flushes <- reply:
	case <-w.done:
		return errWriterClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close drena lo pendiente y detiene la goroutine.
func (w *snapshotWriter) close(ctx context.Context) error {
	w.closeOnce.Do(func() { close(w.quit) })
	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

func (w *snapshotWriter) run() {
	defer close(w.done)
	for {
		select {
		case snap := <-w.pending:
			w.save(snap)
		case reply := <-w.flushes:
			w.drain()
			w.mu.Lock()
			reply <- w.lastErr
			w.mu.Unlock()
		case <-w.quit:
			w.drain()
			return
		}
	}
}

func (w *snapshotWriter) drain() {
	select {
	case snap := <-w.pending:
		w.save(snap)
	default:
	}
}

func (w *snapshotWriter) save(snap *entity.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	err := w.repo.Save(ctx, snap)
	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()
	if err != nil {
		w.log.Error().Err(err).Msg("no se pudo persistir el snapshot de inventario")
		return
	}
	w.log.Debug().
		Int("products", len(snap.Products)).
		Int("moves", len(snap.Moves)).
		Msg("snapshot persistido")
}
