// Package memory implementa los puertos de persistencia en memoria de proceso.
// Se usa en tests y para levantar la API sin base de datos (DB_DRIVER=memory).
package memory

import (
	"cmp"
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"golang.org/x/text/cases"
)

// Store estado compartido de las bodegas y artículos. Los ids son secuenciales desde 1.
type Store struct {
	mu         sync.RWMutex
	warehouses map[int64]entity.Warehouse
	items      map[int64]entity.InventoryItem
	lastWID    int64
	lastIID    int64
	lastStamp  time.Time
	now        func() time.Time
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un almacén vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{
		warehouses: make(map[int64]entity.Warehouse),
		items:      make(map[int64]entity.InventoryItem),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// stamp devuelve un instante estrictamente creciente para created_at/updated_at.
func (s *Store) stamp() time.Time {
	t := s.now().UTC()
	if !t.After(s.lastStamp) {
		t = s.lastStamp.Add(time.Microsecond)
	}
	s.lastStamp = t
	return t
}

// handle acceso al Store; dentro de una transacción el lock ya lo tiene el TxRunner.
type handle struct {
	s    *Store
	inTx bool
}

func (h handle) read(fn func()) {
	if !h.inTx {
		h.s.mu.RLock()
		defer h.s.mu.RUnlock()
	}
	fn()
}

func (h handle) write(fn func()) {
	if !h.inTx {
		h.s.mu.Lock()
		defer h.s.mu.Unlock()
	}
	fn()
}

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones con el lock de escritura del Store y
// restaura el estado previo si fn devuelve error.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repositorios atados a la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	warehouses repository.WarehouseRepository,
	items repository.InventoryRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	warehouses := maps.Clone(s.warehouses)
	items := maps.Clone(s.items)
	lastWID, lastIID := s.lastWID, s.lastIID

	h := handle{s: s, inTx: true}
	if err := fn(&WarehouseRepo{h: h}, &InventoryRepo{h: h}); err != nil {
		s.warehouses, s.items = warehouses, items
		s.lastWID, s.lastIID = lastWID, lastIID
		return err
	}
	return nil
}

// containsFold compara por subcadena con plegado de mayúsculas Unicode.
func containsFold(needle string, fields ...string) bool {
	fold := cases.Fold()
	n := fold.String(needle)
	for _, f := range fields {
		if strings.Contains(fold.String(f), n) {
			return true
		}
	}
	return false
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

func directed(c int, order repository.SortOrder) int {
	if order == repository.SortDesc {
		return -c
	}
	return c
}

// byIDThen desempata por id ascendente, como el ORDER BY de los adaptadores SQL.
func byIDThen(c int, idA, idB int64) int {
	if c != 0 {
		return c
	}
	return cmp.Compare(idA, idB)
}
