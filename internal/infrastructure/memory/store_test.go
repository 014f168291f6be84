package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/jhoicas/instock-api/internal/infrastructure/memory"
)

func seed(t *testing.T, s *memory.Store) (*entity.Warehouse, *entity.Warehouse) {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewWarehouseRepository(s)
	a := &entity.Warehouse{Name: "Manhattan", City: "New York"}
	b := &entity.Warehouse{Name: "Brooklyn", City: "New York"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	return a, b
}

func TestWarehouseRepo_CreateAsignaIDsSecuenciales(t *testing.T) {
	s := memory.NewStore()
	a, b := seed(t, s)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.True(t, b.CreatedAt.After(a.CreatedAt), "los timestamps son estrictamente crecientes")
}

func TestWarehouseRepo_UpdateConservaCreatedAt(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := memory.NewStore(memory.WithClock(func() time.Time { return fixed }))
	a, _ := seed(t, s)
	repo := memory.NewWarehouseRepository(s)

	upd := &entity.Warehouse{ID: a.ID, Name: "Manhattan 2"}
	require.NoError(t, repo.Update(context.Background(), upd))

	got, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Manhattan 2", got.Name)
	assert.Equal(t, a.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(a.UpdatedAt), "updated_at avanza aunque el reloj no cambie")
}

func TestWarehouseRepo_UpdateYDeleteInexistente(t *testing.T) {
	repo := memory.NewWarehouseRepository(memory.NewStore())
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, &entity.Warehouse{ID: 42, Name: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 42), domain.ErrNotFound)
}

func TestWarehouseRepo_ListBusquedaYOrden(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	repo := memory.NewWarehouseRepository(s)
	ctx := context.Background()

	list, err := repo.List(ctx, repository.ListOptions{Search: "BROOK"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Brooklyn", list[0].Name)

	list, err = repo.List(ctx, repository.ListOptions{Search: "new york"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, repository.ListOptions{Sort: &repository.Sort{Column: "warehouse_name", Order: repository.SortAsc}})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Brooklyn", list[0].Name)
	assert.Equal(t, "Manhattan", list[1].Name)

	list, err = repo.List(ctx, repository.ListOptions{Sort: &repository.Sort{Column: "id", Order: repository.SortDesc}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list[0].ID)

	_, err = repo.List(ctx, repository.ListOptions{Sort: &repository.Sort{Column: "secret", Order: repository.SortAsc}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestInventoryRepo_CreateValidaBodegaYUneNombre(t *testing.T) {
	s := memory.NewStore()
	a, _ := seed(t, s)
	repo := memory.NewInventoryRepository(s)
	ctx := context.Background()

	item := &entity.InventoryItem{WarehouseID: a.ID, ItemName: "Television", Description: "d",
		Category: "Electronics", Status: "In Stock", Quantity: decimal.NewFromInt(500)}
	require.NoError(t, repo.Create(ctx, item))
	assert.Equal(t, int64(1), item.ID)

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Manhattan", got.WarehouseName)

	err = repo.Create(ctx, &entity.InventoryItem{WarehouseID: 99, ItemName: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryRepo_BusquedaPorCantidadYBodega(t *testing.T) {
	s := memory.NewStore()
	a, b := seed(t, s)
	repo := memory.NewInventoryRepository(s)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.InventoryItem{WarehouseID: a.ID, ItemName: "Gym Bag",
		Category: "Gear", Status: "In Stock", Quantity: decimal.NewFromInt(250)}))
	require.NoError(t, repo.Create(ctx, &entity.InventoryItem{WarehouseID: b.ID, ItemName: "Tent",
		Category: "Gear", Status: "Out of Stock", Quantity: decimal.Zero}))

	list, err := repo.List(ctx, repository.ListOptions{Search: "25"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Gym Bag", list[0].ItemName)

	list, err = repo.List(ctx, repository.ListOptions{Search: "brooklyn"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tent", list[0].ItemName)

	list, err = repo.List(ctx, repository.ListOptions{Search: "gear"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, repository.ListOptions{Sort: &repository.Sort{Column: "quantity", Order: repository.SortAsc}})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tent", list[0].ItemName)
}

func TestTxRunner_RollbackAlFallar(t *testing.T) {
	s := memory.NewStore()
	a, _ := seed(t, s)
	items := memory.NewInventoryRepository(s)
	ctx := context.Background()
	require.NoError(t, items.Create(ctx, &entity.InventoryItem{WarehouseID: a.ID, ItemName: "Chair", Quantity: decimal.NewFromInt(1)}))

	boom := errors.New("boom")
	err := memory.NewTxRunner(s).Run(ctx, func(wr repository.WarehouseRepository, ir repository.InventoryRepository) error {
		n, err := ir.DeleteByWarehouse(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		require.NoError(t, wr.Delete(ctx, a.ID))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	w, err := memory.NewWarehouseRepository(s).GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.NotNil(t, w, "la bodega vuelve tras el rollback")
	list, err := items.ListByWarehouse(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1, "los artículos vuelven tras el rollback")
}

func TestTxRunner_CommitAlTerminar(t *testing.T) {
	s := memory.NewStore()
	a, _ := seed(t, s)
	ctx := context.Background()

	err := memory.NewTxRunner(s).Run(ctx, func(wr repository.WarehouseRepository, _ repository.InventoryRepository) error {
		return wr.Delete(ctx, a.ID)
	})
	require.NoError(t, err)

	exists, err := memory.NewWarehouseRepository(s).Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
