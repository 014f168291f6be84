package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/jhoicas/instock-api/internal/infrastructure/memory"
	"github.com/jhoicas/instock-api/internal/infrastructure/mysql"
	"github.com/jhoicas/instock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/instock-api/pkg/config"
)

// storage agrupa los adaptadores elegidos según DB_DRIVER.
type storage struct {
	warehouses repository.WarehouseRepository
	items      repository.InventoryRepository
	tx         usecase.TxRunner
	close      func()
}

func openStorage(ctx context.Context, cfg config.DBConfig) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &storage{
			warehouses: postgres.NewWarehouseRepository(pool),
			items:      postgres.NewInventoryRepository(pool),
			tx:         postgres.NewTxRunner(pool),
			close:      pool.Close,
		}, nil
	case config.DriverMySQL:
		db, err := mysql.Open(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a MySQL: %w", err)
		}
		return &storage{
			warehouses: mysql.NewWarehouseRepository(db),
			items:      mysql.NewInventoryRepository(db),
			tx:         mysql.NewTxRunner(db),
			close:      func() { _ = db.Close() },
		}, nil
	case config.DriverMemory:
		store := memory.NewStore()
		return &storage{
			warehouses: memory.NewWarehouseRepository(store),
			items:      memory.NewInventoryRepository(store),
			tx:         memory.NewTxRunner(store),
			close:      func() {},
		}, nil
	}
	return nil, fmt.Errorf("DB_DRIVER desconocido: %q", cfg.Driver)
}
