// Package mysql implementa los puertos de persistencia sobre MySQL/MariaDB con database/sql.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jhoicas/instock-api/pkg/config"
)

// Querier subconjunto común de *sql.DB y *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DSN arma el DSN del driver. DATABASE_URL, si está definido, se usa tal cual.
// clientFoundRows hace que UPDATE informe filas encontradas y no solo las modificadas,
// de modo que reescribir los mismos valores no se confunda con "no encontrado".
func DSN(cfg config.DBConfig) (string, error) {
	if cfg.DatabaseURL != "" {
		parsed, err := mysql.ParseDSN(cfg.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse DSN: %w", err)
		}
		parsed.ParseTime = true
		parsed.ClientFoundRows = true
		return parsed.FormatDSN(), nil
	}
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = cfg.Host + ":" + strconv.Itoa(cfg.Port)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.ClientFoundRows = true
	mc.Loc = time.UTC
	return mc.FormatDSN(), nil
}

// Open abre el pool de database/sql y verifica la conexión.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		db.SetMaxIdleConns(cfg.MinConns)
	}
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// isForeignKeyViolation ER_NO_REFERENCED_ROW_2 (1452).
func isForeignKeyViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1452
	}
	return false
}
