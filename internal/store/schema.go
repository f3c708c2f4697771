package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Supplier" (
		"SupplierID" TEXT PRIMARY KEY,
		"NamaSupplier" TEXT NOT NULL,
		"Alamat" TEXT NOT NULL,
		"Email" TEXT NOT NULL,
		"Telepon" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Product" (
		"ProductID" TEXT PRIMARY KEY,
		"Merek" TEXT NOT NULL,
		"Model" TEXT NOT NULL,
		"Type" TEXT NOT NULL,
		"Color" TEXT,
		"Size" TEXT,
		"Stok" INTEGER NOT NULL,
		"HargaBeli" REAL NOT NULL,
		"HargaJual" REAL NOT NULL,
		"KodeSupplier" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "EmployeeAccess" (
		"AccessID" TEXT PRIMARY KEY,
		"NamaKaryawan" TEXT NOT NULL,
		"WaktuAkses" DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Supplier" (
		"SupplierID" TEXT PRIMARY KEY,
		"NamaSupplier" TEXT NOT NULL,
		"Alamat" TEXT NOT NULL,
		"Email" TEXT NOT NULL,
		"Telepon" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Product" (
		"ProductID" TEXT PRIMARY KEY,
		"Merek" TEXT NOT NULL,
		"Model" TEXT NOT NULL,
		"Type" TEXT NOT NULL,
		"Color" TEXT,
		"Size" TEXT,
		"Stok" INTEGER NOT NULL,
		"HargaBeli" DOUBLE PRECISION NOT NULL,
		"HargaJual" DOUBLE PRECISION NOT NULL,
		"KodeSupplier" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "EmployeeAccess" (
		"AccessID" TEXT PRIMARY KEY,
		"NamaKaryawan" TEXT NOT NULL,
		"WaktuAkses" TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates the Supplier, Product and EmployeeAccess tables when
// absent. Existing tables and rows are left untouched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	var stmts []string
	switch s.dialect {
	case "sqlite":
		stmts = sqliteSchema
	case "postgres":
		stmts = postgresSchema
	default:
		return fmt.Errorf("no schema for dialect %q", s.dialect)
	}

	return s.Do(ctx, func(tx *gorm.DB) error {
		for _, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
		}
		return nil
	})
}
