package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/urfave/cli/v2"
	"github.com/voltworks/inventory-engine/internal/dataset"
)

// schema mirrors the snapshot tables one to one. Seeding replaces table
// contents wholesale; the engine treats the database as a bulk-refreshed
// snapshot, not a transactional store.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS materials (
		part_id TEXT PRIMARY KEY,
		part_name TEXT NOT NULL DEFAULT '',
		part_type TEXT NOT NULL DEFAULT '',
		used_in_models TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS stock_levels (
		part_id TEXT NOT NULL,
		quantity_available DOUBLE PRECISION NOT NULL,
		location TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS material_orders (
		order_id TEXT NOT NULL,
		part_id TEXT NOT NULL,
		supplier_id TEXT NOT NULL DEFAULT '',
		quantity_ordered DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		order_date TIMESTAMPTZ,
		expected_delivery_date TIMESTAMPTZ,
		actual_delivered_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sales_orders (
		order_id TEXT NOT NULL,
		model TEXT NOT NULL,
		version TEXT NOT NULL DEFAULT '',
		quantity DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		supplier_id TEXT NOT NULL,
		part_id TEXT NOT NULL,
		price_per_unit DOUBLE PRECISION NOT NULL DEFAULT 0,
		lead_time_days DOUBLE PRECISION NOT NULL DEFAULT 0,
		reliability_rating DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		part_id TEXT NOT NULL,
		quantity DOUBLE PRECISION NOT NULL,
		movement_type TEXT NOT NULL,
		moved_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dispatch_parameters (
		part_id TEXT PRIMARY KEY,
		min_stock_level DOUBLE PRECISION NOT NULL DEFAULT 0,
		reorder_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		reorder_interval_days DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
}

// runSeed loads the CSV snapshot and replaces the database tables with it
// inside a single transaction.
func runSeed(c *cli.Context) error {
	snap, err := dataset.NewCSVLoader(c.String("data-dir")).Load(c.Context)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := c.Context
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	log.Println("Starting snapshot seeding...")

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if err := seedSnapshot(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Println("Snapshot seeding completed successfully!")
	return nil
}

func seedSnapshot(ctx context.Context, tx *sql.Tx, snap *dataset.Snapshot) error {
	if err := replaceTable(ctx, tx, "materials",
		`INSERT INTO materials (part_id, part_name, part_type, used_in_models) VALUES ($1, $2, $3, $4)`,
		len(snap.Materials()), func(i int) []any {
			m := snap.Materials()[i]
			return []any{m.PartID, m.PartName, m.PartType, strings.Join(m.UsedInModels, ",")}
		}); err != nil {
		return err
	}

	if err := replaceTable(ctx, tx, "stock_levels",
		`INSERT INTO stock_levels (part_id, quantity_available, location) VALUES ($1, $2, $3)`,
		len(snap.StockLevels()), func(i int) []any {
			s := snap.StockLevels()[i]
			return []any{s.PartID, s.QuantityAvailable, s.Location}
		}); err != nil {
		return err
	}

	if err := replaceTable(ctx, tx, "material_orders",
		`INSERT INTO material_orders (order_id, part_id, supplier_id, quantity_ordered, status,
		                              order_date, expected_delivery_date, actual_delivered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		len(snap.MaterialOrders()), func(i int) []any {
			o := snap.MaterialOrders()[i]
			return []any{o.OrderID, o.PartID, o.SupplierID, o.QuantityOrdered, o.Status,
				o.OrderDate, o.ExpectedDeliveryDate, o.ActualDeliveredAt}
		}); err != nil {
		return err
	}

	if err := replaceTable(ctx, tx, "sales_orders",
		`INSERT INTO sales_orders (order_id, model, version, quantity) VALUES ($1, $2, $3, $4)`,
		len(snap.SalesOrders()), func(i int) []any {
			o := snap.SalesOrders()[i]
			return []any{o.OrderID, o.Model, o.Version, o.Quantity}
		}); err != nil {
		return err
	}

	if err := replaceTable(ctx, tx, "suppliers",
		`INSERT INTO suppliers (supplier_id, part_id, price_per_unit, lead_time_days, reliability_rating)
		 VALUES ($1, $2, $3, $4, $5)`,
		len(snap.Suppliers()), func(i int) []any {
			s := snap.Suppliers()[i]
			return []any{s.SupplierID, s.PartID, s.PricePerUnit, s.LeadTimeDays, s.ReliabilityRating}
		}); err != nil {
		return err
	}

	if err := replaceTable(ctx, tx, "stock_movements",
		`INSERT INTO stock_movements (part_id, quantity, movement_type, moved_at) VALUES ($1, $2, $3, $4)`,
		len(snap.StockMovements()), func(i int) []any {
			m := snap.StockMovements()[i]
			return []any{m.PartID, m.Quantity, m.Type, m.Date}
		}); err != nil {
		return err
	}

	return replaceTable(ctx, tx, "dispatch_parameters",
		`INSERT INTO dispatch_parameters (part_id, min_stock_level, reorder_quantity, reorder_interval_days)
		 VALUES ($1, $2, $3, $4)`,
		len(snap.DispatchParameterRows()), func(i int) []any {
			p := snap.DispatchParameterRows()[i]
			return []any{p.PartID, p.MinStockLevel, p.ReorderQuantity, p.ReorderIntervalDays}
		})
}

func replaceTable(ctx context.Context, tx *sql.Tx, table, insert string, n int, args func(i int) []any) error {
	if _, err := tx.ExecContext(ctx, "TRUNCATE "+table); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	log.Printf("Seeded %s (%d rows)", table, n)
	return nil
}
