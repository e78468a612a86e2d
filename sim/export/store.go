package export

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/bullwhip-sim/bullwhip-sim/sim"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for simulation runs. Uses SQLite with WAL
// mode; each stored run is tagged with a generated run ID so parameter sweeps
// can accumulate into one database.
type Store struct {
	db *sql.DB
}

// OpenStore creates or opens a SQLite database at the given path and applies
// the schema. Idempotent: safe to call on an existing database.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite only supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent sweep writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// WriteRun stores one completed simulation: a row in runs for the
// configuration plus one history row per record, all in a single transaction.
// Returns the generated run ID.
func (s *Store) WriteRun(ctx context.Context, cfg sim.Config, records []sim.Record) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin run transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, weeks, order_delay, shipment_delay, initial_inventory, holding_cost, backlog_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		runID,
		cfg.Weeks,
		cfg.OrderDelay,
		cfg.ShipmentDelay,
		cfg.InitialInventory,
		cfg.HoldingCostRate,
		cfg.BacklogCostRate,
	)
	if err != nil {
		return "", fmt.Errorf("write run row: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO history
		(run_id, week, role, inventory, backlog, order_placed, incoming_demand, shipment_sent, shipment_received, cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("prepare history insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			runID,
			rec.Week,
			rec.Role.String(),
			rec.Inventory,
			rec.Backlog,
			rec.OrderPlaced,
			rec.IncomingDemand,
			rec.ShipmentSent,
			rec.ShipmentReceived,
			rec.Cost,
		)
		if err != nil {
			return "", fmt.Errorf("write history row (week %d, %s): %w", rec.Week, rec.Role, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// CountHistory returns the number of history rows stored for a run.
func (s *Store) CountHistory(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count history rows: %w", err)
	}
	return n, nil
}
