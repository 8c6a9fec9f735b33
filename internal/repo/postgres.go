package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgRecordStore is the Postgres implementation of RecordStore.
// Identifiers come from a BIGSERIAL column, which never reuses values.
type pgRecordStore struct {
	db db
}

// NewPostgresRecordStore constructs a RecordStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresRecordStore(db db) RecordStore {
	return &pgRecordStore{db: db}
}

const equipmentColumns = `id, kind, name, serial_number, registration_date,
		last_maintenance_date, decommission_date, reason`

// Save inserts a record with a zero ID, or overwrites the row with the record's ID.
func (r *pgRecordStore) Save(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	args := pgx.NamedArgs{
		"kind":                  e.Kind.String(),
		"name":                  e.Name,
		"serial_number":         e.SerialNumber,
		"registration_date":     e.RegistrationDate,
		"last_maintenance_date": e.LastMaintenanceDate,
		"decommission_date":     e.DecommissionDate,
		"reason":                e.Reason,
	}

	var q string
	if e.ID == 0 {
		q = `
		INSERT INTO equipment (kind, name, serial_number, registration_date,
		                       last_maintenance_date, decommission_date, reason)
		VALUES (@kind, @name, @serial_number, @registration_date,
		        @last_maintenance_date, @decommission_date, @reason)
		RETURNING ` + equipmentColumns
	} else {
		q = `
		UPDATE equipment
		SET kind                  = @kind,
		    name                  = @name,
		    serial_number         = @serial_number,
		    registration_date     = @registration_date,
		    last_maintenance_date = @last_maintenance_date,
		    decommission_date     = @decommission_date,
		    reason                = @reason,
		    updated_at            = now()
		WHERE id = @id
		RETURNING ` + equipmentColumns
		args["id"] = e.ID
	}

	result, err := scanEquipment(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("repo.RecordStore.Save: %w", err)
	}
	return result, nil
}

// Get retrieves a record by primary key.
func (r *pgRecordStore) Get(ctx context.Context, id int) (domain.Equipment, error) {
	q := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = @id`

	result, err := scanEquipment(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("repo.RecordStore.Get: %w", err)
	}
	return result, nil
}

// Delete removes a record by primary key and reports whether a row was removed.
func (r *pgRecordStore) Delete(ctx context.Context, id int) (bool, error) {
	const q = `DELETE FROM equipment WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.RecordStore.Delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns all records in insertion order.
func (r *pgRecordStore) List(ctx context.Context) ([]domain.Equipment, error) {
	q := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RecordStore.List: %w", err)
	}
	defer rows.Close()

	var records []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RecordStore.List: scan: %w", err)
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RecordStore.List: rows: %w", err)
	}

	return records, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanEquipment to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanEquipment maps a single database row into a domain.Equipment.
func scanEquipment(s scanner) (domain.Equipment, error) {
	var (
		e    domain.Equipment
		id   int64
		kind string
	)

	err := s.Scan(&id, &kind, &e.Name, &e.SerialNumber, &e.RegistrationDate,
		&e.LastMaintenanceDate, &e.DecommissionDate, &e.Reason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Equipment{}, domain.ErrNotFound
		}
		return domain.Equipment{}, err
	}

	e.ID = int(id)
	e.Kind, err = domain.ParseKind(kind)
	if err != nil {
		return domain.Equipment{}, err
	}
	return e, nil
}
