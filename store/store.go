// SPDX-License-Identifier: MIT
// Package: tfim/store
//
// store.go: SQLite archive of analysis runs.
//
// Contract:
//   • Open applies the schema; callers never migrate by hand.
//   • SaveReport writes the run row and all records in one transaction.
//   • Run ids are random UUIDs; records keep their report order via seq.
//   • I/O failures are wrapped with github.com/pkg/errors; ErrNotFound stays matchable.

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/tfim/order"
	"github.com/katalvlaran/tfim/problem"
)

// ErrNotFound indicates an unknown run id.
var ErrNotFound = errors.New("store: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	source         TEXT NOT NULL,
	gamma          REAL NOT NULL,
	strength       REAL NOT NULL,
	layer_strength REAL NOT NULL,
	side           INTEGER NOT NULL,
	height         INTEGER NOT NULL,
	time_limit     INTEGER NOT NULL,
	solutions      INTEGER NOT NULL,
	skipped        INTEGER NOT NULL,
	emitted        INTEGER NOT NULL,
	mean_order_p   REAL NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	run_id  TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	seq     INTEGER NOT NULL,
	c6      REAL NOT NULL,
	order_p REAL NOT NULL,
	config  INTEGER NOT NULL,
	layer   INTEGER NOT NULL,
	energy  REAL NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_runs_lattice ON runs(gamma, strength, side, height);
`

// Run is one archived analysis.
type Run struct {
	ID         uuid.UUID
	Source     string // solution file the report came from
	Meta       problem.Metadata
	Solutions  int
	Skipped    int
	Emitted    int
	MeanOrderP float64
	CreatedAt  time.Time
}

// Store is a SQLite-backed archive.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and applies the schema.
// ":memory:" gives a private in-memory archive.
//
// Errors: wrapped driver errors when the file cannot be opened or the
// schema cannot be applied.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	// One connection: SQLite serializes writers anyway, and ":memory:" is
	// private to its connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err = s.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrate")
	}

	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	_, err := s.db.Exec(schema)

	return err
}

// Close releases the database. The Store must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport stores rep and its records under a new run id. meta should
// carry the run's J_L; the archive stores it as given.
//
// Errors: wrapped driver errors; on any error nothing is stored.
// Complexity: O(len(rep.Records)) inserts in one transaction.
func (s *Store) SaveReport(ctx context.Context, source string, meta problem.Metadata, rep *order.Report) (uuid.UUID, error) {
	id := uuid.New()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "begin")
	}
	defer tx.Rollback() // no-op after Commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, gamma, strength, layer_strength, side, height,
			time_limit, solutions, skipped, emitted, mean_order_p, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), source, meta.Gamma, meta.Strength, meta.LayerStrength,
		meta.SideLength, meta.Height, meta.TimeLimitSec,
		rep.Solutions, rep.Skipped, len(rep.Records), rep.MeanOrderP(),
		s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "insert run")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, seq, c6, order_p, config, layer, energy)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "prepare records")
	}
	defer stmt.Close()
	for seq, r := range rep.Records {
		if _, err = stmt.ExecContext(ctx, id.String(), seq, r.C6, r.OrderP, r.Config, r.Layer, r.Energy); err != nil {
			return uuid.Nil, errors.Wrapf(err, "insert record %d", seq)
		}
	}

	return id, errors.Wrap(tx.Commit(), "commit")
}

const runColumns = `id, source, gamma, strength, layer_strength, side, height,
	time_limit, solutions, skipped, emitted, mean_order_p, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		r         Run
		id, stamp string
	)
	err := row.Scan(&id, &r.Source, &r.Meta.Gamma, &r.Meta.Strength, &r.Meta.LayerStrength,
		&r.Meta.SideLength, &r.Meta.Height, &r.Meta.TimeLimitSec,
		&r.Solutions, &r.Skipped, &r.Emitted, &r.MeanOrderP, &stamp)
	if err != nil {
		return Run{}, err
	}
	if r.ID, err = uuid.Parse(id); err != nil {
		return Run{}, errors.Wrapf(err, "run id %q", id)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, stamp); err != nil {
		return Run{}, errors.Wrapf(err, "run %s created_at", id)
	}

	return r, nil
}

// Run returns one archived run.
// Errors: ErrNotFound.
func (s *Store) Run(ctx context.Context, id uuid.UUID) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id.String())
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, errors.Wrapf(ErrNotFound, "%s", id)
	}
	if err != nil {
		return Run{}, errors.Wrapf(err, "run %s", id)
	}

	return r, nil
}

// Runs lists every run, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "query runs")
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan run")
		}
		out = append(out, r)
	}

	return out, errors.Wrap(rows.Err(), "iterate runs")
}

// Records returns the records of run id in insertion order.
// Errors: ErrNotFound.
func (s *Store) Records(ctx context.Context, id uuid.UUID) ([]order.Record, error) {
	if _, err := s.Run(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT c6, order_p, config, layer, energy FROM records
		WHERE run_id = ? ORDER BY seq`, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "query records")
	}
	defer rows.Close()

	var out []order.Record
	for rows.Next() {
		var r order.Record
		if err = rows.Scan(&r.C6, &r.OrderP, &r.Config, &r.Layer, &r.Energy); err != nil {
			return nil, errors.Wrap(err, "scan record")
		}
		out = append(out, r)
	}

	return out, errors.Wrap(rows.Err(), "iterate records")
}
