// Package store archives order-parameter analyses in a SQLite database so
// runs over many (Γ, J, L, H) points can be compared without re-reading
// solution files.
//
// Schema:
//
//	runs(id TEXT PK, source, gamma, strength, layer_strength, side, height,
//	     time_limit, solutions, skipped, emitted, mean_order_p, created_at)
//	records(run_id FK, seq, c6, order_p, config, layer, energy)
//
// Run identifiers are random UUIDs. A report is saved in one transaction:
// either the run and all of its records are stored or nothing is.
//
// The driver is modernc.org/sqlite (pure Go). ":memory:" opens a private
// in-memory database.
package store
