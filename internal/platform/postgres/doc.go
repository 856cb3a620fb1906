// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store. It uses database/sql with the pgx
// driver and maps driver-level errors to the store's sentinel errors.
package postgres
