// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces, plus connection management and database error mapping.
package postgres
