// Package sqlitekit is an ownership-safe wrapper around SQLite's C-style
// handle API. Every native handle lives inside a single-owner Handle
// whose close strategy runs exactly once, so sessions, statements, and
// backups cannot leak or double-free no matter how an operation fails.
//
// The surface mirrors the engine's shape: Connection for sessions,
// Statement for prepared statements with the step/reset protocol, Row
// and RowIterator for result traversal, and Backup for page-level online
// copies. Errors carry the engine's extended result code and message
// verbatim as *Error.
package sqlitekit
