// Package dbarcache persists imported AccurateRip response files in a
// local SQLite database so verification runs can look them up offline by
// disc ID.
package dbarcache
