// Package persistence provides database repository implementations.
// It uses GORM to store clothing items, user profiles and local accounts on
// PostgreSQL or SQLite. Every clothing and profile query is scoped by user id.
package persistence
