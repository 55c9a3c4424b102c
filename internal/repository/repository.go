// Package repository wraps GORM behind small store interfaces so the
// service layer can be exercised without a database. Soft-deleted rows are
// excluded from every read through gorm.DeletedAt.
package repository

import "gorm.io/gorm"

// ErrNotFound is returned by FindOne-style lookups when no live row
// matches the predicate.
var ErrNotFound = gorm.ErrRecordNotFound
