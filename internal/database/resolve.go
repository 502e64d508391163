package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResolveByID loads the row of T with the given id.
// A missing row is not an error: it yields nil, nil.
func ResolveByID[T any](session *gorm.DB, id uuid.UUID) (*T, error) {
	var row T
	err := session.Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %T %s: %w", row, id, err)
	}
	return &row, nil
}

// ResolvePage lists rows of T ordered by id.
func ResolvePage[T any](session *gorm.DB, skip, limit int) ([]*T, error) {
	var rows []*T
	err := session.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %T: %w", rows, err)
	}
	return rows, nil
}

// ResolveByForeignKey lists rows of T whose column equals id, ordered by id.
// Column names are quoted, so camel-cased columns work as declared.
func ResolveByForeignKey[T any](session *gorm.DB, column string, id uuid.UUID) ([]*T, error) {
	var rows []*T
	err := session.Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %T by %s: %w", rows, column, err)
	}
	return rows, nil
}
