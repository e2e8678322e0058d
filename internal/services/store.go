package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// touchable is implemented by entities that carry an UpdatedAt timestamp
type touchable[T any] interface {
	*T
	Touch(now time.Time)
}

// findByID loads a single row by primary key, translating a missing row into notFound
func findByID[T any](ctx context.Context, db *gorm.DB, id any, notFound error) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, persistenceError("find", err)
	}
	return &entity, nil
}

// updateByID performs the read-modify-write cycle shared by every mutation:
// fetch the row, apply the change, refresh updated_at and persist only the
// touched columns in a single UPDATE statement.
func updateByID[T any, PT touchable[T]](
	ctx context.Context,
	db *gorm.DB,
	now func() time.Time,
	id any,
	notFound error,
	column string,
	apply func(PT),
) (*T, error) {
	entity, err := findByID[T](ctx, db, id, notFound)
	if err != nil {
		return nil, err
	}

	ptr := PT(entity)
	apply(ptr)
	ptr.Touch(now())

	result := db.WithContext(ctx).Model(ptr).Select(column, "updated_at").Updates(ptr)
	if result.Error != nil {
		return nil, persistenceError("update", result.Error)
	}
	// The row disappeared between the read and the write.
	if result.RowsAffected == 0 {
		return nil, notFound
	}
	return entity, nil
}
