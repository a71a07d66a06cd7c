package repository

import (
	"context"
	"errors"
	"fmt"

	appErr "github.com/skill-swap/backend/pkg/errors"
	"gorm.io/gorm"
)

// BaseRepository defines common CRUD operations.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Delete(ctx context.Context, id any) error
}

type baseRepository[T any] struct {
	db     *gorm.DB
	entity string
}

// NewBaseRepository returns CRUD over T; entity names the row kind in error messages.
func NewBaseRepository[T any](db *gorm.DB, entity string) BaseRepository[T] {
	return &baseRepository[T]{db: db, entity: entity}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return translate(err, r.entity, "create")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		return translate(err, r.entity, "get")
	}
	return nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id any) error {
	var t T
	res := r.db.WithContext(ctx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, r.entity, "delete")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("%s not found", r.entity)).WithMeta("id", id)
	}
	return nil
}

// translate maps gorm sentinel errors onto application codes.
func translate(err error, entity, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("%s not found", entity))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return appErr.Wrap(err, appErr.CodeConflict, fmt.Sprintf("%s already exists", entity))
	default:
		return appErr.Wrap(err, appErr.CodeInternal, fmt.Sprintf("%s %s failed", op, entity))
	}
}
