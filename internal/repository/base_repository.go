package repository

import (
	"context"
	"errors"

	appErr "github.com/userweb/engine/pkg/errors"
	"gorm.io/gorm"
)

// BaseRepository defines the storage capabilities shared by entities:
// insert, lookup by primary key, update in place and list all.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Update(ctx context.Context, obj *T) error
	List(ctx context.Context) ([]T, error)
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create entity failed")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "entity not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get entity failed")
	}
	return nil
}

func (r *baseRepository[T]) Update(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Save(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update entity failed")
	}
	return nil
}

// List returns every row in storage order. The result is never nil.
func (r *baseRepository[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list entities failed")
	}
	return out, nil
}
