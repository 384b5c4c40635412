package crud

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by FindByID, Save and Delete when the row does not
// exist. Callers translate it into a 404.
var ErrNotFound = errors.New("record not found")

type (
	// Repository is the one data-access pattern shared by every entity table:
	// find-by-id, list, insert, full-replace update and delete. The five
	// entity services are thin instances of it.
	Repository[T any] interface {
		FindAll(ctx context.Context) ([]T, error)
		FindByID(ctx context.Context, id uint) (*T, error)
		Create(ctx context.Context, entity *T) error
		Save(ctx context.Context, entity *T) error
		Delete(ctx context.Context, id uint) error
		Count(ctx context.Context) (int64, error)
	}

	repository[T any] struct {
		db       *gorm.DB
		preloads []string
	}
)

// NewRepository builds a Repository over the table mapped by T. Preloads name
// the associations eager-loaded on every read.
func NewRepository[T any](db *gorm.DB, preloads ...string) Repository[T] {
	return &repository[T]{db: db, preloads: preloads}
}

func (r *repository[T]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func (r *repository[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.query(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.query(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Save performs a full-replace update by primary key. The existence check is
// the only concurrency control: a row deleted between read and write surfaces
// as ErrNotFound, concurrent writers are last-writer-wins.
func (r *repository[T]) Save(ctx context.Context, entity *T) error {
	// created_at is insert-only; a full replace must not zero it.
	res := r.db.WithContext(ctx).Omit("created_at").Save(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	res := r.db.WithContext(ctx).Delete(&entity, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var entity T
	if err := r.db.WithContext(ctx).Model(&entity).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
