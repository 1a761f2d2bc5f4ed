package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DB is the database-backed store. T is the entity struct, PT its pointer
// type; both are needed so the methods can allocate rows while still
// satisfying Store[PT].
type DB[T any, PT interface {
	*T
	Entity
}] struct {
	db *gorm.DB
}

func NewDB[T any, PT interface {
	*T
	Entity
}](db *gorm.DB) *DB[T, PT] {
	return &DB[T, PT]{db: db}
}

func (s *DB[T, PT]) Add(ctx context.Context, e PT) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *DB[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	e := PT(new(T))
	if err := s.db.WithContext(ctx).First(e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *DB[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	var rows []T
	if err := s.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]PT, len(rows))
	for i := range rows {
		out[i] = PT(&rows[i])
	}
	return out, nil
}

func (s *DB[T, PT]) Update(ctx context.Context, e PT) error {
	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *DB[T, PT]) Delete(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Delete(PT(new(T)), "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DB[T, PT]) FindBy(ctx context.Context, field string, value any) (PT, error) {
	e := PT(new(T))
	tx := s.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", field), value).First(e)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return e, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite does not expose a typed error through the driver
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
