package store

import (
	"context"
	"reflect"
	"strings"
)

// Memory is a map-backed store that preserves insertion order in GetAll.
// It is intentionally unsynchronized: the facade serializes access, per the
// store contract.
type Memory[T Entity] struct {
	items map[string]T
	order []string
}

func NewMemory[T Entity]() *Memory[T] {
	return &Memory[T]{items: make(map[string]T)}
}

func (m *Memory[T]) Add(_ context.Context, e T) error {
	id := e.EntityID()
	if _, ok := m.items[id]; !ok {
		m.order = append(m.order, id)
	}
	m.items[id] = e
	return nil
}

func (m *Memory[T]) Get(_ context.Context, id string) (T, error) {
	e, ok := m.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return e, nil
}

func (m *Memory[T]) GetAll(_ context.Context) ([]T, error) {
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *Memory[T]) Update(_ context.Context, e T) error {
	id := e.EntityID()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	m.items[id] = e
	return nil
}

func (m *Memory[T]) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindBy returns the first entity, in insertion order, whose field matches
// the given value. The field is addressed by its persisted column name so the
// database-backed store behaves identically.
func (m *Memory[T]) FindBy(_ context.Context, field string, value any) (T, error) {
	for _, id := range m.order {
		e := m.items[id]
		fv, ok := fieldByColumn(reflect.ValueOf(e), field)
		if ok && reflect.DeepEqual(fv.Interface(), value) {
			return e, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func fieldByColumn(v reflect.Value, column string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if fv, ok := fieldByColumn(v.Field(i), column); ok {
				return fv, true
			}
			continue
		}
		if columnName(f) == column {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func columnName(f reflect.StructField) string {
	for _, part := range strings.Split(f.Tag.Get("gorm"), ";") {
		if name, ok := strings.CutPrefix(part, "column:"); ok {
			return name
		}
	}
	return strings.ToLower(f.Name)
}
