package repository

import (
	"context"
	"slices"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/store"

	"github.com/google/uuid"
)

// counterKey is a legacy sequence blob kept inside the orders collection.
const counterKey = "_counter"

// docCollection is the typed view of one store collection shared by the repositories.
type docCollection[T any] struct {
	store store.DocumentStore
	name  string
	label string
	setID func(*T, string)
}

func newCollection[T any](s store.DocumentStore, name, label string, setID func(*T, string)) docCollection[T] {
	return docCollection[T]{store: s, name: name, label: label, setID: setID}
}

func (c docCollection[T]) get(ctx context.Context, id string) (*T, error) {
	var v T
	found, err := store.GetJSON(ctx, c.store, c.name, id, &v)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ierr.NotFound(c.label + " not found")
	}
	c.setID(&v, id)
	return &v, nil
}

func (c docCollection[T]) put(ctx context.Context, id string, v *T) error {
	c.setID(v, id)
	return store.SetJSON(ctx, c.store, c.name, id, v)
}

func (c docCollection[T]) remove(ctx context.Context, id string) error {
	return ierr.Storage(c.store.Delete(ctx, c.name, id), "delete "+c.name+"/"+id)
}

func (c docCollection[T]) all(ctx context.Context) ([]T, error) {
	keys, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, ierr.Storage(err, "list "+c.name)
	}

	out := make([]T, 0, len(keys))
	for _, key := range keys {
		if key == counterKey {
			continue
		}
		var v T
		found, err := store.GetJSON(ctx, c.store, c.name, key, &v)
		if err != nil {
			return nil, err
		}
		if !found {
			// removed between List and Get
			continue
		}
		c.setID(&v, key)
		out = append(out, v)
	}
	return out, nil
}

// newID builds an opaque document id such as order_<uuid>.
func newID(prefix string) string {
	return prefix + uuid.NewString()
}

// sortNewestFirst orders items by creation time, newest first. Ties keep key order.
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return createdAt(b).Compare(createdAt(a))
	})
}
