package repository

import (
	"context"
	"encoding/json"
	"math"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"
	"glass_office/internal/store"
)

// sequenceKey is the single counter document inside each sequence collection.
const sequenceKey = "main"

// Seeds for the built-in sequences; the first issued value is seed+1.
const (
	OrderSequenceSeed       int64 = 999
	InvoiceSequenceSeed     int64 = 999
	ResidentialSequenceSeed int64 = 0
)

// SequenceRepository issues increasing integers per named sequence.
//
// Next is a plain read-modify-write against the store. Two callers racing on the
// same name can be issued the same value; the store offers no compare-and-swap.
type SequenceRepository interface {
	Next(ctx context.Context, name string, seed int64) (int64, error)
	Current(ctx context.Context, name string, seed int64) (int64, error)
	Ensure(ctx context.Context, name string, seed int64) (int64, error)
}

type sequenceRepository struct {
	store store.DocumentStore
}

func NewSequenceRepository(s store.DocumentStore) SequenceRepository {
	return &sequenceRepository{store: s}
}

func (r *sequenceRepository) Next(ctx context.Context, name string, seed int64) (int64, error) {
	current, err := r.Current(ctx, name, seed)
	if err != nil {
		return 0, err
	}

	next := current + 1
	if err := store.SetJSON(ctx, r.store, name, sequenceKey, models.SequenceCounter{Value: next}); err != nil {
		return 0, err
	}
	return next, nil
}

// Current returns the last issued value, or seed when the counter is absent or
// does not hold a number.
func (r *sequenceRepository) Current(ctx context.Context, name string, seed int64) (int64, error) {
	raw, err := r.store.Get(ctx, name, sequenceKey)
	if err != nil {
		if ierr.IsNotFound(err) {
			return seed, nil
		}
		return 0, ierr.Storage(err, "get sequence "+name)
	}

	var doc struct {
		Value any `json:"value"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return seed, nil
	}
	f, ok := doc.Value.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return seed, nil
	}
	return int64(f), nil
}

// Ensure writes seed as the counter when none is stored yet and returns the value in
// effect afterwards.
func (r *sequenceRepository) Ensure(ctx context.Context, name string, seed int64) (int64, error) {
	_, err := r.store.Get(ctx, name, sequenceKey)
	if err == nil {
		return r.Current(ctx, name, seed)
	}
	if !ierr.IsNotFound(err) {
		return 0, ierr.Storage(err, "get sequence "+name)
	}
	if err := store.SetJSON(ctx, r.store, name, sequenceKey, models.SequenceCounter{Value: seed}); err != nil {
		return 0, err
	}
	return seed, nil
}
