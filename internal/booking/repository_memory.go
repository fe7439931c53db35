package booking

import (
	"context"
	"slices"
	"strings"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items map[string]Booking
}

// NewMemoryRepository returns a Repository that keeps bookings in process memory.
// Used for local runs without a database and in tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{items: make(map[string]Booking)}
}

func (r *memoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[b.ID]; ok {
		return ErrAlreadyExists
	}
	r.items[b.ID] = *normalize(&Booking{ID: b.ID, CheckIn: b.CheckIn, CheckOut: b.CheckOut, CreatedAt: b.CreatedAt})
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Booking, 0, len(r.items))
	for _, b := range r.items {
		out = append(out, &b)
	}
	slices.SortFunc(out, func(a, b *Booking) int {
		if c := a.CheckIn.Compare(b.CheckIn); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[b.ID]
	if !ok {
		return ErrNotFound
	}
	stored.CheckIn = b.CheckIn
	stored.CheckOut = b.CheckOut
	r.items[b.ID] = *normalize(&stored)
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
