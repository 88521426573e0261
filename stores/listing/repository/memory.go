package repository

import (
	"sync"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
)

type memoryRepo struct {
	mu      sync.RWMutex
	records map[string]*listing.Listing
}

// NewMemoryRepo keeps listings in process, for tests and local runs.
func NewMemoryRepo() listing.Repo {
	return &memoryRepo{
		records: map[string]*listing.Listing{},
	}
}

func (r *memoryRepo) Create(c ctx.Ctx, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[l.Id]; ok {
		return domain.ErrConflict
	}
	if l.OnChainListingId != nil {
		for _, other := range r.records {
			if other.OnChainListingId != nil && *other.OnChainListingId == *l.OnChainListingId {
				return domain.ErrConflict
			}
		}
	}
	record := clone(l)
	record.Normalize()
	r.records[l.Id] = record
	return nil
}

func (r *memoryRepo) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(l), nil
}

func (r *memoryRepo) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	r.mu.RLock()
	all := make([]*listing.Listing, 0, len(r.records))
	for _, l := range r.records {
		all = append(all, clone(l))
	}
	r.mu.RUnlock()

	return opts.Apply(all), nil
}

func (r *memoryRepo) UpdateStatus(c ctx.Ctx, id string, status listing.Status) (*listing.Listing, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.records[id]
	if !ok {
		return nil, false, domain.ErrNotFound
	}
	if l.Status == status {
		return clone(l), false, nil
	}
	if !l.Status.CanTransitionTo(status) {
		return clone(l), false, domain.ErrInvalidStatusTransition
	}
	l.Status = status
	l.UpdatedAt = timeNow()
	return clone(l), true, nil
}
