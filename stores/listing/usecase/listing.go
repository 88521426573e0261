package usecase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/validator"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
)

type ListingUseCaseCfg struct {
	Repo      listing.Repo
	Observers []listing.StatusObserver
}

type impl struct {
	repo      listing.Repo
	observers []listing.StatusObserver
	timeNow   func() time.Time
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:      cfg.Repo,
		observers: cfg.Observers,
		timeNow:   time.Now,
	}
}

// storeErr keeps domain errors and marks everything else as a store outage
func storeErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrStoreUnavailable):
		return err
	}
	return xerrors.Errorf("%v: %w", err, domain.ErrStoreUnavailable)
}

func (im *impl) Create(c ctx.Ctx, l *listing.Listing) (string, error) {
	record := *l
	record.Normalize()
	if !validator.IsValidAddress(record.Seller.ToLowerStr()) || !validator.IsValidAddress(record.AssetContract.ToLowerStr()) {
		return "", domain.ErrInvalidAddress
	}
	if record.TokenId == "" || record.Quantity <= 0 {
		return "", domain.ErrBadParamInput
	}
	if _, err := listing.ParsePrice(record.Price); err != nil {
		return "", err
	}

	if record.OnChainListingId != nil {
		if _, err := im.FindByOnChainId(c, *record.OnChainListingId); err == nil {
			c.WithField("onChainListingId", *record.OnChainListingId).Warn("on-chain listing already indexed")
			return "", domain.ErrConflict
		} else if err != domain.ErrNotFound {
			return "", err
		}
	}

	now := im.timeNow().UTC()
	record.Id = listing.NewId(now)
	record.Status = listing.StatusActive
	record.CreatedAt = now
	record.UpdatedAt = now
	record.Timestamp = now.Format(time.RFC3339)
	if record.CollectionName == "" {
		record.CollectionName = listing.CollectionDisplayName(record.TokenId)
	}

	if err := im.repo.Create(c, &record); err != nil {
		c.WithField("err", err).WithField("id", record.Id).Error("repo.Create failed")
		return "", storeErr(err)
	}
	return record.Id, nil
}

func (im *impl) Get(c ctx.Ctx, id string) (*listing.Listing, error) {
	l, err := im.repo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).WithField("id", id).Error("repo.FindOne failed")
		}
		return nil, storeErr(err)
	}
	return l, nil
}

func (im *impl) FindByOnChainId(c ctx.Ctx, onChainListingId int64) (*listing.Listing, error) {
	ls, err := im.repo.FindAll(c, listing.WithOnChainListingId(onChainListingId))
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, storeErr(err)
	}
	if len(ls) == 0 {
		return nil, domain.ErrNotFound
	}
	return ls[0], nil
}

func (im *impl) ListActive(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts = append(opts, listing.WithStatus(listing.StatusActive))
	ls, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, storeErr(err)
	}
	return ls, nil
}

func (im *impl) ListBySeller(c ctx.Ctx, seller domain.Address, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	if seller.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	return im.ListActive(c, append(opts, listing.WithSeller(seller))...)
}

func (im *impl) UpdateStatus(c ctx.Ctx, id string, status listing.Status) error {
	if !status.IsValid() {
		return domain.ErrBadParamInput
	}
	l, changed, err := im.repo.UpdateStatus(c, id, status)
	if err != nil {
		if err != domain.ErrInvalidStatusTransition && err != domain.ErrNotFound {
			c.WithField("err", err).WithField("id", id).Error("repo.UpdateStatus failed")
		}
		return storeErr(err)
	}
	if !changed {
		return nil
	}

	c.WithField("id", id).WithField("status", status).Info("listing status changed")
	for _, o := range im.observers {
		o.OnStatusChanged(c, l, listing.StatusActive)
	}
	return nil
}

func (im *impl) Stats(c ctx.Ctx, seller *domain.Address) (*listing.Stats, error) {
	active, err := im.ListActive(c)
	if err != nil {
		return nil, err
	}

	var floor *decimal.Decimal
	total := decimal.Zero
	bySeller := 0
	for _, l := range active {
		if seller != nil && l.Seller.Equals(*seller) {
			bySeller++
		}
		price, err := listing.ParsePrice(l.Price)
		if err != nil {
			c.WithField("id", l.Id).WithField("price", l.Price).Warn("skipping unparsable price")
			continue
		}
		if floor == nil || price.LessThan(*floor) {
			p := price
			floor = &p
		}
		total = total.Add(price.Mul(decimal.NewFromInt(l.Quantity)))
	}

	res := &listing.Stats{
		ActiveCount:       len(active),
		SellerActiveCount: bySeller,
		FloorPrice:        "0",
		TotalValue:        total.String(),
	}
	if floor != nil {
		res.FloorPrice = floor.String()
	}
	return res, nil
}
