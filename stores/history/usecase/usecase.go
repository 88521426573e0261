package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/base/validator"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	"github.com/x-xyz/listingsync/domain/listing"
)

type impl struct {
	repo    history.Repo
	timeNow func() time.Time
}

func New(repo history.Repo) history.UseCase {
	return &impl{
		repo:    repo,
		timeNow: time.Now,
	}
}

func (im *impl) Record(c ctx.Ctx, r *history.Record) error {
	if !validator.IsValidAddress(r.Account.ToLowerStr()) {
		return domain.ErrInvalidAddress
	}
	r.Account = r.Account.ToLower()
	r.AssetContract = r.AssetContract.ToLower()
	if r.Id == "" {
		r.Id = uuid.New().String()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = im.timeNow()
	}
	if err := im.repo.Append(c, r); err != nil {
		c.WithFields(log.Fields{"err": err, "account": r.Account, "type": r.Type}).Error("repo.Append failed")
		return err
	}
	return nil
}

// List returns up to limit records, newest first. limit is clamped to MaxRecords.
func (im *impl) List(c ctx.Ctx, account domain.Address, limit int) ([]*history.Record, error) {
	if !validator.IsValidAddress(account.ToLowerStr()) {
		return nil, domain.ErrInvalidAddress
	}
	if limit <= 0 || limit > history.MaxRecords {
		limit = history.MaxRecords
	}
	res, err := im.repo.FindAll(c, account.ToLower(), limit)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "account": account}).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}

type recorder struct {
	history history.UseCase
}

// NewRecorder writes a seller side record for every listing that settles
func NewRecorder(history history.UseCase) listing.StatusObserver {
	return &recorder{history}
}

func (r *recorder) OnStatusChanged(c ctx.Ctx, l *listing.Listing, from listing.Status) {
	var txType history.TxType
	switch l.Status {
	case listing.StatusSold:
		txType = history.TxTypeSold
	case listing.StatusCancelled:
		txType = history.TxTypeCancel
	default:
		return
	}
	rec := &history.Record{
		Account:          l.Seller,
		Type:             txType,
		Status:           history.TxStatusConfirmed,
		ListingId:        l.Id,
		OnChainListingId: l.OnChainListingId,
		AssetContract:    l.AssetContract,
		TokenIds:         []string{l.TokenId.String()},
		CollectionNames:  []string{l.CollectionName},
		Quantity:         l.Quantity,
		Price:            l.Price,
	}
	if err := r.history.Record(c, rec); err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": l.Id}).Warn("record listing history failed")
	}
}
