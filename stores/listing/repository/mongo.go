package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/database/mongoclient"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/service/query"
)

var sortFields = map[listing.SortBy]string{
	listing.SortByNewest:    "-createdAt,-id",
	listing.SortByOldest:    "createdAt,id",
	listing.SortByPriceLow:  "priceValue,-createdAt,-id",
	listing.SortByPriceHigh: "-priceValue,-createdAt,-id",
}

var listingIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Keys: bson.D{{Key: "seller", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Keys: bson.D{{Key: "status", Value: 1}, {Key: "priceValue", Value: 1}}},
	{Keys: bson.D{{Key: "onChainListingId", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
}

type mongoRepo struct {
	q     query.Mongo
	table domain.Table
}

// NewMongoRepo stores listings in the marketplace_listings collection and
// makes sure its indexes exist.
func NewMongoRepo(c ctx.Ctx, q query.Mongo) (listing.Repo, error) {
	if err := q.CreateIndexes(c, domain.TableListings, listingIndexes); err != nil {
		c.WithField("err", err).Error("q.CreateIndexes failed")
		return nil, err
	}
	return &mongoRepo{q: q, table: domain.TableListings}, nil
}

func unavailable(err error) error {
	return xerrors.Errorf("%v: %w", err, domain.ErrStoreUnavailable)
}

func (r *mongoRepo) Create(c ctx.Ctx, l *listing.Listing) error {
	record := clone(l)
	record.Normalize()
	if err := r.q.Insert(c, r.table, record); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).WithField("id", l.Id).Error("q.Insert failed")
		return unavailable(err)
	}
	return nil
}

func (r *mongoRepo) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := r.q.FindOne(c, r.table, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.FindOne failed")
		return nil, unavailable(err)
	}
	return res, nil
}

func makeSelector(opts listing.FindAllOptions) (bson.M, error) {
	sel, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		return nil, err
	}
	if opts.Search != nil {
		pattern := regexp.QuoteMeta(*opts.Search)
		sel["$or"] = bson.A{
			bson.M{"collectionName": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"tokenId": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}
	return sel, nil
}

func (r *mongoRepo) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}
	var (
		offset = 0
		limit  = 0
		sort   = sortFields[listing.SortByNewest]
	)
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Limit != nil {
		limit = *opts.Limit
	}
	if opts.SortBy != nil {
		sort = sortFields[*opts.SortBy]
	}
	sel, err := makeSelector(opts)
	if err != nil {
		c.WithField("err", err).Error("makeSelector failed")
		return nil, err
	}

	res := []*listing.Listing{}
	if err := r.q.Search(c, r.table, offset, limit, sort, sel, &res); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": sel,
		}).Error("q.Search failed")
		return nil, unavailable(err)
	}
	return res, nil
}

func (r *mongoRepo) UpdateStatus(c ctx.Ctx, id string, status listing.Status) (*listing.Listing, bool, error) {
	if listing.StatusActive.CanTransitionTo(status) {
		res := &listing.Listing{}
		sel := bson.M{"id": id, "status": listing.StatusActive}
		upd := bson.M{"status": status, "updatedAt": timeNow()}
		err := r.q.FindOneAndPatch(c, r.table, sel, upd, res)
		if err == nil {
			return res, true, nil
		} else if err != query.ErrNotFound {
			c.WithField("err", err).WithField("id", id).Error("q.FindOneAndPatch failed")
			return nil, false, unavailable(err)
		}
	}

	// not active anymore, or asked for active: report what is stored
	cur, err := r.FindOne(c, id)
	if err != nil {
		return nil, false, err
	}
	if cur.Status == status {
		return cur, false, nil
	}
	return cur, false, domain.ErrInvalidStatusTransition
}
