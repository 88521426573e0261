package query

/*
	Package query wraps https://github.com/mongodb/mongo-go-driver with the
	logging, slow query and index checks every repository shares.
*/

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// Multiple sort fields are comma separated, ex "-priceValue,-createdAt".
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// FindOneAndPatch $set update on the first matched entry and decodes the updated document.
	// Return ErrNotFound if selector does not match any documents
	FindOneAndPatch(context ctx.Ctx, table domain.Table, selector, update, result interface{}) error

	// CreateIndexes is idempotent for identical index models
	CreateIndexes(context ctx.Ctx, table domain.Table, models []mongo.IndexModel) error
}

// M is a shortcut for building selectors
type M = bson.M
