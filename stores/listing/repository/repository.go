package repository

import (
	"time"

	"github.com/x-xyz/listingsync/domain/listing"
)

var timeNow = time.Now

func clone(l *listing.Listing) *listing.Listing {
	res := *l
	if l.OnChainListingId != nil {
		id := *l.OnChainListingId
		res.OnChainListingId = &id
	}
	return &res
}
