package reconcile

import (
	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain/listing"
)

// Report lists record ids by what happened to them in a pass.
type Report struct {
	// Checked were read from the oracle
	Checked []string `json:"checked"`
	// MarkedSold were active off chain but inactive on chain
	MarkedSold []string `json:"markedSold"`
	// Failed could not be read or updated and are retried next pass
	Failed []string `json:"failed"`
	// Missing claim an on-chain id the contract does not know
	Missing []string `json:"missing"`
	// Unverifiable have no on-chain id
	Unverifiable []string `json:"unverifiable"`
}

type UseCase interface {
	// Reconcile checks every active verifiable listing against the oracle and
	// marks it sold when the contract reports it inactive. Status of listings
	// marked sold is updated in place. A failed read leaves the record untouched.
	Reconcile(c ctx.Ctx, listings []*listing.Listing) (*Report, error)
	// ReconcileActive reconciles every active listing in the store.
	ReconcileActive(c ctx.Ctx) (*Report, error)
}
