package history

import (
	"time"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
)

// MaxRecords is the number of records kept per account
const MaxRecords = 50

type TxType string

const (
	TxTypeApprove  TxType = "approve"
	TxTypeList     TxType = "list"
	TxTypePurchase TxType = "purchase"
	TxTypeCancel   TxType = "cancel"
	TxTypeSold     TxType = "sold"
)

type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusConfirmed TxStatus = "confirmed"
	TxStatusFailed    TxStatus = "failed"
)

type Record struct {
	Id               string         `json:"id"`
	Account          domain.Address `json:"account"`
	Type             TxType         `json:"type"`
	Status           TxStatus       `json:"status"`
	TxHash           domain.TxHash  `json:"txHash,omitempty"`
	ListingId        string         `json:"listingId,omitempty"`
	OnChainListingId *int64         `json:"onChainListingId,omitempty"`
	AssetContract    domain.Address `json:"assetContract,omitempty"`
	TokenIds         []string       `json:"tokenIds,omitempty"`
	CollectionNames  []string       `json:"collectionNames,omitempty"`
	Quantity         int64          `json:"quantity,omitempty"`
	Price            string         `json:"price,omitempty"`
	Error            string         `json:"error,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
}

type Repo interface {
	// Append stores r as the newest record of r.Account, dropping the oldest beyond MaxRecords
	Append(c ctx.Ctx, r *Record) error
	FindAll(c ctx.Ctx, account domain.Address, limit int) ([]*Record, error)
}

type UseCase interface {
	Record(c ctx.Ctx, r *Record) error
	List(c ctx.Ctx, account domain.Address, limit int) ([]*Record, error)
}
