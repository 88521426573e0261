package marketplace

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
)

// OnChainListing mirrors the contract's listing struct. Active=false is the
// only signal that a listing can no longer be purchased.
type OnChainListing struct {
	ListingId    *big.Int       `json:"listingId"`
	Seller       domain.Address `json:"seller"`
	NftContract  domain.Address `json:"nftContract"`
	TokenId      *big.Int       `json:"tokenId"`
	Quantity     *big.Int       `json:"quantity"`
	PricePerItem *big.Int       `json:"pricePerItem"`
	Active       bool           `json:"active"`
}

// Receipt of a mined transaction with status success.
type Receipt struct {
	TxHash      domain.TxHash `json:"txHash"`
	BlockNumber uint64        `json:"blockNumber"`
	GasUsed     uint64        `json:"gasUsed"`
}

// Oracle reads a single listing from the marketplace contract. Every call is a
// point in time snapshot.
type Oracle interface {
	// GetListing returns ErrListingNotFound for an id that was never created
	// and wraps ErrChainReadFailure for rpc failures.
	GetListing(c ctx.Ctx, listingId *big.Int) (*OnChainListing, error)
}

type Marketplace interface {
	Oracle
	Address() domain.Address
	// CreateListing waits for the transaction and returns the assigned id
	CreateListing(c ctx.Ctx, signer *bind.TransactOpts, nftContract domain.Address, tokenId, quantity, pricePerItem *big.Int) (*big.Int, *Receipt, error)
	Purchase(c ctx.Ctx, signer *bind.TransactOpts, listingId, quantity, value *big.Int) (*Receipt, error)
}

// Erc1155 covers the asset contract calls the marketplace flow needs.
type Erc1155 interface {
	BalanceOf(c ctx.Ctx, asset, owner domain.Address, tokenId *big.Int) (*big.Int, error)
	IsApprovedForAll(c ctx.Ctx, asset, owner, operator domain.Address) (bool, error)
	SetApprovalForAll(c ctx.Ctx, signer *bind.TransactOpts, asset, operator domain.Address, approved bool) (*Receipt, error)
}

// ListingState tracks a new listing through its two transactions.
type ListingState string

const (
	StateUnapproved ListingState = "unapproved"
	StateApproved   ListingState = "approved"
	StateListed     ListingState = "listed"
)

type CreateListingParams struct {
	AssetContract  domain.Address `json:"assetContract" validate:"required,address"`
	TokenId        domain.TokenId `json:"tokenId" validate:"required,numeric"`
	Quantity       int64          `json:"quantity" validate:"required,gt=0"`
	Price          string         `json:"price" validate:"required,price"`
	CollectionName string         `json:"collectionName"`
}

type ListingProgress struct {
	State            ListingState   `json:"state"`
	ApprovalTx       *domain.TxHash `json:"approvalTx,omitempty"`
	ListingTx        *domain.TxHash `json:"listingTx,omitempty"`
	OnChainListingId *int64         `json:"onChainListingId,omitempty"`
	RecordId         string         `json:"recordId,omitempty"`
}

type PurchaseResult struct {
	RecordId         string        `json:"recordId"`
	OnChainListingId int64         `json:"onChainListingId"`
	TxHash           domain.TxHash `json:"txHash"`
	Value            string        `json:"value"`
}

// UseCase sequences the on-chain steps and keeps the listing index in step.
type UseCase interface {
	CreateListing(c ctx.Ctx, signer *bind.TransactOpts, p CreateListingParams) (*ListingProgress, error)
	Purchase(c ctx.Ctx, signer *bind.TransactOpts, recordId string) (*PurchaseResult, error)
	Cancel(c ctx.Ctx, seller domain.Address, recordId string) error

	// RegisterListing indexes a listing created and confirmed by another client.
	RegisterListing(c ctx.Ctx, seller domain.Address, onChainListingId int64, collectionName string) (*listing.Listing, error)
	// ConfirmPurchase marks a record sold once the oracle reports it inactive.
	ConfirmPurchase(c ctx.Ctx, recordId string) (*listing.Listing, error)
	CheckListing(c ctx.Ctx, onChainListingId int64) (*OnChainListing, error)
}
