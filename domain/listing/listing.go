package listing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSold, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether s may move to next. Only an active listing
// moves, and only to sold or cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusActive && (next == StatusSold || next == StatusCancelled)
}

// Listing is the off-chain record of an on-chain listing. Status is a cache of
// the contract's active flag and Quantity is advisory.
type Listing struct {
	Id               string         `json:"id" bson:"id"`
	OnChainListingId *int64         `json:"onChainListingId,omitempty" bson:"onChainListingId,omitempty"`
	Seller           domain.Address `json:"seller" bson:"seller"`
	AssetContract    domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId          domain.TokenId `json:"tokenId" bson:"tokenId"`
	CollectionName   string         `json:"collectionName" bson:"collectionName"`
	Price            string         `json:"price" bson:"price"`
	PriceValue       float64        `json:"-" bson:"priceValue"`
	Quantity         int64          `json:"quantity" bson:"quantity"`
	Timestamp        string         `json:"timestamp" bson:"timestamp"`
	Status           Status         `json:"status" bson:"status"`
	CreatedAt        time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Verifiable is false for legacy records created before listings went on chain.
func (l *Listing) Verifiable() bool {
	return l.OnChainListingId != nil
}

func (l *Listing) IsActive() bool {
	return l.Status == StatusActive
}

// Normalize lower cases addresses, the only form stored or queried, and
// derives PriceValue from Price.
func (l *Listing) Normalize() {
	l.Seller = l.Seller.ToLower()
	l.AssetContract = l.AssetContract.ToLower()
	l.TokenId = domain.TokenId(strings.TrimSpace(l.TokenId.String()))
	l.Price = strings.TrimSpace(l.Price)
	if d, err := ParsePrice(l.Price); err == nil {
		l.PriceValue, _ = d.Float64()
	}
}

// NewId returns listing-<unix millis>-<7 random chars>
func NewId(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:7]
	return fmt.Sprintf("listing-%d-%s", now.UnixNano()/int64(time.Millisecond), suffix)
}

type Stats struct {
	ActiveCount       int    `json:"activeCount"`
	SellerActiveCount int    `json:"sellerActiveCount"`
	FloorPrice        string `json:"floorPrice"`
	TotalValue        string `json:"totalValue"`
}

type Repo interface {
	Create(c ctx.Ctx, l *Listing) error
	FindOne(c ctx.Ctx, id string) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	// UpdateStatus atomically moves an active listing to status. changed is
	// false when the listing already had status; ErrInvalidStatusTransition is
	// returned when it settled in the other terminal status.
	UpdateStatus(c ctx.Ctx, id string, status Status) (l *Listing, changed bool, err error)
}

type UseCase interface {
	// Create assigns the id and persists l as active. The caller must have
	// confirmed the on-chain listing first.
	Create(c ctx.Ctx, l *Listing) (string, error)
	Get(c ctx.Ctx, id string) (*Listing, error)
	FindByOnChainId(c ctx.Ctx, onChainListingId int64) (*Listing, error)
	// ListActive returns active listings, newest first unless sorted otherwise
	ListActive(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	// ListBySeller returns the active listings of seller, matched case-insensitively
	ListBySeller(c ctx.Ctx, seller domain.Address, opts ...FindAllOptionsFunc) ([]*Listing, error)
	// UpdateStatus is idempotent and never moves a listing back to active
	UpdateStatus(c ctx.Ctx, id string, status Status) error
	Stats(c ctx.Ctx, seller *domain.Address) (*Stats, error)
}

// StatusObserver is notified after a listing changed status.
type StatusObserver interface {
	OnStatusChanged(c ctx.Ctx, l *Listing, from Status)
}
