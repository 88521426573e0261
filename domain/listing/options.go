package listing

import (
	"sort"
	"strings"

	"github.com/x-xyz/listingsync/domain"
)

type SortBy string

const (
	SortByNewest    SortBy = "newest"
	SortByOldest    SortBy = "oldest"
	SortByPriceLow  SortBy = "price-low"
	SortByPriceHigh SortBy = "price-high"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortByNewest, SortByOldest, SortByPriceLow, SortByPriceHigh:
		return true
	}
	return false
}

type FindAllOptions struct {
	Seller           *domain.Address `bson:"seller"`
	Status           *Status         `bson:"status"`
	AssetContract    *domain.Address `bson:"assetContract"`
	TokenId          *domain.TokenId `bson:"tokenId"`
	OnChainListingId *int64          `bson:"onChainListingId"`
	Search           *string         `bson:"-"`
	SortBy           *SortBy         `bson:"-"`
	Offset           *int            `bson:"-"`
	Limit            *int            `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !status.IsValid() {
			return domain.ErrBadParamInput
		}
		options.Status = &status
		return nil
	}
}

func WithAssetContract(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AssetContract = address.ToLowerPtr()
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenId = &tokenId
		return nil
	}
}

func WithOnChainListingId(id int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.OnChainListingId = &id
		return nil
	}
}

// WithSearch matches the collection name or the token id, case-insensitively
func WithSearch(term string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil
		}
		options.Search = &term
		return nil
	}
}

func WithSort(sortBy SortBy) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if sortBy == "" {
			return nil
		}
		if !sortBy.IsValid() {
			return domain.ErrBadParamInput
		}
		options.SortBy = &sortBy
		return nil
	}
}

func WithPagination(offset, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// Match applies the filters of opts to l, for backends without a query engine.
func (opts FindAllOptions) Match(l *Listing) bool {
	if opts.Seller != nil && !l.Seller.Equals(*opts.Seller) {
		return false
	}
	if opts.Status != nil && l.Status != *opts.Status {
		return false
	}
	if opts.AssetContract != nil && !l.AssetContract.Equals(*opts.AssetContract) {
		return false
	}
	if opts.TokenId != nil && l.TokenId != *opts.TokenId {
		return false
	}
	if opts.OnChainListingId != nil && (l.OnChainListingId == nil || *l.OnChainListingId != *opts.OnChainListingId) {
		return false
	}
	if opts.Search != nil {
		term := strings.ToLower(*opts.Search)
		if !strings.Contains(strings.ToLower(l.CollectionName), term) && !strings.Contains(l.TokenId.String(), term) {
			return false
		}
	}
	return true
}

// Apply filters, sorts and pages ls.
func (opts FindAllOptions) Apply(ls []*Listing) []*Listing {
	res := make([]*Listing, 0, len(ls))
	for _, l := range ls {
		if opts.Match(l) {
			res = append(res, l)
		}
	}
	sortBy := SortByNewest
	if opts.SortBy != nil {
		sortBy = *opts.SortBy
	}
	Sort(res, sortBy)

	if opts.Offset != nil {
		if *opts.Offset >= len(res) {
			return []*Listing{}
		}
		res = res[*opts.Offset:]
	}
	if opts.Limit != nil && *opts.Limit > 0 && *opts.Limit < len(res) {
		res = res[:*opts.Limit]
	}
	return res
}

// Sort orders ls in place; ties keep the newest first.
func Sort(ls []*Listing, sortBy SortBy) {
	newer := func(i, j int) bool {
		if ls[i].CreatedAt.Equal(ls[j].CreatedAt) {
			return ls[i].Id > ls[j].Id
		}
		return ls[i].CreatedAt.After(ls[j].CreatedAt)
	}
	sort.SliceStable(ls, func(i, j int) bool {
		switch sortBy {
		case SortByOldest:
			return newer(j, i)
		case SortByPriceLow:
			if ls[i].PriceValue != ls[j].PriceValue {
				return ls[i].PriceValue < ls[j].PriceValue
			}
		case SortByPriceHigh:
			if ls[i].PriceValue != ls[j].PriceValue {
				return ls[i].PriceValue > ls[j].PriceValue
			}
		}
		return newer(i, j)
	})
}
