package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/ptr"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
	listingMocks "github.com/x-xyz/listingsync/domain/listing/mocks"
	"github.com/x-xyz/listingsync/stores/listing/repository"
)

var (
	mockCtx  = ctx.Background()
	seller   = domain.Address("0x7B8C1f0A5a4e5B5E2d1F9a2C3B4d5E6f7A8b9C0D")
	buyer    = domain.Address("0x1111111111111111111111111111111111111111")
	edition  = domain.Address("0x2222222222222222222222222222222222222222")
	fixedNow = time.Unix(1700000000, 0)
)

type listingSuite struct {
	suite.Suite

	observer *listingMocks.StatusObserver
	im       *impl
	clock    time.Time
}

func (s *listingSuite) SetupTest() {
	s.observer = &listingMocks.StatusObserver{}
	s.clock = fixedNow
	s.im = New(&ListingUseCaseCfg{
		Repo:      repository.NewMemoryRepo(),
		Observers: []listing.StatusObserver{s.observer},
	}).(*impl)
	s.im.timeNow = func() time.Time {
		s.clock = s.clock.Add(time.Second)
		return s.clock
	}
}

func (s *listingSuite) TearDownTest() {
	s.observer.AssertExpectations(s.T())
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) create(tokenId domain.TokenId, price string, onChainId int64) string {
	id, err := s.im.Create(mockCtx, &listing.Listing{
		OnChainListingId: ptr.Int64(onChainId),
		Seller:           seller,
		AssetContract:    edition,
		TokenId:          tokenId,
		Price:            price,
		Quantity:         1,
	})
	s.Require().NoError(err)
	return id
}

func (s *listingSuite) TestCreate() {
	id := s.create("4", "0.2", 1)

	l, err := s.im.Get(mockCtx, id)
	s.Require().NoError(err)
	s.Regexp(`^listing-\d+-[0-9a-f]{7}$`, l.Id)
	s.Equal(listing.StatusActive, l.Status)
	s.Equal("Batch Master", l.CollectionName)
	s.Equal(seller.ToLower(), l.Seller)
	s.Equal("0.2", l.Price)
	s.NotEmpty(l.Timestamp)

	byChain, err := s.im.FindByOnChainId(mockCtx, 1)
	s.Require().NoError(err)
	s.Equal(id, byChain.Id)
}

func (s *listingSuite) TestCreateInvalid() {
	_, err := s.im.Create(mockCtx, &listing.Listing{Seller: "0x1", AssetContract: edition, TokenId: "1", Price: "1", Quantity: 1})
	s.Equal(domain.ErrInvalidAddress, err)

	_, err = s.im.Create(mockCtx, &listing.Listing{Seller: seller, AssetContract: edition, TokenId: "1", Price: "0", Quantity: 1})
	s.True(errors.Is(err, domain.ErrBadParamInput))

	_, err = s.im.Create(mockCtx, &listing.Listing{Seller: seller, AssetContract: edition, TokenId: "1", Price: "1", Quantity: 0})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *listingSuite) TestCreateDuplicateOnChainId() {
	s.create("1", "1", 9)
	_, err := s.im.Create(mockCtx, &listing.Listing{
		OnChainListingId: ptr.Int64(9),
		Seller:           seller,
		AssetContract:    edition,
		TokenId:          "1",
		Price:            "1",
		Quantity:         1,
	})
	s.Equal(domain.ErrConflict, err)
}

func (s *listingSuite) TestCancelTwice() {
	id := s.create("1", "0.5", 1)

	s.observer.On("OnStatusChanged", mockCtx, mock.AnythingOfType("*listing.Listing"), listing.StatusActive).Once()
	s.NoError(s.im.UpdateStatus(mockCtx, id, listing.StatusCancelled))
	s.NoError(s.im.UpdateStatus(mockCtx, id, listing.StatusCancelled))

	l, err := s.im.Get(mockCtx, id)
	s.Require().NoError(err)
	s.Equal(listing.StatusCancelled, l.Status)

	s.Equal(domain.ErrInvalidStatusTransition, s.im.UpdateStatus(mockCtx, id, listing.StatusSold))
	s.Equal(domain.ErrInvalidStatusTransition, s.im.UpdateStatus(mockCtx, id, listing.StatusActive))
	s.Equal(domain.ErrBadParamInput, s.im.UpdateStatus(mockCtx, id, listing.Status("gone")))
	s.Equal(domain.ErrNotFound, s.im.UpdateStatus(mockCtx, "listing-0-missing", listing.StatusSold))
}

func (s *listingSuite) TestConcurrentCancel() {
	id := s.create("1", "0.5", 1)
	s.observer.On("OnStatusChanged", mockCtx, mock.AnythingOfType("*listing.Listing"), listing.StatusActive).Once()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.im.UpdateStatus(mockCtx, id, listing.StatusCancelled)
		}(i)
	}
	wg.Wait()

	s.NoError(errs[0])
	s.NoError(errs[1])
	for i := 0; i < 2; i++ {
		l, err := s.im.Get(mockCtx, id)
		s.Require().NoError(err)
		s.Equal(listing.StatusCancelled, l.Status)
	}
}

func (s *listingSuite) TestSoldLeavesActiveViews() {
	id := s.create("4", "0.2", 1)
	other := s.create("2", "0.1", 2)

	ls, err := s.im.ListActive(mockCtx)
	s.Require().NoError(err)
	s.Len(ls, 2)
	s.Equal(other, ls[0].Id)

	ls, err = s.im.ListBySeller(mockCtx, domain.Address(seller.ToLowerStr()))
	s.Require().NoError(err)
	s.Len(ls, 2)

	s.observer.On("OnStatusChanged", mockCtx, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Id == id && l.Status == listing.StatusSold
	}), listing.StatusActive).Once()
	s.Require().NoError(s.im.UpdateStatus(mockCtx, id, listing.StatusSold))

	ls, err = s.im.ListActive(mockCtx)
	s.Require().NoError(err)
	s.Len(ls, 1)
	s.Equal(other, ls[0].Id)

	ls, err = s.im.ListBySeller(mockCtx, seller)
	s.Require().NoError(err)
	s.Len(ls, 1)
	s.Equal(other, ls[0].Id)

	ls, err = s.im.ListBySeller(mockCtx, buyer)
	s.Require().NoError(err)
	s.Len(ls, 0)
}

func (s *listingSuite) TestStats() {
	s.create("4", "0.2", 1)
	s.create("2", "0.15", 2)
	_, err := s.im.Create(mockCtx, &listing.Listing{
		Seller:        buyer,
		AssetContract: edition,
		TokenId:       "3",
		Price:         "1",
		Quantity:      2,
	})
	s.Require().NoError(err)

	stats, err := s.im.Stats(mockCtx, &seller)
	s.Require().NoError(err)
	s.Equal(3, stats.ActiveCount)
	s.Equal(2, stats.SellerActiveCount)
	s.Equal("0.15", stats.FloorPrice)
	s.Equal("2.35", stats.TotalValue)

	stats, err = s.im.Stats(mockCtx, nil)
	s.Require().NoError(err)
	s.Equal(0, stats.SellerActiveCount)
}

func TestStoreUnavailable(t *testing.T) {
	repo := listingMocks.NewRepo(t)
	im := New(&ListingUseCaseCfg{Repo: repo})

	repo.On("FindAll", mockCtx, mock.Anything).Return(nil, errors.New("server selection timeout")).Once()
	_, err := im.ListActive(mockCtx)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}

	repo.On("FindOne", mockCtx, "listing-1-abcdefg").Return(nil, domain.ErrNotFound).Once()
	_, err = im.Get(mockCtx, "listing-1-abcdefg")
	if err != domain.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
