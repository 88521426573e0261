package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	historyMocks "github.com/x-xyz/listingsync/domain/history/mocks"
	"github.com/x-xyz/listingsync/domain/listing"
)

type historySuite struct {
	suite.Suite

	ctx  ctx.Ctx
	repo *historyMocks.Repo
	im   *impl
	now  time.Time
}

func TestHistorySuite(t *testing.T) {
	suite.Run(t, new(historySuite))
}

func (s *historySuite) SetupTest() {
	s.ctx = ctx.Background()
	s.repo = historyMocks.NewRepo(s.T())
	s.now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.im = New(s.repo).(*impl)
	s.im.timeNow = func() time.Time { return s.now }
}

func (s *historySuite) TestRecord() {
	rec := &history.Record{
		Account:       "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
		AssetContract: "0x76BE3B62873462D2142405439777E971754E8E77",
		Type:          history.TxTypePurchase,
		Status:        history.TxStatusConfirmed,
	}
	s.repo.On("Append", s.ctx, mock.MatchedBy(func(r *history.Record) bool {
		return r.Account == "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d" &&
			r.AssetContract == "0x76be3b62873462d2142405439777e971754e8e77" &&
			r.Id != "" && r.Timestamp.Equal(s.now)
	})).Return(nil).Once()
	s.Require().NoError(s.im.Record(s.ctx, rec))

	s.Require().Equal(domain.ErrInvalidAddress, s.im.Record(s.ctx, &history.Record{Account: "nobody"}))
}

func (s *historySuite) TestListClampsLimit() {
	account := domain.Address("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
	s.repo.On("FindAll", s.ctx, account.ToLower(), history.MaxRecords).Return([]*history.Record{{Id: "h1"}}, nil).Twice()

	res, err := s.im.List(s.ctx, account, 0)
	s.Require().NoError(err)
	s.Require().Len(res, 1)

	_, err = s.im.List(s.ctx, account, 500)
	s.Require().NoError(err)

	s.repo.On("FindAll", s.ctx, account.ToLower(), 5).Return(nil, domain.ErrStoreUnavailable).Once()
	_, err = s.im.List(s.ctx, account, 5)
	s.Require().Equal(domain.ErrStoreUnavailable, err)
}

func (s *historySuite) TestRecorder() {
	onChainId := int64(4)
	l := &listing.Listing{
		Id:               "listing-1-abcdefg",
		OnChainListingId: &onChainId,
		Seller:           "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		AssetContract:    "0x76be3b62873462d2142405439777e971754e8e77",
		TokenId:          "4",
		CollectionName:   "Batch Drop #4",
		Price:            "0.2",
		Quantity:         1,
		Status:           listing.StatusSold,
	}
	s.repo.On("Append", s.ctx, mock.MatchedBy(func(r *history.Record) bool {
		return r.Type == history.TxTypeSold && r.ListingId == l.Id && r.TokenIds[0] == "4" && *r.OnChainListingId == 4
	})).Return(nil).Once()
	NewRecorder(s.im).OnStatusChanged(s.ctx, l, listing.StatusActive)

	l.Status = listing.StatusCancelled
	s.repo.On("Append", s.ctx, mock.MatchedBy(func(r *history.Record) bool {
		return r.Type == history.TxTypeCancel
	})).Return(domain.ErrStoreUnavailable).Once()
	NewRecorder(s.im).OnStatusChanged(s.ctx, l, listing.StatusActive)

	l.Status = listing.StatusActive
	NewRecorder(s.im).OnStatusChanged(s.ctx, l, listing.StatusActive)
}
