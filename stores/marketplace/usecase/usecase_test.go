package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/ptr"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	historyMocks "github.com/x-xyz/listingsync/domain/history/mocks"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/domain/marketplace"
	marketplaceMocks "github.com/x-xyz/listingsync/domain/marketplace/mocks"
	"github.com/x-xyz/listingsync/stores/listing/repository"
	listingUsecase "github.com/x-xyz/listingsync/stores/listing/usecase"
)

var (
	mockCtx = ctx.Background()
	seller  = domain.Address("0x7b8c1f0a5a4e5b5e2d1f9a2c3b4d5e6f7a8b9c0d")
	buyer   = domain.Address("0x1111111111111111111111111111111111111111")
	edition = domain.Address("0x2222222222222222222222222222222222222222")
	market  = domain.Address("0x3333333333333333333333333333333333333333")

	sellerSigner = &bind.TransactOpts{From: common.HexToAddress(string(seller))}
	buyerSigner  = &bind.TransactOpts{From: common.HexToAddress(string(buyer))}

	pointTwoEth = mustWei("0.2")
)

func mustWei(price string) *big.Int {
	wei, err := listing.PriceToWei(price)
	if err != nil {
		panic(err)
	}
	return wei
}

func bigEq(n *big.Int) interface{} {
	return mock.MatchedBy(func(b *big.Int) bool { return b != nil && b.Cmp(n) == 0 })
}

type marketplaceSuite struct {
	suite.Suite

	market  *marketplaceMocks.Marketplace
	erc1155 *marketplaceMocks.Erc1155
	history *historyMocks.UseCase
	listing listing.UseCase
	im      marketplace.UseCase
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupTest() {
	s.market = marketplaceMocks.NewMarketplace(s.T())
	s.erc1155 = marketplaceMocks.NewErc1155(s.T())
	s.history = historyMocks.NewUseCase(s.T())
	s.listing = listingUsecase.New(&listingUsecase.ListingUseCaseCfg{Repo: repository.NewMemoryRepo()})
	s.im = New(&MarketplaceUseCaseCfg{
		Marketplace: s.market,
		Erc1155:     s.erc1155,
		Listing:     s.listing,
		History:     s.history,
	})
	s.history.On("Record", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (s *marketplaceSuite) seed(onChainId int64, quantity int64) *listing.Listing {
	id, err := s.listing.Create(mockCtx, &listing.Listing{
		OnChainListingId: ptr.Int64(onChainId),
		Seller:           seller,
		AssetContract:    edition,
		TokenId:          "4",
		Price:            "0.2",
		Quantity:         quantity,
	})
	s.Require().NoError(err)
	l, err := s.listing.Get(mockCtx, id)
	s.Require().NoError(err)
	return l
}

func onChainView(id int64, active bool, quantity int64, price *big.Int) *marketplace.OnChainListing {
	return &marketplace.OnChainListing{
		ListingId:    big.NewInt(id),
		Seller:       seller,
		NftContract:  edition,
		TokenId:      big.NewInt(4),
		Quantity:     big.NewInt(quantity),
		PricePerItem: price,
		Active:       active,
	}
}

func (s *marketplaceSuite) status(id string) listing.Status {
	l, err := s.listing.Get(mockCtx, id)
	s.Require().NoError(err)
	return l.Status
}

func (s *marketplaceSuite) TestListAndBuy() {
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, bigEq(big.NewInt(4))).Return(big.NewInt(3), nil).Once()
	s.market.On("Address").Return(market)
	s.erc1155.On("IsApprovedForAll", mock.Anything, edition, seller, market).Return(false, nil).Once()
	s.erc1155.On("SetApprovalForAll", mock.Anything, sellerSigner, edition, market, true).Return(&marketplace.Receipt{TxHash: "0xa1"}, nil).Once()
	s.market.On("CreateListing", mock.Anything, sellerSigner, edition, bigEq(big.NewInt(4)), bigEq(big.NewInt(1)), bigEq(pointTwoEth)).
		Return(big.NewInt(12), &marketplace.Receipt{TxHash: "0xb2"}, nil).Once()

	progress, err := s.im.CreateListing(mockCtx, sellerSigner, marketplace.CreateListingParams{
		AssetContract: edition,
		TokenId:       "4",
		Quantity:      1,
		Price:         "0.2",
	})
	s.Require().NoError(err)
	s.Equal(marketplace.StateListed, progress.State)
	s.Equal(domain.TxHash("0xa1"), *progress.ApprovalTx)
	s.Equal(domain.TxHash("0xb2"), *progress.ListingTx)
	s.Equal(int64(12), *progress.OnChainListingId)

	l, err := s.listing.Get(mockCtx, progress.RecordId)
	s.Require().NoError(err)
	s.Equal(listing.StatusActive, l.Status)
	s.Equal("Batch Master", l.CollectionName)
	s.Equal("0.2", l.Price)
	s.Equal(int64(1), l.Quantity)

	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(12))).Return(onChainView(12, true, 1, pointTwoEth), nil).Once()
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, bigEq(big.NewInt(4))).Return(big.NewInt(3), nil).Once()
	s.market.On("Purchase", mock.Anything, buyerSigner, bigEq(big.NewInt(12)), bigEq(big.NewInt(1)), bigEq(pointTwoEth)).
		Return(&marketplace.Receipt{TxHash: "0xc3"}, nil).Once()

	res, err := s.im.Purchase(mockCtx, buyerSigner, l.Id)
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xc3"), res.TxHash)
	s.Equal("0.2", res.Value)
	s.Equal(listing.StatusSold, s.status(l.Id))

	active, err := s.listing.ListActive(mockCtx)
	s.Require().NoError(err)
	s.Empty(active)
	bySeller, err := s.listing.ListBySeller(mockCtx, seller)
	s.Require().NoError(err)
	s.Empty(bySeller)

	s.history.AssertCalled(s.T(), "Record", mock.Anything, mock.MatchedBy(func(r *history.Record) bool {
		return r.Type == history.TxTypePurchase && r.Status == history.TxStatusConfirmed && r.Account == buyer
	}))
}

func (s *marketplaceSuite) TestCreateListingSkipsApproval() {
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, mock.Anything).Return(big.NewInt(1), nil).Once()
	s.market.On("Address").Return(market)
	s.erc1155.On("IsApprovedForAll", mock.Anything, edition, seller, market).Return(true, nil).Once()
	s.market.On("CreateListing", mock.Anything, sellerSigner, edition, mock.Anything, mock.Anything, mock.Anything).
		Return(big.NewInt(1), &marketplace.Receipt{TxHash: "0xb2"}, nil).Once()

	progress, err := s.im.CreateListing(mockCtx, sellerSigner, marketplace.CreateListingParams{
		AssetContract: edition, TokenId: "4", Quantity: 1, Price: "0.2", CollectionName: "Custom",
	})
	s.Require().NoError(err)
	s.Nil(progress.ApprovalTx)
	s.erc1155.AssertNotCalled(s.T(), "SetApprovalForAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	l, err := s.listing.Get(mockCtx, progress.RecordId)
	s.Require().NoError(err)
	s.Equal("Custom", l.CollectionName)
}

func (s *marketplaceSuite) TestCreateListingFailureWritesNoRecord() {
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, mock.Anything).Return(big.NewInt(1), nil).Once()
	s.market.On("Address").Return(market)
	s.erc1155.On("IsApprovedForAll", mock.Anything, edition, seller, market).Return(true, nil).Once()
	s.market.On("CreateListing", mock.Anything, sellerSigner, edition, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, xerrors.Errorf("reverted: %w", domain.ErrTransactionFailed)).Once()

	progress, err := s.im.CreateListing(mockCtx, sellerSigner, marketplace.CreateListingParams{
		AssetContract: edition, TokenId: "4", Quantity: 1, Price: "0.2",
	})
	s.Require().True(errors.Is(err, domain.ErrTransactionFailed))
	s.Equal(marketplace.StateApproved, progress.State)
	s.Empty(progress.RecordId)

	bySeller, err := s.listing.ListBySeller(mockCtx, seller)
	s.Require().NoError(err)
	s.Empty(bySeller)
}

func (s *marketplaceSuite) TestCreateListingApprovalFailure() {
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, mock.Anything).Return(big.NewInt(1), nil).Once()
	s.market.On("Address").Return(market)
	s.erc1155.On("IsApprovedForAll", mock.Anything, edition, seller, market).Return(false, nil).Once()
	s.erc1155.On("SetApprovalForAll", mock.Anything, sellerSigner, edition, market, true).Return(nil, errors.New("user rejected")).Once()

	progress, err := s.im.CreateListing(mockCtx, sellerSigner, marketplace.CreateListingParams{
		AssetContract: edition, TokenId: "4", Quantity: 1, Price: "0.2",
	})
	s.Require().True(errors.Is(err, domain.ErrTransactionFailed))
	s.Equal(marketplace.StateUnapproved, progress.State)
	s.market.AssertNotCalled(s.T(), "CreateListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestCreateListingInsufficientBalance() {
	s.market.On("Address").Return(market)
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, mock.Anything).Return(big.NewInt(1), nil).Once()

	_, err := s.im.CreateListing(mockCtx, sellerSigner, marketplace.CreateListingParams{
		AssetContract: edition, TokenId: "4", Quantity: 2, Price: "0.2",
	})
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))
}

func (s *marketplaceSuite) TestCreateListingInvalidInput() {
	s.market.On("Address").Return(market).Maybe()
	for _, p := range []marketplace.CreateListingParams{
		{AssetContract: "nope", TokenId: "4", Quantity: 1, Price: "0.2"},
		{AssetContract: edition, TokenId: "x", Quantity: 1, Price: "0.2"},
		{AssetContract: edition, TokenId: "4", Quantity: 0, Price: "0.2"},
		{AssetContract: edition, TokenId: "4", Quantity: 1, Price: "-1"},
	} {
		_, err := s.im.CreateListing(mockCtx, sellerSigner, p)
		s.Error(err)
	}
	_, err := s.im.CreateListing(mockCtx, nil, marketplace.CreateListingParams{})
	s.True(errors.Is(err, domain.ErrPreconditionFailed))
}

func (s *marketplaceSuite) TestSelfPurchaseSendsNothing() {
	l := s.seed(1, 1)

	_, err := s.im.Purchase(mockCtx, sellerSigner, l.Id)
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))
	s.market.AssertNotCalled(s.T(), "GetListing", mock.Anything, mock.Anything)
	s.market.AssertNotCalled(s.T(), "Purchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.Equal(listing.StatusActive, s.status(l.Id))

	_, err = s.im.Purchase(mockCtx, nil, l.Id)
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))
}

func (s *marketplaceSuite) TestPurchaseUnverifiable() {
	id, err := s.listing.Create(mockCtx, &listing.Listing{
		Seller: seller, AssetContract: edition, TokenId: "4", Price: "0.2", Quantity: 1,
	})
	s.Require().NoError(err)

	_, err = s.im.Purchase(mockCtx, buyerSigner, id)
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))
}

func (s *marketplaceSuite) TestPurchaseSellerBalanceShort() {
	l := s.seed(2, 5)
	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(2))).Return(onChainView(2, true, 5, pointTwoEth), nil).Once()
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, bigEq(big.NewInt(4))).Return(big.NewInt(4), nil).Once()

	_, err := s.im.Purchase(mockCtx, buyerSigner, l.Id)
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))
	s.market.AssertNotCalled(s.T(), "Purchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.Equal(listing.StatusCancelled, s.status(l.Id))
}

func (s *marketplaceSuite) TestPurchaseInactiveOnChain() {
	l := s.seed(3, 1)
	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(3))).Return(onChainView(3, false, 0, pointTwoEth), nil).Once()

	_, err := s.im.Purchase(mockCtx, buyerSigner, l.Id)
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))
	s.Equal(listing.StatusSold, s.status(l.Id))
}

func (s *marketplaceSuite) TestPurchasePriceChanged() {
	l := s.seed(4, 1)
	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(4))).Return(onChainView(4, true, 1, mustWei("0.3")), nil).Once()

	_, err := s.im.Purchase(mockCtx, buyerSigner, l.Id)
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))
	s.Equal(listing.StatusActive, s.status(l.Id))
}

func (s *marketplaceSuite) TestPurchaseChainReadFailure() {
	l := s.seed(5, 1)
	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(5))).Return(nil, xerrors.Errorf("timeout: %w", domain.ErrChainReadFailure)).Once()

	_, err := s.im.Purchase(mockCtx, buyerSigner, l.Id)
	s.Require().True(errors.Is(err, domain.ErrChainReadFailure))
	s.Equal(listing.StatusActive, s.status(l.Id))
}

func (s *marketplaceSuite) TestPurchaseRevertLeavesRecord() {
	l := s.seed(6, 1)
	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(6))).Return(onChainView(6, true, 1, pointTwoEth), nil).Once()
	s.erc1155.On("BalanceOf", mock.Anything, edition, seller, mock.Anything).Return(big.NewInt(1), nil).Once()
	s.market.On("Purchase", mock.Anything, buyerSigner, bigEq(big.NewInt(6)), bigEq(big.NewInt(1)), bigEq(pointTwoEth)).
		Return(nil, xerrors.Errorf("status 0: %w", domain.ErrTransactionFailed)).Once()

	_, err := s.im.Purchase(mockCtx, buyerSigner, l.Id)
	s.Require().True(errors.Is(err, domain.ErrTransactionFailed))
	s.Equal(listing.StatusActive, s.status(l.Id))
	s.history.AssertCalled(s.T(), "Record", mock.Anything, mock.MatchedBy(func(r *history.Record) bool {
		return r.Type == history.TxTypePurchase && r.Status == history.TxStatusFailed
	}))
}

func (s *marketplaceSuite) TestCancel() {
	l := s.seed(7, 1)

	s.Require().Equal(domain.ErrForbidden, s.im.Cancel(mockCtx, buyer, l.Id))
	s.Require().NoError(s.im.Cancel(mockCtx, domain.Address("0x7B8C1F0A5A4E5B5E2D1F9A2C3B4D5E6F7A8B9C0D"), l.Id))
	s.Require().NoError(s.im.Cancel(mockCtx, seller, l.Id))
	s.Equal(listing.StatusCancelled, s.status(l.Id))
}

func (s *marketplaceSuite) TestRegisterListing() {
	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(8))).Return(onChainView(8, true, 2, pointTwoEth), nil).Twice()

	_, err := s.im.RegisterListing(mockCtx, buyer, 8, "")
	s.Require().Equal(domain.ErrForbidden, err)

	l, err := s.im.RegisterListing(mockCtx, seller, 8, "")
	s.Require().NoError(err)
	s.Equal("0.2", l.Price)
	s.Equal(int64(2), l.Quantity)
	s.Equal("Batch Master", l.CollectionName)
	s.Equal(int64(8), *l.OnChainListingId)

	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(8))).Return(onChainView(8, true, 2, pointTwoEth), nil).Once()
	_, err = s.im.RegisterListing(mockCtx, seller, 8, "")
	s.Require().Equal(domain.ErrConflict, err)

	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(9))).Return(nil, domain.ErrListingNotFound).Once()
	_, err = s.im.RegisterListing(mockCtx, seller, 9, "")
	s.Require().Equal(domain.ErrListingNotFound, err)
}

func (s *marketplaceSuite) TestConfirmPurchase() {
	l := s.seed(10, 1)
	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(10))).Return(onChainView(10, true, 1, pointTwoEth), nil).Once()
	_, err := s.im.ConfirmPurchase(mockCtx, l.Id)
	s.Require().True(errors.Is(err, domain.ErrPreconditionFailed))

	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(10))).Return(onChainView(10, false, 0, pointTwoEth), nil).Once()
	got, err := s.im.ConfirmPurchase(mockCtx, l.Id)
	s.Require().NoError(err)
	s.Equal(listing.StatusSold, got.Status)

	got, err = s.im.ConfirmPurchase(mockCtx, l.Id)
	s.Require().NoError(err)
	s.Equal(listing.StatusSold, got.Status)
}

func (s *marketplaceSuite) TestCheckListing() {
	_, err := s.im.CheckListing(mockCtx, -1)
	s.Require().Equal(domain.ErrBadParamInput, err)

	s.market.On("GetListing", mock.Anything, bigEq(big.NewInt(0))).Return(onChainView(0, true, 1, pointTwoEth), nil).Once()
	view, err := s.im.CheckListing(mockCtx, 0)
	s.Require().NoError(err)
	s.True(view.Active)
}
