package contract

import (
	"math/big"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/listingsync/base/abi"
	bCtx "github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/marketplace"
	"github.com/x-xyz/listingsync/service/chain"
)

type Marketplace struct {
	chainService chain.Client
	address      common.Address
	abi          ethabi.ABI
}

func NewMarketplace(chainService chain.Client, address domain.Address) marketplace.Marketplace {
	return &Marketplace{
		chainService: chainService,
		address:      common.HexToAddress(address.ToLowerStr()),
		abi:          baseabi.MarketplaceABI,
	}
}

func (m *Marketplace) Address() domain.Address {
	return domain.Address(m.address.Hex()).ToLower()
}

// a reverted getListing call means the id is out of range
func isRevert(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

func (m *Marketplace) GetListing(ctx bCtx.Ctx, listingId *big.Int) (*marketplace.OnChainListing, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, m.abi, "getListing", listingId)
	if err != nil {
		if isRevert(err) {
			return nil, domain.ErrListingNotFound
		}
		return nil, xerrors.Errorf("getListing(%s): %v: %w", listingId, err, domain.ErrChainReadFailure)
	}
	out, err := baseabi.ToGetListingOutput(unpacked)
	if err != nil {
		ctx.WithField("err", err).Error("baseabi.ToGetListingOutput failed")
		return nil, xerrors.Errorf("getListing(%s): %v: %w", listingId, err, domain.ErrChainReadFailure)
	}
	if out.Seller == (common.Address{}) {
		return nil, domain.ErrListingNotFound
	}
	return &marketplace.OnChainListing{
		ListingId:    new(big.Int).Set(listingId),
		Seller:       domain.Address(out.Seller.Hex()).ToLower(),
		NftContract:  domain.Address(out.NftContract.Hex()).ToLower(),
		TokenId:      out.TokenId,
		Quantity:     out.Quantity,
		PricePerItem: out.PricePerItem,
		Active:       out.Active,
	}, nil
}

func (m *Marketplace) CreateListing(ctx bCtx.Ctx, signer *bind.TransactOpts, nftContract domain.Address, tokenId, quantity, pricePerItem *big.Int) (*big.Int, *marketplace.Receipt, error) {
	tx, err := m.chainService.Transact(ctx, signer, m.address, m.abi, "createListing", common.HexToAddress(nftContract.ToLowerStr()), tokenId, quantity, pricePerItem)
	if err != nil {
		return nil, nil, err
	}
	receipt, err := m.chainService.WaitMined(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	created, err := baseabi.FindListingCreated(receipt, m.address)
	if err != nil {
		ctx.WithField("err", err).WithField("tx", tx.Hash().Hex()).Error("baseabi.FindListingCreated failed")
		return nil, toReceipt(receipt), xerrors.Errorf("%v: %w", err, domain.ErrTransactionFailed)
	}
	return created.ListingId, toReceipt(receipt), nil
}

func (m *Marketplace) Purchase(ctx bCtx.Ctx, signer *bind.TransactOpts, listingId, quantity, value *big.Int) (*marketplace.Receipt, error) {
	opts := *signer
	opts.Value = value
	tx, err := m.chainService.Transact(ctx, &opts, m.address, m.abi, "purchase", listingId, quantity)
	if err != nil {
		return nil, err
	}
	receipt, err := m.chainService.WaitMined(ctx, tx)
	if err != nil {
		return nil, err
	}
	return toReceipt(receipt), nil
}

func toReceipt(r *types.Receipt) *marketplace.Receipt {
	receipt := &marketplace.Receipt{
		TxHash:  domain.TxHash(r.TxHash.Hex()).ToLower(),
		GasUsed: r.GasUsed,
	}
	if r.BlockNumber != nil {
		receipt.BlockNumber = r.BlockNumber.Uint64()
	}
	return receipt
}
