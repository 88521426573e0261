package usecase

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/base/metrics"
	"github.com/x-xyz/listingsync/base/validator"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/domain/marketplace"
)

// purchaseQuantity is the only quantity the contract flow buys per call
var purchaseQuantity = big.NewInt(1)

type MarketplaceUseCaseCfg struct {
	Marketplace marketplace.Marketplace
	Erc1155     marketplace.Erc1155
	Listing     listing.UseCase
	// History is optional
	History history.UseCase
}

type impl struct {
	marketplace marketplace.Marketplace
	erc1155     marketplace.Erc1155
	listing     listing.UseCase
	history     history.UseCase
	met         metrics.Service
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		marketplace: cfg.Marketplace,
		erc1155:     cfg.Erc1155,
		listing:     cfg.Listing,
		history:     cfg.History,
		met:         metrics.New("marketplace"),
	}
}

func precondition(reason string) error {
	return xerrors.Errorf("%s: %w", reason, domain.ErrPreconditionFailed)
}

func signerAddress(signer *bind.TransactOpts) domain.Address {
	return domain.Address(signer.From.Hex()).ToLower()
}

func txFailed(err error) error {
	if errors.Is(err, domain.ErrTransactionFailed) {
		return err
	}
	return xerrors.Errorf("%v: %w", err, domain.ErrTransactionFailed)
}

func (im *impl) CreateListing(c ctx.Ctx, signer *bind.TransactOpts, p marketplace.CreateListingParams) (*marketplace.ListingProgress, error) {
	progress := &marketplace.ListingProgress{State: marketplace.StateUnapproved}
	if signer == nil {
		return progress, precondition("signer not connected")
	}
	if !validator.IsValidAddress(p.AssetContract.ToLowerStr()) {
		return progress, domain.ErrInvalidAddress
	}
	tokenId, err := p.TokenId.ToBigInt()
	if err != nil {
		return progress, err
	}
	if p.Quantity <= 0 {
		return progress, domain.ErrBadParamInput
	}
	price, err := listing.ParsePrice(p.Price)
	if err != nil {
		return progress, err
	}
	seller := signerAddress(signer)
	asset := p.AssetContract.ToLower()
	quantity := big.NewInt(p.Quantity)
	operator := im.marketplace.Address()
	c = ctx.WithFields(c, log.Fields{"seller": seller, "asset": asset, "tokenId": p.TokenId})

	balance, err := im.erc1155.BalanceOf(c, asset, seller, tokenId)
	if err != nil {
		c.WithField("err", err).Error("erc1155.BalanceOf failed")
		return progress, err
	}
	if balance.Cmp(quantity) < 0 {
		return progress, precondition("insufficient token balance")
	}

	approved, err := im.erc1155.IsApprovedForAll(c, asset, seller, operator)
	if err != nil {
		c.WithField("err", err).Error("erc1155.IsApprovedForAll failed")
		return progress, err
	}
	if !approved {
		receipt, err := im.erc1155.SetApprovalForAll(c, signer, asset, operator, true)
		if err != nil {
			c.WithField("err", err).Error("erc1155.SetApprovalForAll failed")
			im.record(c, &history.Record{Account: seller, Type: history.TxTypeApprove, Status: history.TxStatusFailed, AssetContract: asset, Error: err.Error()})
			return progress, txFailed(err)
		}
		progress.ApprovalTx = &receipt.TxHash
		im.record(c, &history.Record{Account: seller, Type: history.TxTypeApprove, Status: history.TxStatusConfirmed, TxHash: receipt.TxHash, AssetContract: asset})
	}
	progress.State = marketplace.StateApproved

	collectionName := p.CollectionName
	if collectionName == "" {
		collectionName = listing.CollectionDisplayName(p.TokenId)
	}
	listRecord := &history.Record{
		Account:         seller,
		Type:            history.TxTypeList,
		AssetContract:   asset,
		TokenIds:        []string{p.TokenId.String()},
		CollectionNames: []string{collectionName},
		Quantity:        p.Quantity,
		Price:           price.String(),
	}

	onChainId, receipt, err := im.marketplace.CreateListing(c, signer, asset, tokenId, quantity, listing.ToWei(price))
	if err != nil {
		c.WithField("err", err).Error("marketplace.CreateListing failed")
		listRecord.Status, listRecord.Error = history.TxStatusFailed, err.Error()
		im.record(c, listRecord)
		return progress, txFailed(err)
	}
	im.met.BumpSum("listing.created", 1)
	if !onChainId.IsInt64() {
		return progress, xerrors.Errorf("listing id %s out of range: %w", onChainId, domain.ErrTransactionFailed)
	}
	id := onChainId.Int64()
	progress.State = marketplace.StateListed
	progress.ListingTx = &receipt.TxHash
	progress.OnChainListingId = &id
	listRecord.Status, listRecord.TxHash, listRecord.OnChainListingId = history.TxStatusConfirmed, receipt.TxHash, &id

	recordId, err := im.listing.Create(c, &listing.Listing{
		OnChainListingId: &id,
		Seller:           seller,
		AssetContract:    asset,
		TokenId:          p.TokenId,
		CollectionName:   collectionName,
		Price:            price.String(),
		Quantity:         p.Quantity,
	})
	if err != nil {
		// listed on chain, RegisterListing can index it later
		c.WithFields(log.Fields{"err": err, "onChainListingId": id}).Error("listing.Create failed")
		im.record(c, listRecord)
		return progress, err
	}
	progress.RecordId = recordId
	listRecord.ListingId = recordId
	im.record(c, listRecord)
	return progress, nil
}

func (im *impl) Purchase(c ctx.Ctx, signer *bind.TransactOpts, recordId string) (*marketplace.PurchaseResult, error) {
	if signer == nil {
		return nil, precondition("buyer not connected")
	}
	l, err := im.listing.Get(c, recordId)
	if err != nil {
		return nil, err
	}
	buyer := signerAddress(signer)
	c = ctx.WithFields(c, log.Fields{"listingId": l.Id, "buyer": buyer})

	if buyer.Equals(l.Seller) {
		return nil, precondition("buyer is the seller")
	}
	if !l.Verifiable() {
		return nil, precondition("listing is not verifiable on chain")
	}
	if !l.IsActive() {
		return nil, precondition("listing is " + string(l.Status))
	}

	onChainId := big.NewInt(*l.OnChainListingId)
	onChain, err := im.marketplace.GetListing(c, onChainId)
	if errors.Is(err, domain.ErrListingNotFound) {
		return nil, precondition("listing not found on chain")
	} else if err != nil {
		c.WithField("err", err).Error("marketplace.GetListing failed")
		return nil, err
	}
	if !onChain.Active {
		im.settle(c, l.Id, listing.StatusSold)
		return nil, precondition("listing no longer active on chain")
	}
	if onChain.Quantity == nil || onChain.Quantity.Cmp(purchaseQuantity) < 0 {
		return nil, precondition("no quantity left on chain")
	}
	cachedWei, err := listing.PriceToWei(l.Price)
	if err != nil || onChain.PricePerItem == nil || onChain.PricePerItem.Cmp(cachedWei) != 0 {
		return nil, precondition("on-chain price differs from listed price")
	}

	tokenId, err := l.TokenId.ToBigInt()
	if err != nil {
		return nil, precondition("malformed token id")
	}
	balance, err := im.erc1155.BalanceOf(c, l.AssetContract, l.Seller, tokenId)
	if err != nil {
		c.WithField("err", err).Error("erc1155.BalanceOf failed")
		return nil, err
	}
	if balance.Cmp(big.NewInt(l.Quantity)) < 0 {
		im.settle(c, l.Id, listing.StatusCancelled)
		return nil, precondition("seller balance no longer covers the listing")
	}

	purchaseRecord := &history.Record{
		Account:          buyer,
		Type:             history.TxTypePurchase,
		ListingId:        l.Id,
		OnChainListingId: l.OnChainListingId,
		AssetContract:    l.AssetContract,
		TokenIds:         []string{l.TokenId.String()},
		CollectionNames:  []string{l.CollectionName},
		Quantity:         purchaseQuantity.Int64(),
		Price:            l.Price,
	}
	receipt, err := im.marketplace.Purchase(c, signer, onChainId, purchaseQuantity, onChain.PricePerItem)
	if err != nil {
		c.WithField("err", err).Error("marketplace.Purchase failed")
		purchaseRecord.Status, purchaseRecord.Error = history.TxStatusFailed, err.Error()
		im.record(c, purchaseRecord)
		return nil, txFailed(err)
	}
	im.met.BumpSum("purchase.confirmed", 1)
	purchaseRecord.Status, purchaseRecord.TxHash = history.TxStatusConfirmed, receipt.TxHash
	im.record(c, purchaseRecord)

	// the reconciler catches up if this write fails
	im.settle(c, l.Id, listing.StatusSold)

	return &marketplace.PurchaseResult{
		RecordId:         l.Id,
		OnChainListingId: *l.OnChainListingId,
		TxHash:           receipt.TxHash,
		Value:            listing.FromWei(onChain.PricePerItem).String(),
	}, nil
}

func (im *impl) Cancel(c ctx.Ctx, seller domain.Address, recordId string) error {
	l, err := im.listing.Get(c, recordId)
	if err != nil {
		return err
	}
	if !l.Seller.Equals(seller) {
		return domain.ErrForbidden
	}
	if err := im.listing.UpdateStatus(c, l.Id, listing.StatusCancelled); err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": l.Id}).Error("listing.UpdateStatus failed")
		return err
	}
	return nil
}

func (im *impl) RegisterListing(c ctx.Ctx, seller domain.Address, onChainListingId int64, collectionName string) (*listing.Listing, error) {
	onChain, err := im.CheckListing(c, onChainListingId)
	if err != nil {
		return nil, err
	}
	if !onChain.Active {
		return nil, precondition("listing not active on chain")
	}
	if !onChain.Seller.Equals(seller) {
		return nil, domain.ErrForbidden
	}
	if !onChain.Quantity.IsInt64() || onChain.Quantity.Sign() <= 0 {
		return nil, precondition("no quantity left on chain")
	}

	tokenId := domain.TokenId(onChain.TokenId.String())
	if collectionName == "" {
		collectionName = listing.CollectionDisplayName(tokenId)
	}
	recordId, err := im.listing.Create(c, &listing.Listing{
		OnChainListingId: &onChainListingId,
		Seller:           onChain.Seller,
		AssetContract:    onChain.NftContract,
		TokenId:          tokenId,
		CollectionName:   collectionName,
		Price:            listing.FromWei(onChain.PricePerItem).String(),
		Quantity:         onChain.Quantity.Int64(),
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "onChainListingId": onChainListingId}).Error("listing.Create failed")
		return nil, err
	}
	l, err := im.listing.Get(c, recordId)
	if err != nil {
		return nil, err
	}
	im.record(c, &history.Record{
		Account:          l.Seller,
		Type:             history.TxTypeList,
		Status:           history.TxStatusConfirmed,
		ListingId:        l.Id,
		OnChainListingId: l.OnChainListingId,
		AssetContract:    l.AssetContract,
		TokenIds:         []string{l.TokenId.String()},
		CollectionNames:  []string{l.CollectionName},
		Quantity:         l.Quantity,
		Price:            l.Price,
	})
	return l, nil
}

func (im *impl) ConfirmPurchase(c ctx.Ctx, recordId string) (*listing.Listing, error) {
	l, err := im.listing.Get(c, recordId)
	if err != nil {
		return nil, err
	}
	if l.Status == listing.StatusSold {
		return l, nil
	}
	if !l.Verifiable() {
		return nil, precondition("listing is not verifiable on chain")
	}
	onChain, err := im.CheckListing(c, *l.OnChainListingId)
	if err != nil {
		return nil, err
	}
	if onChain.Active {
		return nil, precondition("listing still active on chain")
	}
	if err := im.listing.UpdateStatus(c, l.Id, listing.StatusSold); err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": l.Id}).Error("listing.UpdateStatus failed")
		return nil, err
	}
	return im.listing.Get(c, l.Id)
}

func (im *impl) CheckListing(c ctx.Ctx, onChainListingId int64) (*marketplace.OnChainListing, error) {
	if onChainListingId < 0 {
		return nil, domain.ErrBadParamInput
	}
	onChain, err := im.marketplace.GetListing(c, big.NewInt(onChainListingId))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "onChainListingId": onChainListingId}).Warn("marketplace.GetListing failed")
		return nil, err
	}
	return onChain, nil
}

// settle corrects drift between the record and the contract, failures only log
func (im *impl) settle(c ctx.Ctx, id string, status listing.Status) {
	if err := im.listing.UpdateStatus(c, id, status); err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": id, "status": status}).Warn("listing.UpdateStatus failed")
	}
}

func (im *impl) record(c ctx.Ctx, r *history.Record) {
	if im.history == nil {
		return
	}
	if err := im.history.Record(c, r); err != nil {
		c.WithFields(log.Fields{"err": err, "type": r.Type}).Warn("history.Record failed")
	}
}
