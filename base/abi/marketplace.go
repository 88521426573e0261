package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var MarketplaceABI abi.ABI

var ErrNoListingCreatedLog = errors.New("no ListingCreated log in receipt")

var marketplaceABI = `[{"type":"function","name":"getListing","stateMutability":"view","inputs":[{"type":"uint256","name":"listingId"}],"outputs":[{"type":"address","name":"seller"},{"type":"address","name":"nftContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"pricePerItem"},{"type":"bool","name":"active"}]},{"type":"function","name":"createListing","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nftContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"pricePerItem"}],"outputs":[{"type":"uint256","name":"listingId"}]},{"type":"function","name":"purchase","stateMutability":"payable","inputs":[{"type":"uint256","name":"listingId"},{"type":"uint256","name":"quantity"}],"outputs":[]},{"type":"event","anonymous":false,"name":"ListingCreated","inputs":[{"type":"uint256","name":"listingId","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nftContract","indexed":true},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"pricePerItem"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

type GetListingOutput struct {
	Seller       common.Address
	NftContract  common.Address
	TokenId      *big.Int
	Quantity     *big.Int
	PricePerItem *big.Int
	Active       bool
}

func ToGetListingOutput(unpacked []interface{}) (*GetListingOutput, error) {
	out := new(GetListingOutput)
	if err := MarketplaceABI.Methods["getListing"].Outputs.Copy(out, unpacked); err != nil {
		return nil, err
	}
	return out, nil
}

type ListingCreatedLog struct {
	ListingId    *big.Int       // indexed
	Seller       common.Address // indexed
	NftContract  common.Address // indexed
	TokenId      *big.Int
	Quantity     *big.Int
	PricePerItem *big.Int
}

func ToListingCreatedLog(log *types.Log) (*ListingCreatedLog, error) {
	if len(log.Topics) < 4 || log.Topics[0] != MarketplaceABI.Events["ListingCreated"].ID {
		return nil, ErrNoListingCreatedLog
	}
	var created ListingCreatedLog
	if err := MarketplaceABI.UnpackIntoInterface(&created, "ListingCreated", log.Data); err != nil {
		return nil, err
	}
	created.ListingId = log.Topics[1].Big()
	created.Seller = common.BytesToAddress(log.Topics[2].Bytes())
	created.NftContract = common.BytesToAddress(log.Topics[3].Bytes())
	return &created, nil
}

// FindListingCreated returns the first ListingCreated log emitted by market.
func FindListingCreated(receipt *types.Receipt, market common.Address) (*ListingCreatedLog, error) {
	for _, log := range receipt.Logs {
		if log.Address != market {
			continue
		}
		if created, err := ToListingCreatedLog(log); err == nil {
			return created, nil
		}
	}
	return nil, ErrNoListingCreatedLog
}
