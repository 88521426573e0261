package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

func TestGetListingOutput(t *testing.T) {
	req := require.New(t)

	seller := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	nft := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	price, _ := new(big.Int).SetString("200000000000000000", 10)

	data, err := MarketplaceABI.Methods["getListing"].Outputs.Pack(seller, nft, big.NewInt(4), big.NewInt(1), price, true)
	req.NoError(err)

	unpacked, err := MarketplaceABI.Unpack("getListing", data)
	req.NoError(err)

	out, err := ToGetListingOutput(unpacked)
	req.NoError(err)
	req.Equal(seller, out.Seller)
	req.Equal(nft, out.NftContract)
	req.Equal(int64(4), out.TokenId.Int64())
	req.Equal(int64(1), out.Quantity.Int64())
	req.Equal(0, price.Cmp(out.PricePerItem))
	req.True(out.Active)
}

func TestFindListingCreated(t *testing.T) {
	req := require.New(t)

	market := common.HexToAddress("0x3c4cb2abecffa20b0be9b05d1e81c45bc46c5a7a")
	seller := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	nft := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	event := MarketplaceABI.Events["ListingCreated"]

	data, err := event.Inputs.NonIndexed().Pack(big.NewInt(4), big.NewInt(2), big.NewInt(1000))
	req.NoError(err)

	receipt := &types.Receipt{Logs: []*types.Log{
		{Address: nft, Topics: []common.Hash{common.HexToHash("0x01")}},
		{
			Address: market,
			Topics: []common.Hash{
				event.ID,
				common.BigToHash(big.NewInt(7)),
				common.BytesToHash(seller.Bytes()),
				common.BytesToHash(nft.Bytes()),
			},
			Data: data,
		},
	}}

	created, err := FindListingCreated(receipt, market)
	req.NoError(err)
	req.Equal(int64(7), created.ListingId.Int64())
	req.Equal(seller, created.Seller)
	req.Equal(nft, created.NftContract)
	req.Equal(int64(4), created.TokenId.Int64())
	req.Equal(int64(2), created.Quantity.Int64())
	req.Equal(int64(1000), created.PricePerItem.Int64())

	_, err = FindListingCreated(&types.Receipt{}, market)
	req.Equal(ErrNoListingCreatedLog, err)
}
