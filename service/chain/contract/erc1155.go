package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/listingsync/base/abi"
	bCtx "github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/marketplace"
	"github.com/x-xyz/listingsync/service/chain"
)

type Erc1155 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc1155(chainService chain.Client) marketplace.Erc1155 {
	return &Erc1155{
		abi:          baseabi.ERC1155TokenABI,
		chainService: chainService,
	}
}

func (e *Erc1155) BalanceOf(ctx bCtx.Ctx, asset, owner domain.Address, tokenId *big.Int) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(asset.ToLowerStr()), e.abi, "balanceOf", common.HexToAddress(owner.ToLowerStr()), tokenId)
	if err != nil {
		return nil, xerrors.Errorf("balanceOf: %v: %w", err, domain.ErrChainReadFailure)
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc1155) IsApprovedForAll(ctx bCtx.Ctx, asset, owner, operator domain.Address) (bool, error) {
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(asset.ToLowerStr()), e.abi, "isApprovedForAll", common.HexToAddress(owner.ToLowerStr()), common.HexToAddress(operator.ToLowerStr()))
	if err != nil {
		return false, xerrors.Errorf("isApprovedForAll: %v: %w", err, domain.ErrChainReadFailure)
	}
	return unpacked[0].(bool), nil
}

func (e *Erc1155) SetApprovalForAll(ctx bCtx.Ctx, signer *bind.TransactOpts, asset, operator domain.Address, approved bool) (*marketplace.Receipt, error) {
	tx, err := e.chainService.Transact(ctx, signer, common.HexToAddress(asset.ToLowerStr()), e.abi, "setApprovalForAll", common.HexToAddress(operator.ToLowerStr()), approved)
	if err != nil {
		return nil, err
	}
	receipt, err := e.chainService.WaitMined(ctx, tx)
	if err != nil {
		return nil, err
	}
	return toReceipt(receipt), nil
}
