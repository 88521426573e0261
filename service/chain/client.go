package chain

import (
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/base/backoff"
	bCtx "github.com/x-xyz/listingsync/base/ctx"
	bEthereum "github.com/x-xyz/listingsync/base/ethereum"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/base/metrics"
	"github.com/x-xyz/listingsync/domain"
)

type ClientCfg struct {
	ChainId            domain.ChainId
	RpcUrl             string
	MaxConcurrentCalls int
	// ReceiptPoll is the first interval between receipt lookups
	ReceiptPoll time.Duration
	// ReceiptTimeout bounds WaitMined
	ReceiptTimeout time.Duration
}

type Client interface {
	ChainId() domain.ChainId
	Backend() domain.EthClientRepo
	BlockNumber(ctx bCtx.Ctx) (uint64, error)
	Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends a call to method, it does not wait for it to be mined
	Transact(ctx bCtx.Ctx, signer *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error)
	// WaitMined returns the receipt of a successful transaction, a reverted one
	// wraps domain.ErrTransactionFailed
	WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error)
}

type clientImpl struct {
	cfg     ClientCfg
	backend domain.EthClientRepo
	met     metrics.Service
}

func NewClient(ctx bCtx.Ctx, cfg ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
			"url":     cfg.RpcUrl,
		}).Error("ethclient.DialContext failed")
		return nil, err
	}
	return NewClientWithBackend(cfg, bEthereum.NewThrottledClient(client, cfg.MaxConcurrentCalls)), nil
}

func NewClientWithBackend(cfg ClientCfg, backend domain.EthClientRepo) Client {
	if cfg.ReceiptPoll <= 0 {
		cfg.ReceiptPoll = time.Second
	}
	if cfg.ReceiptTimeout <= 0 {
		cfg.ReceiptTimeout = 3 * time.Minute
	}
	return &clientImpl{
		cfg:     cfg,
		backend: backend,
		met:     metrics.New("chain"),
	}
}

func (c *clientImpl) ChainId() domain.ChainId {
	return c.cfg.ChainId
}

func (c *clientImpl) Backend() domain.EthClientRepo {
	return c.backend
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	return c.backend.BlockNumber(ctx)
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer c.met.BumpTime("call.time", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		c.met.BumpSum("call.err", 1, "method", method)
		ctx.WithField("err", err).WithField("method", method).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, signer *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	opts := *signer
	opts.Context = ctx

	bound := bind.NewBoundContract(addr, _abi, c.backend, c.backend, c.backend)
	tx, err := bound.Transact(&opts, method, params...)
	if err != nil {
		c.met.BumpSum("transact.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"from":   signer.From.Hex(),
		}).Error("bound.Transact failed")
		return nil, xerrors.Errorf("%s: %w", err.Error(), domain.ErrTransactionFailed)
	}
	c.met.BumpSum("transact.sent", 1, "method", method)
	ctx.WithField("method", method).WithField("tx", tx.Hash().Hex()).Info("transaction sent")
	return tx, nil
}

func (c *clientImpl) WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx, cancel := bCtx.WithTimeout(ctx, c.cfg.ReceiptTimeout)
	defer cancel()

	var receipt *types.Receipt
	err := backoff.Poll(waitCtx, backoff.NewLinear(c.cfg.ReceiptPoll, 10*c.cfg.ReceiptPoll), func() (bool, error) {
		r, err := c.backend.TransactionReceipt(waitCtx, tx.Hash())
		if err == ethereum.NotFound {
			return false, nil
		} else if err != nil {
			ctx.WithField("err", err).WithField("tx", tx.Hash().Hex()).Warn("client.TransactionReceipt failed")
			return false, nil
		}
		receipt = r
		return true, nil
	})
	if err != nil {
		ctx.WithField("err", err).WithField("tx", tx.Hash().Hex()).Error("transaction not confirmed")
		return nil, xerrors.Errorf("not confirmed: %w", domain.ErrTransactionFailed)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.met.BumpSum("transact.reverted", 1)
		ctx.WithField("tx", tx.Hash().Hex()).Warn("transaction reverted")
		return nil, xerrors.Errorf("reverted %s: %w", tx.Hash().Hex(), domain.ErrTransactionFailed)
	}
	return receipt, nil
}
