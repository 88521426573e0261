package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/x-xyz/listingsync/base/abi"
	"github.com/x-xyz/listingsync/base/ctx"
	bEthereum "github.com/x-xyz/listingsync/base/ethereum"
	"github.com/x-xyz/listingsync/domain"
)

// fakeBackend answers the reads the client makes, anything else panics
type fakeBackend struct {
	domain.EthClientRepo

	callResult []byte
	callErr    error
	receipts   []*types.Receipt
	lookups    int
}

func (f *fakeBackend) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return f.callResult, f.callErr
}

func (f *fakeBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	f.lookups++
	if len(f.receipts) == 0 {
		return nil, ethereum.NotFound
	}
	r := f.receipts[0]
	f.receipts = f.receipts[1:]
	if r == nil {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (f *fakeBackend) BlockNumber(context.Context) (uint64, error) {
	return 42, nil
}

type clientSuite struct {
	suite.Suite

	backend *fakeBackend
	im      Client
}

func (s *clientSuite) SetupTest() {
	s.backend = &fakeBackend{}
	s.im = NewClientWithBackend(ClientCfg{
		ChainId:        11155111,
		ReceiptPoll:    time.Millisecond,
		ReceiptTimeout: 200 * time.Millisecond,
	}, s.backend)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) TestCall() {
	data, err := baseabi.ERC1155TokenABI.Methods["balanceOf"].Outputs.Pack(big.NewInt(3))
	s.Require().NoError(err)
	s.backend.callResult = data

	res, err := s.im.Call(ctx.Background(), common.HexToAddress("0x01"), baseabi.ERC1155TokenABI, "balanceOf", common.HexToAddress("0x02"), big.NewInt(4))
	s.Require().NoError(err)
	s.Equal(int64(3), res[0].(*big.Int).Int64())
}

func (s *clientSuite) TestCallError() {
	boom := errors.New("timeout")
	s.backend.callErr = boom
	_, err := s.im.Call(ctx.Background(), common.HexToAddress("0x01"), baseabi.ERC1155TokenABI, "balanceOf", common.HexToAddress("0x02"), big.NewInt(4))
	s.Equal(boom, err)
}

func (s *clientSuite) TestWaitMined() {
	tx := types.NewTransaction(0, common.HexToAddress("0x01"), big.NewInt(0), 21000, big.NewInt(1), nil)
	s.backend.receipts = []*types.Receipt{nil, nil, {Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}}

	r, err := s.im.WaitMined(ctx.Background(), tx)
	s.Require().NoError(err)
	s.Equal(tx.Hash(), r.TxHash)
	s.Equal(3, s.backend.lookups)
}

func (s *clientSuite) TestWaitMinedReverted() {
	tx := types.NewTransaction(1, common.HexToAddress("0x01"), big.NewInt(0), 21000, big.NewInt(1), nil)
	s.backend.receipts = []*types.Receipt{{Status: types.ReceiptStatusFailed}}

	_, err := s.im.WaitMined(ctx.Background(), tx)
	s.True(errors.Is(err, domain.ErrTransactionFailed))
}

func (s *clientSuite) TestWaitMinedTimeout() {
	tx := types.NewTransaction(2, common.HexToAddress("0x01"), big.NewInt(0), 21000, big.NewInt(1), nil)

	_, err := s.im.WaitMined(ctx.Background(), tx)
	s.True(errors.Is(err, domain.ErrTransactionFailed))
}

func TestNewClientThrottled(t *testing.T) {
	c, err := NewClient(ctx.Background(), ClientCfg{
		ChainId:            domain.ChainId(11155111),
		RpcUrl:             "http://127.0.0.1:1",
		MaxConcurrentCalls: 2,
	})
	require.NoError(t, err)
	require.IsType(t, &bEthereum.ThrottledClient{}, c.Backend())
	require.Equal(t, domain.ChainId(11155111), c.ChainId())
}
