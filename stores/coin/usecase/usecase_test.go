package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/service/zora"
	zoraMocks "github.com/remixer-xyz/goapi/service/zora/mocks"
)

const (
	testChainId = domain.ChainId(8453)
	coinAddr    = domain.Address("0x1111111111111111111111111111111111111111")
)

func TestGetCoin(t *testing.T) {
	c := bCtx.Background()
	z := &zoraMocks.Client{}
	uc := New(z)

	z.On("GetCoin", mock.Anything, testChainId, coinAddr).Return(&coin.Coin{Name: "remix"}, nil)

	got, err := uc.GetCoin(c, testChainId, coinAddr)
	require.NoError(t, err)
	assert.Equal(t, "remix", got.Name)
}

func TestGetCoinNotFound(t *testing.T) {
	c := bCtx.Background()
	z := &zoraMocks.Client{}
	uc := New(z)

	z.On("GetCoin", mock.Anything, testChainId, coinAddr).Return(nil, zora.ErrCoinNotFound)

	_, err := uc.GetCoin(c, testChainId, coinAddr)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestGetCoinsEmptyInput(t *testing.T) {
	c := bCtx.Background()
	z := &zoraMocks.Client{}
	uc := New(z)

	got, err := uc.GetCoins(c, testChainId, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	z.AssertNotCalled(t, "GetCoins", mock.Anything, mock.Anything, mock.Anything)
}
