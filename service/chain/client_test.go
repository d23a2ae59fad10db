package chain

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
)

func TestNewClientSkipsUndialableRpc(t *testing.T) {
	c := bCtx.Background()

	client, err := NewClient(c, &ClientCfg{
		RpcUrls: map[domain.ChainId]string{
			8453: "://not-a-url",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, client)

	// the undialable chain is simply unsupported
	_, err = client.Submit(c, 8453, common.Address{}, abi.ABI{}, "createRemixerCoin")
	assert.ErrorIs(t, err, domain.ErrUnsupportedChain)
	assert.False(t, client.HasSigner(8453))
}

func TestNewClientRejectsMalformedSignerKey(t *testing.T) {
	c := bCtx.Background()

	_, err := NewClient(c, &ClientCfg{
		SignerKeys: map[domain.ChainId]string{
			8453: "not-hex",
		},
	})
	assert.Error(t, err)
}
