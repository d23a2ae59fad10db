package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	ethabi "github.com/remixer-xyz/goapi/base/abi"
	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/service/chain"
)

// Remixer wraps the coin factory contract
type Remixer interface {
	// CreateRemixerCoin submits a coin creation and returns the pending tx hash
	CreateRemixerCoin(c bCtx.Ctx, chainId domain.ChainId, payoutRecipient domain.Address, creators []domain.Address, uri, name, symbol string, revenueShare int, salt [32]byte) (domain.TxHash, error)
	// WaitCoinAddress blocks until the creation tx is mined and returns the
	// new coin's address taken from the creation event
	WaitCoinAddress(c bCtx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (domain.Address, error)
	HasSigner(chainId domain.ChainId) bool
}

type remixerImpl struct {
	addresses map[domain.ChainId]common.Address
	client    chain.Client
}

func NewRemixer(addresses map[domain.ChainId]domain.Address, client chain.Client) Remixer {
	parsed := make(map[domain.ChainId]common.Address, len(addresses))
	for chainId, addr := range addresses {
		parsed[chainId] = common.HexToAddress(string(addr))
	}
	return &remixerImpl{addresses: parsed, client: client}
}

func (im *remixerImpl) HasSigner(chainId domain.ChainId) bool {
	if _, ok := im.addresses[chainId]; !ok {
		return false
	}
	return im.client.HasSigner(chainId)
}

func (im *remixerImpl) CreateRemixerCoin(c bCtx.Ctx, chainId domain.ChainId, payoutRecipient domain.Address, creators []domain.Address, uri, name, symbol string, revenueShare int, salt [32]byte) (domain.TxHash, error) {
	contractAddr, ok := im.addresses[chainId]
	if !ok {
		return "", domain.ErrUnsupportedChain
	}

	creatorAddrs := make([]common.Address, len(creators))
	for i, a := range creators {
		creatorAddrs[i] = common.HexToAddress(string(a))
	}

	txHash, err := im.client.Submit(c, chainId, contractAddr, ethabi.RemixerABI, "createRemixerCoin",
		common.HexToAddress(string(payoutRecipient)),
		creatorAddrs,
		uri,
		name,
		symbol,
		big.NewInt(int64(revenueShare)),
		salt,
	)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"name":    name,
		}).Error("submit createRemixerCoin failed")
		return "", err
	}
	return txHash, nil
}

func (im *remixerImpl) WaitCoinAddress(c bCtx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (domain.Address, error) {
	receipt, err := im.client.WaitReceipt(c, chainId, txHash)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": txHash,
		}).Error("wait receipt failed")
		return "", err
	}

	if receipt.Status == types.ReceiptStatusFailed {
		c.WithField("txHash", txHash).Warn("creation tx reverted")
		return "", domain.ErrTransactionReverted
	}

	addr, err := coinAddressFromReceipt(receipt)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": txHash,
		}).Error("parse creation event failed")
		return "", err
	}
	return addr, nil
}

func coinAddressFromReceipt(receipt *types.Receipt) (domain.Address, error) {
	eventId := ethabi.RemixerABI.Events["RemixerCoinAdded"].ID
	for _, l := range receipt.Logs {
		if len(l.Topics) < 2 || l.Topics[0] != eventId {
			continue
		}
		coin := common.HexToAddress(l.Topics[1].Hex())
		return domain.Address(coin.Hex()).ToLower(), nil
	}
	return "", xerrors.New("creation event not found in receipt")
}
