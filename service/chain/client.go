package chain

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/domain"
)

const (
	defaultReceiptInterval = 2 * time.Second
	defaultReceiptTimeout  = 2 * time.Minute
)

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// hex-encoded private keys of the submitting wallet, per chain
	SignerKeys      map[domain.ChainId]string
	ReceiptInterval time.Duration
	ReceiptTimeout  time.Duration
}

type Client interface {
	// Call performs a read-only contract call at block blk, nil meaning latest
	Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Submit signs and broadcasts a state-changing call with the chain's wallet
	Submit(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error)
	// WaitReceipt polls until the transaction is mined or the wait times out
	WaitReceipt(c bCtx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (*types.Receipt, error)
	// HasSigner reports whether a submitting wallet is configured for the chain
	HasSigner(chainId domain.ChainId) bool
}

type signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

type clientImpl struct {
	clients         map[domain.ChainId]*ethclient.Client
	signers         map[domain.ChainId]*signer
	receiptInterval time.Duration
	receiptTimeout  time.Duration
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	clients := make(map[domain.ChainId]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// the chain stays unsupported, the server still starts
			continue
		}
		clients[chainId] = client
	}
	signers := make(map[domain.ChainId]*signer)
	for chainId, hexkey := range cfg.SignerKeys {
		if hexkey == "" {
			continue
		}
		key, err := crypto.HexToECDSA(hexkey)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
			}).Error("failed to parse signer key")
			return nil, err
		}
		signers[chainId] = &signer{
			key:     key,
			address: crypto.PubkeyToAddress(key.PublicKey),
		}
	}
	interval := cfg.ReceiptInterval
	if interval == 0 {
		interval = defaultReceiptInterval
	}
	timeout := cfg.ReceiptTimeout
	if timeout == 0 {
		timeout = defaultReceiptTimeout
	}
	return &clientImpl{
		clients:         clients,
		signers:         signers,
		receiptInterval: interval,
		receiptTimeout:  timeout,
	}, nil
}

func (c *clientImpl) HasSigner(chainId domain.ChainId) bool {
	_, ok := c.signers[chainId]
	return ok
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, domain.ErrUnsupportedChain
	}

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
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Submit(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return "", domain.ErrUnsupportedChain
	}
	signer, ok := c.signers[chainId]
	if !ok {
		return "", domain.ErrNoWalletConnected
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return "", err
	}

	nonce, err := client.PendingNonceAt(ctx, signer.address)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", xerrors.Errorf("fetch nonce: %w", domain.ErrSubmissionRejected)
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", xerrors.Errorf("suggest gas price: %w", domain.ErrSubmissionRejected)
	}

	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: signer.address,
		To:   &addr,
		Data: data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return "", xerrors.Errorf("estimate gas: %w", domain.ErrSubmissionRejected)
	}

	tx := types.NewTransaction(nonce, addr, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(int64(chainId))), signer.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}

	if err := client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": signedTx.Hash().Hex(),
		}).Error("client.SendTransaction failed")
		return "", xerrors.Errorf("send transaction: %w", domain.ErrSubmissionRejected)
	}

	return domain.TxHash(signedTx.Hash().Hex()), nil
}

func (c *clientImpl) WaitReceipt(ctx bCtx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, domain.ErrUnsupportedChain
	}

	waitCtx, cancel := bCtx.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	hash := common.HexToHash(string(txHash))
	ticker := time.NewTicker(c.receiptInterval)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(waitCtx, hash)
		if err == nil {
			return receipt, nil
		}
		if err != ethereum.NotFound {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": txHash,
			}).Error("client.TransactionReceipt failed")
			return nil, err
		}

		select {
		case <-waitCtx.Done():
			return nil, waitCtx.Err()
		case <-ticker.C:
		}
	}
}
