package zora

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/domain/explore"
)

var (
	ErrStatusCodeNotOk = errors.New("status code is not 200")
	ErrProfileNotFound = errors.New("profile not found")
	ErrCoinNotFound    = errors.New("coin not found")
)

type ClientCfg struct {
	Endpoint   string
	Apikey     string
	HttpClient http.Client
	Timeout    time.Duration
}

type Client interface {
	// GetProfileBalances returns one page of a wallet's coin holdings.
	// Pass an empty cursor for the first page; the returned cursor is
	// empty once the walk is exhausted.
	GetProfileBalances(c bCtx.Ctx, identifier string, count int, after string) (*coin.BalancePage, error)
	GetCoin(c bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*coin.Coin, error)
	GetCoins(c bCtx.Ctx, chainId domain.ChainId, addresses []domain.Address) ([]*coin.Coin, error)
	GetExploreList(c bCtx.Ctx, category explore.Category, count int) ([]*coin.Coin, error)
}

type pageInfo struct {
	EndCursor   string `json:"endCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

type balanceEdge struct {
	Node *coin.Balance `json:"node"`
}

type profileBalancesResp struct {
	Profile *struct {
		CoinBalances struct {
			Edges    []balanceEdge `json:"edges"`
			PageInfo pageInfo      `json:"pageInfo"`
		} `json:"coinBalances"`
	} `json:"profile"`
}

type coinResp struct {
	Zora20Token *coin.Coin `json:"zora20Token"`
}

type coinsResp struct {
	Zora20Tokens []*coin.Coin `json:"zora20Tokens"`
}

type exploreEdge struct {
	Node *coin.Coin `json:"node"`
}

type exploreResp struct {
	ExploreList struct {
		Edges    []exploreEdge `json:"edges"`
		PageInfo pageInfo      `json:"pageInfo"`
	} `json:"exploreList"`
}
