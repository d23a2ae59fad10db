package coin

import (
	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
)

type Usecase interface {
	GetCoin(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Coin, error)
	GetCoins(c ctx.Ctx, chainId domain.ChainId, addresses []domain.Address) ([]*Coin, error)
}

type PortfolioUsecase interface {
	// GetPortfolio walks every balance page of the wallet and returns the
	// fully valued holdings
	GetPortfolio(c ctx.Ctx, owner string) (*Portfolio, error)
}
