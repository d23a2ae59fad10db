package usecase

import (
	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/domain/compare"
)

type impl struct {
	coin coin.Usecase
}

func New(c coin.Usecase) compare.Usecase {
	return &impl{coin: c}
}

func (im *impl) Compare(c ctx.Ctx, chainId domain.ChainId, addresses []domain.Address, st compare.SortState) ([]*coin.Coin, error) {
	set, err := compare.NewSet(addresses...)
	if err != nil {
		c.WithField("err", err).Warn("rejecting comparison selection")
		return nil, err
	}
	if set.Len() == 0 {
		return nil, nil
	}

	coins, err := im.coin.GetCoins(c, chainId, set.Addresses())
	if err != nil {
		c.WithField("err", err).Error("coin.GetCoins failed")
		return nil, err
	}

	return compare.SortCoins(coins, st), nil
}
