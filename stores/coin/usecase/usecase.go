package usecase

import (
	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/service/zora"
)

type impl struct {
	zora zora.Client
}

func New(z zora.Client) coin.Usecase {
	return &impl{zora: z}
}

func (im *impl) GetCoin(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*coin.Coin, error) {
	res, err := im.zora.GetCoin(c, chainId, address)
	if err == zora.ErrCoinNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("zora.GetCoin failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetCoins(c ctx.Ctx, chainId domain.ChainId, addresses []domain.Address) ([]*coin.Coin, error) {
	if len(addresses) == 0 {
		return nil, nil
	}
	res, err := im.zora.GetCoins(c, chainId, addresses)
	if err != nil {
		c.WithField("err", err).Error("zora.GetCoins failed")
		return nil, err
	}
	return res, nil
}
