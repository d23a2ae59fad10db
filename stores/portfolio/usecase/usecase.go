package usecase

import (
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/service/zora"
)

const (
	pageSize = 20
	// maxPages bounds the cursor walk so a cyclic or runaway feed cannot
	// hang the aggregation
	maxPages = 500
)

type impl struct {
	zora zora.Client
}

func New(z zora.Client) coin.PortfolioUsecase {
	return &impl{zora: z}
}

func (im *impl) GetPortfolio(c ctx.Ctx, owner string) (*coin.Portfolio, error) {
	balances, err := im.fetchAllBalances(c, owner)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("fetchAllBalances failed")
		return nil, err
	}

	portfolio := &coin.Portfolio{
		Owner:      owner,
		Balances:   make([]*coin.ValuedBalance, 0, len(balances)),
		TotalValue: decimal.Zero,
	}
	for _, b := range balances {
		valued := value(b)
		portfolio.Balances = append(portfolio.Balances, valued)
		portfolio.TotalValue = portfolio.TotalValue.Add(valued.HeldValue)
	}
	return portfolio, nil
}

// fetchAllBalances walks the upstream cursor until it reports no next page.
// A failure on any page fails the whole walk, partial portfolios are never
// returned.
func (im *impl) fetchAllBalances(c ctx.Ctx, owner string) ([]*coin.Balance, error) {
	var balances []*coin.Balance
	cursor := ""
	for page := 0; ; page++ {
		if page >= maxPages {
			return nil, xerrors.Errorf("cursor walk exceeded %d pages: %w", maxPages, domain.ErrPaginationFailure)
		}
		res, err := im.zora.GetProfileBalances(c, owner, pageSize, cursor)
		if err != nil {
			return nil, xerrors.Errorf("page %d: %w", page, domain.ErrPaginationFailure)
		}
		balances = append(balances, res.Balances...)
		if res.NextCursor == "" || len(res.Balances) == 0 {
			break
		}
		cursor = res.NextCursor
	}
	return balances, nil
}

// value derives the display figures of one holding from its raw balance
// and the coin's own reported market figures
func value(b *coin.Balance) *coin.ValuedBalance {
	normalized := decimal.NewFromBigInt(b.RawBalance(), -coin.CoinDecimals)
	unitPrice := b.Coin.Price()
	return &coin.ValuedBalance{
		Balance:           *b,
		NormalizedBalance: normalized,
		UnitPrice:         unitPrice,
		HeldValue:         normalized.Mul(unitPrice),
	}
}
