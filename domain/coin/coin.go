package coin

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/remixer-xyz/goapi/domain"
)

// CoinDecimals is the decimal precision of remix coin balances
const CoinDecimals = 18

type MediaContent struct {
	PreviewImage string `json:"previewImage,omitempty" bson:"previewImage,omitempty"`
	OriginalUri  string `json:"originalUri,omitempty" bson:"originalUri,omitempty"`
}

// Coin is one remix coin as reported by the upstream index. Numeric figures
// arrive as decimal strings and stay that way until valuation.
type Coin struct {
	ChainId           domain.ChainId `json:"chainId"`
	Address           domain.Address `json:"address"`
	Name              string         `json:"name"`
	Symbol            string         `json:"symbol"`
	Description       string         `json:"description,omitempty"`
	TotalSupply       string         `json:"totalSupply"`
	MarketCap         string         `json:"marketCap"`
	MarketCapDelta24h string         `json:"marketCapDelta24h,omitempty"`
	Volume24h         string         `json:"volume24h,omitempty"`
	UniqueHolders     int64          `json:"uniqueHolders"`
	CreatorAddress    domain.Address `json:"creatorAddress,omitempty"`
	CreatedAt         string         `json:"createdAt,omitempty"`
	MediaContent      *MediaContent  `json:"mediaContent,omitempty"`
}

// Price is marketCap / totalSupply taken from the coin's own reported
// figures. A zero or unparsable supply prices at zero, never NaN or Inf.
func (c *Coin) Price() decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	marketCap, err := decimal.NewFromString(c.MarketCap)
	if err != nil {
		return decimal.Zero
	}
	totalSupply, err := decimal.NewFromString(c.TotalSupply)
	if err != nil || totalSupply.IsZero() {
		return decimal.Zero
	}
	return marketCap.Div(totalSupply)
}

// Balance is one (wallet, coin) holding from one page of the upstream feed
type Balance struct {
	Id      string `json:"id"`
	Balance string `json:"balance"`
	Coin    *Coin  `json:"coin"`
}

// RawBalance parses the raw integer balance. Unparsable input reads as zero.
func (b *Balance) RawBalance() *big.Int {
	raw, ok := new(big.Int).SetString(b.Balance, 10)
	if !ok {
		return new(big.Int)
	}
	return raw
}

// ValuedBalance is a Balance plus fields derived at read time. Derived
// fields are recomputed on every fetch, never cached.
type ValuedBalance struct {
	Balance
	NormalizedBalance decimal.Decimal `json:"normalizedBalance"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	HeldValue         decimal.Decimal `json:"heldValue"`
}

// Portfolio is the full valued view of one wallet's holdings. It is rebuilt
// on every fetch and never partially updated.
type Portfolio struct {
	Owner      string           `json:"owner"`
	Balances   []*ValuedBalance `json:"balances"`
	TotalValue decimal.Decimal  `json:"totalValue"`
}

// BalancePage is one page of the upstream balance feed. NextCursor is an
// opaque continuation token owned by the feed; pass it back verbatim.
type BalancePage struct {
	Balances   []*Balance
	NextCursor string
}
