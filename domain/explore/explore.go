package explore

import (
	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain/coin"
)

// Category names one explore leaderboard
type Category string

const (
	CategoryTopGainers       Category = "top-gainers"
	CategoryMostValuable     Category = "most-valuable"
	CategoryNew              Category = "new"
	CategoryTopVolume24h     Category = "top-volume-24h"
	CategoryLastTraded       Category = "last-traded"
	CategoryLastTradedUnique Category = "last-traded-unique"
)

// Categories lists every leaderboard in display order
var Categories = []Category{
	CategoryTopGainers,
	CategoryMostValuable,
	CategoryNew,
	CategoryTopVolume24h,
	CategoryLastTraded,
	CategoryLastTradedUnique,
}

func (c Category) Valid() bool {
	for _, cur := range Categories {
		if c == cur {
			return true
		}
	}
	return false
}

// Section is one leaderboard of the explore page. A failed section carries
// its error so the rest of the page can still render.
type Section struct {
	Category Category     `json:"category"`
	Coins    []*coin.Coin `json:"coins"`
	Err      error        `json:"-"`
}

type Usecase interface {
	GetSection(c ctx.Ctx, category Category, count int) (*Section, error)
	GetAllSections(c ctx.Ctx, count int) ([]*Section, error)
}
