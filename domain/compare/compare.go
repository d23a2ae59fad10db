package compare

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
)

type Usecase interface {
	// Compare resolves the selected coins and orders them by the given
	// sort state. At most MaxCompareCoins addresses are accepted.
	Compare(c ctx.Ctx, chainId domain.ChainId, addresses []domain.Address, st SortState) ([]*coin.Coin, error)
}

// MaxCompareCoins caps how many coins a comparison set can hold
const MaxCompareCoins = 5

// SortKey names a column the comparison table can be ordered by
type SortKey string

const (
	SortKeyName          SortKey = "name"
	SortKeySymbol        SortKey = "symbol"
	SortKeyMarketCap     SortKey = "marketCap"
	SortKeyVolume24h     SortKey = "volume24h"
	SortKeyUniqueHolders SortKey = "uniqueHolders"
	SortKeyPrice         SortKey = "price"
)

func (k SortKey) valid() bool {
	switch k {
	case SortKeyName, SortKeySymbol, SortKeyMarketCap, SortKeyVolume24h, SortKeyUniqueHolders, SortKeyPrice:
		return true
	}
	return false
}

// Set is a bounded selection of coin addresses. The zero value is usable.
type Set struct {
	addresses []domain.Address
}

func NewSet(addresses ...domain.Address) (*Set, error) {
	s := &Set{}
	for _, a := range addresses {
		if err := s.Add(a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set) Addresses() []domain.Address {
	out := make([]domain.Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

func (s *Set) Len() int {
	return len(s.addresses)
}

func (s *Set) Contains(a domain.Address) bool {
	for _, cur := range s.addresses {
		if cur.Equals(a) {
			return true
		}
	}
	return false
}

// Add appends an address unless it is already selected or the set is full
func (s *Set) Add(a domain.Address) error {
	if s.Contains(a) {
		return nil
	}
	if len(s.addresses) >= MaxCompareCoins {
		return domain.ErrSelectionLimitExceeded
	}
	s.addresses = append(s.addresses, a.ToLower())
	return nil
}

func (s *Set) Remove(a domain.Address) {
	for i, cur := range s.addresses {
		if cur.Equals(a) {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			return
		}
	}
}

// Toggle adds an absent address or removes a present one. Toggling a new
// address into a full set fails and leaves the set unchanged.
func (s *Set) Toggle(a domain.Address) error {
	if s.Contains(a) {
		s.Remove(a)
		return nil
	}
	return s.Add(a)
}

// SortState tracks the active comparison ordering
type SortState struct {
	Key SortKey
	Dir domain.SortDir
}

// Select applies a column click: re-selecting the active key flips the
// direction, selecting a new key starts descending.
func (st SortState) Select(key SortKey) SortState {
	if !key.valid() {
		return st
	}
	if st.Key == key {
		dir := domain.SortDirDesc
		if st.Dir == domain.SortDirDesc {
			dir = domain.SortDirAsc
		}
		return SortState{Key: key, Dir: dir}
	}
	return SortState{Key: key, Dir: domain.SortDirDesc}
}

// SortCoins returns a newly ordered slice without mutating the input.
// Ties keep their original relative order.
func SortCoins(coins []*coin.Coin, st SortState) []*coin.Coin {
	out := make([]*coin.Coin, len(coins))
	copy(out, coins)
	if !st.Key.valid() {
		return out
	}
	asc := st.Dir == domain.SortDirAsc
	sort.SliceStable(out, func(i, j int) bool {
		less, eq := compareCoins(out[i], out[j], st.Key)
		if eq {
			return false
		}
		if asc {
			return less
		}
		return !less
	})
	return out
}

func compareCoins(a, b *coin.Coin, key SortKey) (less, eq bool) {
	switch key {
	case SortKeyName:
		return a.Name < b.Name, a.Name == b.Name
	case SortKeySymbol:
		return a.Symbol < b.Symbol, a.Symbol == b.Symbol
	case SortKeyUniqueHolders:
		return a.UniqueHolders < b.UniqueHolders, a.UniqueHolders == b.UniqueHolders
	case SortKeyMarketCap:
		return decimalLess(a.MarketCap, b.MarketCap)
	case SortKeyVolume24h:
		return decimalLess(a.Volume24h, b.Volume24h)
	case SortKeyPrice:
		pa, pb := a.Price(), b.Price()
		return pa.LessThan(pb), pa.Equal(pb)
	}
	return false, true
}

func decimalLess(a, b string) (less, eq bool) {
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA != nil {
		da = decimal.Zero
	}
	if errB != nil {
		db = decimal.Zero
	}
	return da.LessThan(db), da.Equal(db)
}
