package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
)

func addr(i byte) domain.Address {
	buf := make([]byte, 0, 42)
	buf = append(buf, '0', 'x')
	for j := 0; j < 39; j++ {
		buf = append(buf, '0')
	}
	buf = append(buf, '0'+i)
	return domain.Address(buf)
}

func TestSetToggle(t *testing.T) {
	s := &Set{}
	for i := byte(1); i <= MaxCompareCoins; i++ {
		require.NoError(t, s.Toggle(addr(i)))
	}
	assert.Equal(t, MaxCompareCoins, s.Len())

	// full set rejects a new address and stays intact
	err := s.Toggle(addr(6))
	assert.Equal(t, domain.ErrSelectionLimitExceeded, err)
	assert.Equal(t, MaxCompareCoins, s.Len())
	assert.False(t, s.Contains(addr(6)))

	// toggling a member removes it, making room again
	require.NoError(t, s.Toggle(addr(3)))
	assert.Equal(t, MaxCompareCoins-1, s.Len())
	require.NoError(t, s.Toggle(addr(6)))
	assert.True(t, s.Contains(addr(6)))
}

func TestSetAddDuplicate(t *testing.T) {
	s := &Set{}
	require.NoError(t, s.Add(addr(1)))
	require.NoError(t, s.Add(addr(1)))
	assert.Equal(t, 1, s.Len())
}

func TestNewSetOverflow(t *testing.T) {
	_, err := NewSet(addr(1), addr(2), addr(3), addr(4), addr(5), addr(6))
	assert.Equal(t, domain.ErrSelectionLimitExceeded, err)
}

func TestSortStateSelect(t *testing.T) {
	st := SortState{}

	st = st.Select(SortKeyMarketCap)
	assert.Equal(t, SortState{Key: SortKeyMarketCap, Dir: domain.SortDirDesc}, st)

	// same key flips direction
	st = st.Select(SortKeyMarketCap)
	assert.Equal(t, SortState{Key: SortKeyMarketCap, Dir: domain.SortDirAsc}, st)

	st = st.Select(SortKeyMarketCap)
	assert.Equal(t, SortState{Key: SortKeyMarketCap, Dir: domain.SortDirDesc}, st)

	// new key resets to descending
	st = st.Select(SortKeyName)
	assert.Equal(t, SortState{Key: SortKeyName, Dir: domain.SortDirDesc}, st)

	// invalid key is ignored
	st = st.Select(SortKey("bogus"))
	assert.Equal(t, SortKeyName, st.Key)
}

func TestSortCoins(t *testing.T) {
	coins := []*coin.Coin{
		{Name: "beta", Symbol: "B", MarketCap: "3000", TotalSupply: "1000", Volume24h: "10", UniqueHolders: 5},
		{Name: "alpha", Symbol: "A", MarketCap: "1000", TotalSupply: "1000", Volume24h: "30", UniqueHolders: 9},
		{Name: "gamma", Symbol: "G", MarketCap: "2000", TotalSupply: "1000", Volume24h: "20", UniqueHolders: 1},
	}

	t.Run("market cap desc", func(t *testing.T) {
		got := SortCoins(coins, SortState{Key: SortKeyMarketCap, Dir: domain.SortDirDesc})
		assert.Equal(t, []string{"beta", "gamma", "alpha"}, names(got))
	})

	t.Run("name asc", func(t *testing.T) {
		got := SortCoins(coins, SortState{Key: SortKeyName, Dir: domain.SortDirAsc})
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, names(got))
	})

	t.Run("holders asc", func(t *testing.T) {
		got := SortCoins(coins, SortState{Key: SortKeyUniqueHolders, Dir: domain.SortDirAsc})
		assert.Equal(t, []string{"gamma", "beta", "alpha"}, names(got))
	})

	t.Run("price desc", func(t *testing.T) {
		got := SortCoins(coins, SortState{Key: SortKeyPrice, Dir: domain.SortDirDesc})
		assert.Equal(t, []string{"beta", "gamma", "alpha"}, names(got))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		SortCoins(coins, SortState{Key: SortKeyName, Dir: domain.SortDirAsc})
		assert.Equal(t, []string{"beta", "alpha", "gamma"}, names(coins))
	})

	t.Run("stable on ties", func(t *testing.T) {
		tied := []*coin.Coin{
			{Name: "first", MarketCap: "100", TotalSupply: "1"},
			{Name: "second", MarketCap: "100", TotalSupply: "1"},
			{Name: "third", MarketCap: "100", TotalSupply: "1"},
		}
		got := SortCoins(tied, SortState{Key: SortKeyMarketCap, Dir: domain.SortDirDesc})
		assert.Equal(t, []string{"first", "second", "third"}, names(got))
	})

	t.Run("unparsable value sorts as zero", func(t *testing.T) {
		mixed := []*coin.Coin{
			{Name: "bad", MarketCap: "not-a-number"},
			{Name: "good", MarketCap: "1"},
		}
		got := SortCoins(mixed, SortState{Key: SortKeyMarketCap, Dir: domain.SortDirAsc})
		assert.Equal(t, []string{"bad", "good"}, names(got))
	})
}

func names(coins []*coin.Coin) []string {
	out := make([]string, len(coins))
	for i, c := range coins {
		out[i] = c.Name
	}
	return out
}
