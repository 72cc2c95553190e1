package ranking_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affinity/combo"
	"github.com/katalvlaran/affinity/ranking"
)

func TestTable_InsertAndTiers(t *testing.T) {
	tb := ranking.New()
	require.NoError(t, tb.Insert(3, ranking.Group{0, 1}))
	require.NoError(t, tb.Insert(1, ranking.Group{2, 3}))
	require.NoError(t, tb.Insert(0, ranking.Group{0, 2}))
	require.NoError(t, tb.Insert(0, ranking.Group{0, 3}))
	require.NoError(t, tb.Insert(3, ranking.Group{4, 5}))

	assert.Equal(t, []int{3, 1, 0}, tb.Scores())
	assert.Equal(t, 5, tb.Len())
	assert.Equal(t, 3, tb.TierCount())
	assert.Equal(t, []ranking.Group{{0, 2}, {0, 3}}, tb.Tier(0))
	assert.Empty(t, tb.Tier(7))
	assert.Equal(t, 2, tb.TierLen(3))
	assert.Equal(t, 1, tb.TierLen(1))
	assert.Zero(t, tb.TierLen(7))
}

func TestTable_InsertCopiesGroup(t *testing.T) {
	tb := ranking.New()
	g := ranking.Group{1, 2}
	require.NoError(t, tb.Insert(1, g))
	g[0] = 9
	assert.Equal(t, []ranking.Group{{1, 2}}, tb.Tier(1))

	tier := tb.Tier(1)
	tier[0][1] = 8
	assert.Equal(t, []ranking.Group{{1, 2}}, tb.Tier(1), "Tier hands out copies")
}

func TestTable_NoDeduplication(t *testing.T) {
	tb := ranking.New()
	require.NoError(t, tb.Insert(2, ranking.Group{0, 1}))
	require.NoError(t, tb.Insert(2, ranking.Group{0, 1}))
	assert.Len(t, tb.Tier(2), 2)
}

func TestTable_Errors(t *testing.T) {
	tb := ranking.New()
	assert.ErrorIs(t, tb.Insert(1, nil), ranking.ErrEmptyGroup)

	tb.Seal()
	assert.True(t, tb.Sealed())
	assert.ErrorIs(t, tb.Insert(1, ranking.Group{0}), ranking.ErrSealed)
	tb.Seal()
}

// TestTable_ConcurrentInsertSealDeterministic fills one table from many
// goroutines in arbitrary order and checks that, once sealed, it matches a
// table filled sequentially in lexicographic order.
func TestTable_ConcurrentInsertSealDeterministic(t *testing.T) {
	const n, k = 9, 3
	var all []ranking.Group
	require.NoError(t, combo.Each(n, k, func(c []int) error {
		all = append(all, ranking.Group(c).Clone())

		return nil
	}))
	scoreOf := func(g ranking.Group) int { return (g[0] + g[1] + g[2]) % 4 }

	seq := ranking.New()
	for _, g := range all {
		require.NoError(t, seq.Insert(scoreOf(g), g))
	}
	seq.Seal()

	par := ranking.New()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := len(all) - 1 - w; i >= 0; i -= 4 {
				assert.NoError(t, par.Insert(scoreOf(all[i]), all[i]))
			}
		}(w)
	}
	wg.Wait()
	par.Seal()

	assert.Equal(t, len(all), par.Len())
	require.Equal(t, seq.Scores(), par.Scores())
	for _, s := range seq.Scores() {
		assert.Equal(t, seq.Tier(s), par.Tier(s), "tier %d", s)
	}
}
