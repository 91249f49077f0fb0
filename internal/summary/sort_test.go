package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedMovements_Ascending(t *testing.T) {
	acct := jonas()
	orig := acct.Clone().Movements

	got := SortedMovements(acct, true)
	require.Len(t, got, len(orig))

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].LessThanOrEqual(got[i]), "not sorted at %d: %s > %s", i, got[i-1], got[i])
	}

	// Same multiset.
	counts := make(map[string]int)
	for _, m := range orig {
		counts[m.String()]++
	}
	for _, m := range got {
		counts[m.String()]--
	}
	for k, v := range counts {
		assert.Zero(t, v, "value %s count mismatch", k)
	}

	// Source untouched.
	assert.Equal(t, orig, acct.Movements)
	assert.Equal(t, "-642.21", got[0].String())
	assert.Equal(t, "25000", got[len(got)-1].String())
}

func TestSortedMovements_Unsorted(t *testing.T) {
	acct := jonas()
	got := SortedMovements(acct, false)
	assert.Equal(t, acct.Movements, got)

	// Result does not alias the account's history.
	got[0] = dec("1")
	assert.Equal(t, "200", acct.Movements[0].String())
}

func TestSorted_Empty(t *testing.T) {
	assert.Empty(t, Sorted(nil, true))
	assert.Empty(t, Sorted(nil, false))
}

func TestSorted_Duplicates(t *testing.T) {
	got := Sorted(decs("5", "-1", "5", "0"), true)
	assert.Equal(t, []string{"-1", "0", "5", "5"}, []string{got[0].String(), got[1].String(), got[2].String(), got[3].String()})
}
