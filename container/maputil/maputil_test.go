package maputil

import (
	"testing"

	"github.com/prysmaticlabs/kit/testing/assert"
	"github.com/prysmaticlabs/kit/testing/require"
)

func TestValueOr(t *testing.T) {
	m := map[string]int{"a": 1, "zero": 0}
	assert.Equal(t, 1, ValueOr(m, "a", 9))
	assert.Equal(t, 0, ValueOr(m, "zero", 9))
	assert.Equal(t, 9, ValueOr(m, "b", 9))
	assert.Equal(t, 9, ValueOr[string, int](nil, "a", 9))
}

func TestUpsert(t *testing.T) {
	m := map[string]int{}
	old, updated := Upsert(m, "a", 1)
	assert.Equal(t, false, updated)
	assert.Equal(t, 0, old)

	old, updated = Upsert(m, "a", 2)
	assert.Equal(t, true, updated)
	assert.Equal(t, 1, old)
	assert.Equal(t, 2, m["a"])
}

func TestUpsertAll(t *testing.T) {
	m := map[string]int{"b": 5}
	updated := UpsertAll(m, []Pair[string, int]{{"a", 1}, {"b", 2}, {"a", 3}})
	assert.DeepEqual(t, []bool{false, true, true}, updated)
	assert.DeepEqual(t, map[string]int{"a": 3, "b": 2}, m)
}

func TestFromPairs(t *testing.T) {
	m := FromPairs([]Pair[int, string]{{1, "x"}, {2, "y"}, {1, "z"}})
	require.Equal(t, 2, len(m))
	assert.Equal(t, "z", m[1])
	assert.Equal(t, "y", m[2])
	assert.Equal(t, 0, len(FromPairs[int, string](nil)))
}
