package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := IterSeq2Indexed(5, []string{"f", "g"})
	b := IterSeq2Indexed(0, []string{"a"})

	var keys []int
	var vals []string
	for k, v := range IterSeq2Concat(a, b) {
		keys = append(keys, k)
		vals = append(vals, v)
	}

	assert.Equal([]int{5, 6, 0}, keys)
	assert.Equal([]string{"f", "g", "a"}, vals)
}

func TestIterSeq2ConcatStop(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(slices.All([]int{1, 2, 3}), slices.All([]int{4, 5}))

	var got []int
	for _, v := range seq {
		got = append(got, v)
		if v == 4 {
			break
		}
	}
	assert.Equal([]int{1, 2, 3, 4}, got)
}

func TestIterSeq2Indexed(t *testing.T) {
	assert := assert.New(t)

	got := maps.Collect(IterSeq2Indexed(10, []int{7, 8}))
	assert.Equal(map[int]int{10: 7, 11: 8}, got)
}
