package mapreduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func djb2Reference(key string, numPartitions int) int {
	var hash uint64 = 5381
	for i := 0; i < len(key); i++ {
		hash = hash*33 + uint64(key[i])
	}
	return int(hash % uint64(numPartitions))
}

func TestDefaultPartitionMatchesReferenceFormula(t *testing.T) {
	for _, key := range []string{"", "a", "foo", "bar", "baz", "a long key with spaces"} {
		for _, n := range []int{1, 2, 4, 17} {
			assert.Equal(t, djb2Reference(key, n), DefaultPartition(key, n))
		}
	}
}

func TestDefaultPartitionInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		key := string(rune('a' + i%26))
		p := DefaultPartition(key, 7)
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 7)
	}
}

func TestDefaultPartitionIsPure(t *testing.T) {
	assert.Equal(t, DefaultPartition("consistent-key", 13), DefaultPartition("consistent-key", 13))
}

func TestDefaultPartitionSinglePartitionAlwaysZero(t *testing.T) {
	for _, key := range []string{"x", "y", "z"} {
		assert.Equal(t, 0, DefaultPartition(key, 1))
	}
}
