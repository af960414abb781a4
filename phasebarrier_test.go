package mapreduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseBarrierCrossIsIdempotent(t *testing.T) {
	b := newPhaseBarrier()
	assert.False(t, b.crossed())

	b.cross()
	b.cross() // must not panic on double-close

	assert.True(t, b.crossed())
}
