package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInModuloRangeWrap(t *testing.T) {
	// m = 3, ring {2, 6}: findSuccessor(7) should wrap through 0 to reach 2.
	assert.True(t, BetweenRightIncl([]byte{7}, []byte{6}, []byte{2}))
	assert.True(t, BetweenRightIncl([]byte{0}, []byte{6}, []byte{2}))
	assert.False(t, BetweenRightIncl([]byte{4}, []byte{6}, []byte{2}))
}

func TestIsInModuloRangeFullRing(t *testing.T) {
	// low == high: whole ring if at least one endpoint inclusive.
	assert.True(t, isInModuloRange([]byte{3}, []byte{1}, []byte{1}, true, false))
	assert.True(t, isInModuloRange([]byte{3}, []byte{1}, []byte{1}, false, true))
	assert.False(t, isInModuloRange([]byte{3}, []byte{1}, []byte{1}, false, false))
}

func TestIsInModuloRangeEndpointInclusivity(t *testing.T) {
	low, high := []byte{100}, []byte{200}

	assert.True(t, BetweenRightIncl([]byte{200}, low, high))
	assert.False(t, Between([]byte{200}, low, high))

	assert.True(t, BetweenLeftIncl([]byte{100}, low, high))
	assert.False(t, Between([]byte{100}, low, high))

	assert.True(t, BetweenBothIncl([]byte{100}, low, high))
	assert.True(t, BetweenBothIncl([]byte{200}, low, high))
}
