package chord

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredecessorOfOffset(t *testing.T) {
	m := 3
	// id=1, i=0: (1-1) mod 8 = 0
	assert.Equal(t, 0, bytes.Compare(predecessorOfOffset([]byte{1}, 0, m), []byte{}))
	// id=1, i=1: (1-2) mod 8 = 7
	assert.Equal(t, 0, bytes.Compare(predecessorOfOffset([]byte{1}, 1, m), []byte{7}))
	// id=3, i=2: (3-4) mod 8 = 7
	assert.Equal(t, 0, bytes.Compare(predecessorOfOffset([]byte{3}, 2, m), []byte{7}))
}
