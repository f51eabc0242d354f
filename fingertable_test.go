package chord

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixaxis-labs/chordring/chordpb"
)

func TestFingerMath(t *testing.T) {
	m := 8
	start := []byte{0}
	ans := [][]byte{{1}, {2}, {4}, {8}, {16}, {32}, {64}, {128}}

	for i := 0; i < m; i++ {
		key := fingerMath(start, i, m)
		assert.Equal(t, 0, bytes.Compare(key, ans[i]), fmt.Sprintf("finger math incorrect for index %d", i))
	}
}

func TestNewFingerTableAllPointAtSelf(t *testing.T) {
	self := &chordpb.Node{Id: []byte{1}, Host: "127.0.0.1", Port: 6000}
	m := 3
	ft := newFingerTable(self, m)

	assert.Len(t, ft, m)
	for i, e := range ft {
		assert.Equal(t, fingerMath(self.Id, i, m), e.Start)
		assert.True(t, self.Equal(e.Successor))
	}
}
