package chord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixaxis-labs/chordring/chordpb"
)

func TestNotifyAdoptsWhenPredecessorUnset(t *testing.T) {
	n := testNode(3, nil, 3)
	n.notify(nodeRef(1))
	assert.True(t, nodeRef(1).Equal(n.getPredecessor()))
}

func TestNotifyIgnoresOutOfRangeCandidate(t *testing.T) {
	n := testNode(5, nil, 3)
	n.setPredecessorLocal(nodeRef(1))

	// candidate 6 does not lie in (1, 5): ignored.
	n.notify(nodeRef(6))
	assert.True(t, nodeRef(1).Equal(n.getPredecessor()))

	// candidate 3 lies in (1, 5): adopted.
	n.notify(nodeRef(3))
	assert.True(t, nodeRef(3).Equal(n.getPredecessor()))
}

func TestNotifyIgnoresNullCandidate(t *testing.T) {
	n := testNode(5, nil, 3)
	n.setPredecessorLocal(nodeRef(1))
	n.notify(nullNode)
	assert.True(t, nodeRef(1).Equal(n.getPredecessor()))
}

// TestStabilizeSelfIsolatedNodeSucceeds covers scenario 1 from the spec: a
// lone node's predecessor is itself, and stabilizeSelf must succeed
// without changing anything — there is no destruction path for this case.
func TestStabilizeSelfIsolatedNodeSucceeds(t *testing.T) {
	n := testNode(1, newFingerTable(nodeRef(1), 3), 3)
	n.setPredecessorLocal(n.Node)

	err := n.stabilizeSelf(context.TODO())
	assert.NoError(t, err)
}

func TestStabilizeSelfFailsWithNoPredecessor(t *testing.T) {
	n := testNode(1, newFingerTable(nodeRef(1), 3), 3)
	n.setPredecessorLocal(nullNode)

	err := n.stabilizeSelf(context.TODO())
	assert.ErrorIs(t, err, errNoPredecessor)
}

func TestUpdateFingerTableLocalPropagationTerminates(t *testing.T) {
	// Node 5 has no predecessor set, so updateFingerTable should update
	// the finger and then stop (no predecessor to propagate to).
	n := testNode(5, fingerTable{
		newFingerTableEntry([]byte{6}, nodeRef(5)),
	}, 3)

	err := n.updateFingerTable(context.TODO(), nodeRef(7), 0)
	assert.NoError(t, err)
	assert.Equal(t, byte(7), n.finger(0).Successor.Id[0])
}

func TestUpdateFingerTableIgnoresOutOfRangeNode(t *testing.T) {
	n := testNode(5, fingerTable{
		newFingerTableEntry([]byte{6}, nodeRef(7)),
	}, 3)

	// sNode=2 is not in [5, 7): ignored.
	err := n.updateFingerTable(context.TODO(), nodeRef(2), 0)
	assert.NoError(t, err)
	assert.Equal(t, byte(7), n.finger(0).Successor.Id[0])
}

func TestPruneSuccessorTableCapsAtM(t *testing.T) {
	n := testNode(1, nil, 3)
	n.successorTable = []*chordpb.Node{nodeRef(2), nodeRef(3), nodeRef(4), nodeRef(5)}

	n.pruneSuccessorTable(3)
	assert.Len(t, n.successorTable, 3)
}

func TestPruneSuccessorTableDropsTrailingDead(t *testing.T) {
	n := testNode(1, nil, 3)
	n.successorTable = []*chordpb.Node{nodeRef(2), nullNode, nullNode}

	n.pruneSuccessorTable(3)
	assert.Len(t, n.successorTable, 1)
}
