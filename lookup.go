package chord

import (
	"context"
	"math/big"

	"github.com/sixaxis-labs/chordring/chordpb"
)

// findSuccessor looks up the node responsible for id, evaluated as if
// nodeQueried were running the lookup. If nodeQueried is this node, the
// lookup runs locally (n' = findPredecessor(id); return getSuccessor(n')).
// Otherwise it is forwarded over RPC. On any RPC error this returns
// NULL_NODE rather than raising: the caller treats that as "unknown" and
// the periodic tasks repair the resulting inconsistency.
func (n *Node) findSuccessor(id []byte, nodeQueried *chordpb.Node) (*chordpb.Node, error) {
	if n.Node.Equal(nodeQueried) {
		nPrime, err := n.findPredecessor(context.Background(), id)
		if err != nil {
			return nullNode, err
		}
		return n.getSuccessor(nPrime)
	}
	return n.findSuccessorRPC(context.Background(), nodeQueried, id)
}

// findPredecessor walks the ring from self toward id's predecessor, one
// closestPrecedingFinger hop at a time, until id falls in (n', n'.successor].
// It terminates on three conditions: the target range is reached, the
// current node's successor is itself (ring of one), or an iteration cap of
// m * 2^m is hit — a defensive bound with no deeper algorithmic meaning
// (see the open question in the design notes; any finite cap >= m would
// do). On a failed hop it returns the last good n' rather than raising.
func (n *Node) findPredecessor(ctx context.Context, id []byte) (*chordpb.Node, error) {
	m := n.config.KeySize
	iterCap := new(big.Int).Mul(
		big.NewInt(int64(m)),
		new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(m)), nil),
	)

	nPrime := n.Node
	hops := 0
	iterations := big.NewInt(0)

	for {
		succ, err := n.getSuccessor(nPrime)
		if err != nil || succ.IsNull() {
			n.hopStats.record(hops)
			return nPrime, nil
		}

		if nPrime.Equal(succ) {
			// ring of one: nPrime is its own successor
			n.hopStats.record(hops)
			return nPrime, nil
		}

		if BetweenRightIncl(id, nPrime.Id, succ.Id) {
			n.hopStats.record(hops)
			return nPrime, nil
		}

		next, err := n.closestPrecedingFingerDispatch(ctx, id, nPrime)
		if err != nil || next.IsNull() {
			n.hopStats.record(hops)
			return nPrime, nil
		}
		if nPrime.Equal(next) {
			// no progress possible; stop rather than spin
			n.hopStats.record(hops)
			return nPrime, nil
		}

		nPrime = next
		hops++

		iterations.Add(iterations, big.NewInt(1))
		if iterations.Cmp(iterCap) >= 0 {
			n.hopStats.record(hops)
			return nPrime, nil
		}
	}
}

// closestPrecedingFinger scans the local finger table from i = m-1 down to
// 0 and returns the first finger whose successor lies strictly between
// nodeQueried and id. If none qualifies, it returns nodeQueried itself.
func (n *Node) closestPrecedingFinger(id []byte, nodeQueried *chordpb.Node) *chordpb.Node {
	n.ftMtx.RLock()
	defer n.ftMtx.RUnlock()

	for i := len(n.fingerTable) - 1; i >= 0; i-- {
		succ := n.fingerTable[i].Successor
		if succ.IsNull() {
			continue
		}
		if Between(succ.Id, nodeQueried.Id, id) {
			return succ
		}
	}
	return nodeQueried
}

// closestPrecedingFingerDispatch is the local/remote dispatch wrapper used
// by findPredecessor: local scan when nodeQueried is self, RPC otherwise.
func (n *Node) closestPrecedingFingerDispatch(ctx context.Context, id []byte, nodeQueried *chordpb.Node) (*chordpb.Node, error) {
	if n.Node.Equal(nodeQueried) {
		return n.closestPrecedingFinger(id, nodeQueried), nil
	}
	return n.closestPrecedingFingerRPC(ctx, nodeQueried, id)
}

// getSuccessor returns nodeQueried's immediate successor: the local
// finger[0] when nodeQueried is self, otherwise one RPC.
func (n *Node) getSuccessor(nodeQueried *chordpb.Node) (*chordpb.Node, error) {
	if n.Node.Equal(nodeQueried) {
		return n.immediateSuccessor(), nil
	}
	return n.getSuccessorRPC(context.Background(), nodeQueried)
}
