package chord

import (
	"context"
	"errors"
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/sixaxis-labs/chordring/chordpb"
)

var errUnreachableKnownPeer = errors.New("chord: known peer unreachable during join")

// initFingerTable builds this node's finger table by consulting nPrime, a
// peer already in the ring. It amortizes what would naively be m remote
// lookups down to as few as one: once fingerTable[0].Successor is known,
// any later finger whose start already falls inside [selfId,
// fingerTable[i].Successor.id) shares that same successor and needs no
// RPC of its own.
func (n *Node) initFingerTable(ctx context.Context, nPrime *chordpb.Node) error {
	start0 := n.finger(0).Start
	succ0, err := n.findSuccessorRPC(ctx, nPrime, start0)
	if err != nil || succ0.IsNull() {
		if err == nil {
			err = errUnreachableKnownPeer
		}
		return err
	}
	n.setFingerSuccessor(0, succ0)

	pred, err := n.getPredecessorRPC(ctx, succ0)
	if err == nil && !pred.IsNull() {
		n.setPredecessorLocal(pred)
	}
	if err := n.setPredecessorRPC(ctx, succ0, n.Node); err != nil {
		log.Errorf("initFingerTable: setPredecessor on new successor failed: %v\n", err)
	}

	m := n.config.KeySize
	for i := 0; i < m-1; i++ {
		curSucc := n.finger(i).Successor
		nextStart := n.finger(i + 1).Start

		if BetweenLeftIncl(nextStart, n.Id, curSucc.Id) {
			n.setFingerSuccessor(i+1, curSucc)
			continue
		}

		succ, err := n.findSuccessorRPC(ctx, nPrime, nextStart)
		if err != nil || succ.IsNull() {
			log.Errorf("initFingerTable: findSuccessor(%x) via known peer failed: %v\n", nextStart, err)
			continue
		}
		n.setFingerSuccessor(i+1, succ)
	}

	return nil
}

// updateOthers inserts this node into the finger tables of every node in
// the ring that must now point to it: for each i, it finds the predecessor
// of (selfId - 2^i) mod 2^m and asks that node to run updateFingerTable.
func (n *Node) updateOthers(ctx context.Context) error {
	m := n.config.KeySize
	var lastErr error

	for i := 0; i < m; i++ {
		target := predecessorOfOffset(n.Id, i, m)
		p, err := n.findPredecessor(ctx, target)
		if err != nil || p.IsNull() {
			lastErr = err
			continue
		}
		if err := n.updateFingerTableDispatch(ctx, p, n.Node, i); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// updateFingerTableDispatch is local/remote dispatch for updateFingerTable:
// local call when the target is self, RPC otherwise.
func (n *Node) updateFingerTableDispatch(ctx context.Context, target, sNode *chordpb.Node, i int) error {
	if n.Node.Equal(target) {
		return n.updateFingerTable(ctx, sNode, i)
	}
	return n.updateFingerTableRPC(ctx, target, sNode, i)
}

// updateFingerTable is the RPC handler body: if sNode belongs in finger
// slot i (its id falls in [selfId, fingerTable[i].Successor.id)), adopt it
// and propagate the same call to our predecessor, who may also need to
// learn about sNode. The recursion terminates once the range no longer
// contains sNode.
func (n *Node) updateFingerTable(ctx context.Context, sNode *chordpb.Node, i int) error {
	if sNode.IsNull() || n.Node.Equal(sNode) {
		return nil
	}

	entry := n.finger(i)
	if !BetweenLeftIncl(sNode.Id, n.Id, entry.Successor.Id) {
		return nil
	}

	n.setFingerSuccessor(i, sNode)

	pred := n.getPredecessor()
	if pred == nil || pred.IsNull() || n.Node.Equal(pred) {
		return nil
	}
	return n.updateFingerTableDispatch(ctx, pred, sNode, i)
}

// predecessorOfOffset computes (id - 2^i) mod 2^m.
func predecessorOfOffset(id []byte, i, m int) []byte {
	x := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(i)), nil)
	mod := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(m)), nil)

	res := new(big.Int).SetBytes(id)
	res.Sub(res, x).Mod(res, mod)
	return res.Bytes()
}
