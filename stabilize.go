package chord

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/sixaxis-labs/chordring/chordpb"
)

var errNoPredecessor = errors.New("chord: stabilizeSelf: predecessor is unset")

// stabilize is the periodic task that repairs the successor pointer and
// notifies the (possibly new) successor of this node's existence. It runs
// independently of fixFingers/checkPredecessor with no ordering guarantee
// between them; correctness rests on eventual convergence, not atomicity.
func (n *Node) stabilize() {
	ctx := context.Background()
	s := n.immediateSuccessor()

	var x *chordpb.Node
	if n.Node.Equal(s) {
		if err := n.stabilizeSelf(ctx); err != nil {
			log.Errorf("stabilize: stabilizeSelf failed: %v\n", err)
		}
		x = n.Node
	} else {
		pred, err := n.getPredecessorRPC(ctx, s)
		if err != nil {
			n.updateSuccessorTable(ctx)
			return
		}
		x = pred
	}

	s = n.immediateSuccessor()
	if !n.Node.Equal(s) && !x.IsNull() && Between(x.Id, n.Id, s.Id) {
		log.Infof("stabilize: adopting new successor %x\n", x.Id)
		n.setImmediateSuccessor(x)
		s = x
	}

	_ = n.notifyPeer(ctx, s)
	n.updateSuccessorTable(ctx)
}

// notifyPeer tells peer that this node believes it is peer's predecessor.
// Local dispatch when peer is self (nothing to do), RPC otherwise.
func (n *Node) notifyPeer(ctx context.Context, peer *chordpb.Node) error {
	if n.Node.Equal(peer) {
		n.notify(n.Node)
		return nil
	}
	return n.notifyRPC(ctx, peer, n.Node)
}

// stabilizeSelf handles the degenerate case where a node's successor is
// itself. If predecessor is unset, it fails (nothing to kick the ring
// with). If predecessor is a different node and still reachable, adopt it
// as the new successor, kicking the singleton ring into a two-node ring.
// If predecessor is also self, the node is genuinely isolated and that is
// success, not failure — there is no self-destruct path for a node stuck
// this way.
func (n *Node) stabilizeSelf(ctx context.Context) error {
	pred := n.getPredecessor()
	if pred == nil || pred.IsNull() {
		return errNoPredecessor
	}
	if n.Node.Equal(pred) {
		return nil
	}
	if err := n.checkPredecessorRPC(ctx, pred); err != nil {
		n.setPredecessorLocal(nullNode)
		return err
	}
	n.setImmediateSuccessor(pred)
	return nil
}

// notify is the local half of the Notify RPC: a peer believes it is our
// predecessor. Adopt it if we have no predecessor, or if it lies strictly
// between our current predecessor and us.
func (n *Node) notify(nPrime *chordpb.Node) {
	if nPrime.IsNull() {
		return
	}
	n.predMtx.Lock()
	defer n.predMtx.Unlock()

	if n.predecessor == nil || n.predecessor.IsNull() || Between(nPrime.Id, n.predecessor.Id, n.Id) {
		log.Infof("notify: updating predecessor to %x\n", nPrime.Id)
		n.predecessor = nPrime
	}
}

// checkPredecessor issues a lightweight liveness RPC to the current
// predecessor. On failure it wipes predecessor to NULL_NODE, leaving it
// unset until some other node's notify() repopulates it.
func (n *Node) checkPredecessor() bool {
	pred := n.getPredecessor()
	if pred == nil || pred.IsNull() || n.Node.Equal(pred) {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.grpcOpts.timeout)
	defer cancel()

	if err := n.checkPredecessorRPC(ctx, pred); err != nil {
		log.Infof("checkPredecessor: predecessor %x appears dead, clearing\n", pred.Id)
		n.setPredecessorLocal(nullNode)
		return false
	}
	return true
}

// checkSuccessor reports whether the immediate successor is alive: always
// true if it is self, otherwise the result of a liveness RPC.
func (n *Node) checkSuccessor() bool {
	succ := n.immediateSuccessor()
	if n.Node.Equal(succ) {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), n.grpcOpts.timeout)
	defer cancel()
	resp, err := n.getSuccessorRPC(ctx, succ)
	return err == nil && !resp.IsNull()
}

// updateSuccessorTable reconciles the fault-tolerance successor list
// against the current immediate successor. The final return value is
// "best effort": this loop rewrites the list in multiple phases and does
// not carry a precise boolean meaning beyond "did something land in slot
// 0".
//
//  1. If the immediate successor is alive, mirror it into slot 0.
//  2. Otherwise repeatedly shift the list left, dropping the dead head and
//     promoting the next entry into fingerTable[0].Successor, until a live
//     one is found or the list empties.
//  3. If the list empties, reinsert self to avoid a vacuum.
//  4. If the list is shorter than m and we are not alone, extend it: for
//     each slot, RPC getSuccessor on that slot's node and insert the
//     result after it if it lies outside [selfId, slot.id].
//  5. Prune from the tail: cap length at m and drop trailing dead entries.
func (n *Node) updateSuccessorTable(ctx context.Context) bool {
	m := n.config.KeySize

	for {
		succ := n.immediateSuccessor()
		if n.checkSuccessor() {
			n.succTableMtx.Lock()
			if len(n.successorTable) == 0 {
				n.successorTable = []*chordpb.Node{succ}
			} else {
				n.successorTable[0] = succ
			}
			n.succTableMtx.Unlock()
			break
		}

		n.succTableMtx.Lock()
		if len(n.successorTable) > 0 && n.successorTable[0].Equal(succ) {
			n.successorTable = n.successorTable[1:] // drop the dead head
		}
		if len(n.successorTable) == 0 {
			n.succTableMtx.Unlock()
			break
		}
		next := n.successorTable[0]
		n.succTableMtx.Unlock()

		if next.IsNull() {
			break
		}
		n.setImmediateSuccessor(next)
	}

	n.succTableMtx.Lock()
	if len(n.successorTable) == 0 {
		n.successorTable = []*chordpb.Node{n.Node}
		n.setImmediateSuccessor(n.Node)
	}
	n.succTableMtx.Unlock()

	n.extendSuccessorTable(ctx, m)
	n.pruneSuccessorTable(m)

	n.succTableMtx.RLock()
	ok := len(n.successorTable) > 0 && !n.successorTable[0].IsNull()
	n.succTableMtx.RUnlock()
	return ok
}

func (n *Node) extendSuccessorTable(ctx context.Context, m int) {
	if n.Node.Equal(n.immediateSuccessor()) {
		return // alone; nothing to extend with
	}

	n.succTableMtx.RLock()
	list := append([]*chordpb.Node(nil), n.successorTable...)
	n.succTableMtx.RUnlock()

	for i := 0; i < len(list) && len(list) < m; i++ {
		slot := list[i]
		if slot.IsNull() {
			continue
		}
		next, err := n.getSuccessor(slot)
		if err != nil || next.IsNull() {
			continue
		}
		if BetweenBothIncl(next.Id, n.Id, slot.Id) {
			continue // already inside [selfId, slot.id]: nothing new
		}
		if i+1 < len(list) {
			list[i+1] = next
		} else {
			list = append(list, next)
		}
	}

	n.succTableMtx.Lock()
	n.successorTable = list
	n.succTableMtx.Unlock()
}

func (n *Node) pruneSuccessorTable(m int) {
	n.succTableMtx.Lock()
	defer n.succTableMtx.Unlock()

	if len(n.successorTable) > m {
		n.successorTable = n.successorTable[:m]
	}
	for len(n.successorTable) > 1 {
		last := n.successorTable[len(n.successorTable)-1]
		if !last.IsNull() {
			break
		}
		n.successorTable = n.successorTable[:len(n.successorTable)-1]
	}
}
