package chord

import (
	log "github.com/sirupsen/logrus"

	"github.com/sixaxis-labs/chordring/chordpb"
)

// fingerTable is a node's route table: m entries, entry i pointing at the
// current best-known successor of (selfId + 2^i) mod 2^m.
type fingerTable []*fingerTableEntry

// fingerTableEntry pairs an immutable Start with the mutable Successor
// currently believed responsible for it.
type fingerTableEntry struct {
	Start     []byte
	Successor *chordpb.Node
}

func newFingerTableEntry(start []byte, successor *chordpb.Node) *fingerTableEntry {
	return &fingerTableEntry{Start: start, Successor: successor}
}

// newFingerTable builds the m-entry table for n, with every Start fixed by
// fingerMath and every Successor initially pointing at self. This matches
// invariant 5: a lone node has all fingers pointing at itself.
func newFingerTable(self *chordpb.Node, m int) fingerTable {
	ft := make(fingerTable, m)
	for i := range ft {
		ft[i] = newFingerTableEntry(fingerMath(self.Id, i, m), self)
	}
	return ft
}

// finger returns a copy of fingerTable[i] under the read lock.
func (n *Node) finger(i int) *fingerTableEntry {
	n.ftMtx.RLock()
	defer n.ftMtx.RUnlock()
	e := n.fingerTable[i]
	return &fingerTableEntry{Start: e.Start, Successor: e.Successor}
}

// setFingerSuccessor overwrites fingerTable[i].Successor. Start is
// immutable after join (invariant 1) and is never touched here.
func (n *Node) setFingerSuccessor(i int, succ *chordpb.Node) {
	n.ftMtx.Lock()
	n.fingerTable[i].Successor = succ
	n.ftMtx.Unlock()
}

// immediateSuccessor returns fingerTable[0].Successor, which this core
// treats as the single source of truth for "my successor" (successorTable
// slot 0 mirrors it, per invariant 3, rather than duplicating the field).
func (n *Node) immediateSuccessor() *chordpb.Node {
	return n.finger(0).Successor
}

// setImmediateSuccessor overwrites fingerTable[0].Successor.
func (n *Node) setImmediateSuccessor(succ *chordpb.Node) {
	n.setFingerSuccessor(0, succ)
}

// fixFingers implements the periodic finger-repair task. It picks a
// random index i in [1, m-1] (index 0 is kept fresh by stabilize/notify)
// and asks findSuccessor to recompute it, overwriting only on success.
// Random selection, rather than a round-robin cursor, is what the
// algorithm specifies: it lets every finger converge in expectation
// without synchronizing work across rounds.
func (n *Node) fixFingers() {
	m := n.config.KeySize
	if m <= 1 {
		return
	}
	i := 1 + randIntn(m-1)

	start := n.finger(i).Start
	succ, err := n.findSuccessor(start, n.Node)
	if err != nil || succ.IsNull() {
		return
	}
	n.setFingerSuccessor(i, succ)
}

// PrintFingerTable logs the entire finger table, for the ambient debug
// dump task.
func (n *Node) PrintFingerTable(hex bool) {
	n.ftMtx.RLock()
	defer n.ftMtx.RUnlock()
	log.Infof("-----FINGER TABLE-----\n")
	for i, e := range n.fingerTable {
		if hex {
			log.Infof("FT entry %d - {start: %x, successor: {id: %x, host: %s, port: %d}}\n",
				i, e.Start, e.Successor.Id, e.Successor.Host, e.Successor.Port)
		} else {
			log.Infof("FT entry %d - {start: %d, successor: {id: %d, host: %s, port: %d}}\n",
				i, e.Start, e.Successor.Id, e.Successor.Host, e.Successor.Port)
		}
	}
}
