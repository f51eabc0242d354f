package chord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/sixaxis-labs/chordring/chordpb"
)

// integrationConfig builds a Config for a real gRPC-backed node with a
// pinned identifier and maintenance intervals fast enough for a test to
// wait out convergence in well under a second.
func integrationConfig(id byte, m, successorListSize int) *Config {
	return &Config{
		Host:                     "127.0.0.1",
		Port:                     0,
		ID:                       []byte{id},
		KeySize:                  m,
		SuccessorListSize:        successorListSize,
		Timeout:                  200 * time.Millisecond,
		StabilizeInterval:        20 * time.Millisecond,
		FixFingerInterval:        25 * time.Millisecond,
		CheckPredecessorInterval: 20 * time.Millisecond,
		DebugInterval:            0,
		HashFunc:                 GetPeerID,
		Migrator:                 noopMigrator{},
		DialOpts:                 []grpc.DialOption{grpc.WithInsecure(), grpc.WithBlock()},
	}
}

func eventuallyConverged(t *testing.T, fn func() bool) {
	t.Helper()
	require.Eventually(t, fn, 2*time.Second, 5*time.Millisecond)
}

// TestTwoNodeJoinConvergence covers scenario 2 from the spec: a second
// node joins a lone ring and, after stabilization converges, each node is
// the other's predecessor and successor.
func TestTwoNodeJoinConvergence(t *testing.T) {
	m := 3
	a, err := NewLoneNode(integrationConfig(1, m, m))
	require.NoError(t, err)
	defer a.Shutdown()
	assert.True(t, a.IsJoined(), "bootstrap returns only after the lone-ring branch completes")

	b, err := NewJoiningNode(integrationConfig(5, m, m), a.Node)
	require.NoError(t, err)
	defer b.Shutdown()
	assert.True(t, b.IsJoined(), "bootstrap returns only after the joining-node branch completes")

	eventuallyConverged(t, func() bool {
		return a.Node.Equal(b.getPredecessor()) &&
			b.Node.Equal(a.getPredecessor()) &&
			a.Node.Equal(b.immediateSuccessor()) &&
			b.Node.Equal(a.immediateSuccessor())
	})
}

// TestThreeNodeRingMultiHopLookup covers scenario 3 from the spec: a
// three-node ring {1, 3, 5} with m = 3. Once stabilized, findSuccessor
// resolves correctly for both a one-hop lookup and a wrap-around lookup,
// routed through live gRPC calls rather than the purely local path
// exercised in lookup_test.go.
func TestThreeNodeRingMultiHopLookup(t *testing.T) {
	m := 3
	n1, err := NewLoneNode(integrationConfig(1, m, m))
	require.NoError(t, err)
	defer n1.Shutdown()

	n3, err := NewJoiningNode(integrationConfig(3, m, m), n1.Node)
	require.NoError(t, err)
	defer n3.Shutdown()

	n5, err := NewJoiningNode(integrationConfig(5, m, m), n1.Node)
	require.NoError(t, err)
	defer n5.Shutdown()

	eventuallyConverged(t, func() bool {
		return byteID(n1.immediateSuccessor()) == 3 &&
			byteID(n3.immediateSuccessor()) == 5 &&
			byteID(n5.immediateSuccessor()) == 1
	})

	succ, err := n1.findSuccessor([]byte{4}, n1.Node)
	require.NoError(t, err)
	assert.Equal(t, byte(5), succ.Id[0])

	// wraps through 0 back to 1
	succ, err = n1.findSuccessor([]byte{6}, n1.Node)
	require.NoError(t, err)
	assert.Equal(t, byte(1), succ.Id[0])
}

// TestSuccessorFailureRecovery covers scenario 4 from the spec: when a
// ring member vanishes without notice, the fault-tolerant successor list
// lets its predecessor route around it after the next few stabilize
// rounds, without the lookup ever blocking on the dead peer.
func TestSuccessorFailureRecovery(t *testing.T) {
	m := 3
	n1, err := NewLoneNode(integrationConfig(1, m, m))
	require.NoError(t, err)
	defer n1.Shutdown()

	n3, err := NewJoiningNode(integrationConfig(3, m, m), n1.Node)
	require.NoError(t, err)

	n5, err := NewJoiningNode(integrationConfig(5, m, m), n1.Node)
	require.NoError(t, err)
	defer n5.Shutdown()

	eventuallyConverged(t, func() bool {
		return byteID(n1.immediateSuccessor()) == 3 && byteID(n3.immediateSuccessor()) == 5
	})

	n3.Shutdown()

	eventuallyConverged(t, func() bool {
		return byteID(n1.immediateSuccessor()) == 5
	})
}

// TestWrapAroundLookup covers scenario 6 from the spec: a two-node ring
// {2, 6} with m = 3. findSuccessor(7) must wrap through identifier 0 to
// land on node 2.
func TestWrapAroundLookup(t *testing.T) {
	m := 3
	n2, err := NewLoneNode(integrationConfig(2, m, m))
	require.NoError(t, err)
	defer n2.Shutdown()

	n6, err := NewJoiningNode(integrationConfig(6, m, m), n2.Node)
	require.NoError(t, err)
	defer n6.Shutdown()

	eventuallyConverged(t, func() bool {
		return byteID(n2.immediateSuccessor()) == 6 && byteID(n6.immediateSuccessor()) == 2
	})

	succ, err := n2.findSuccessor([]byte{7}, n2.Node)
	require.NoError(t, err)
	assert.Equal(t, byte(2), succ.Id[0])
}

func byteID(n *chordpb.Node) byte {
	if n.IsNull() {
		return 0xFF
	}
	return n.Id[0]
}
