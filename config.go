package chord

import (
	"time"

	"google.golang.org/grpc"
)

// Config bundles everything the core needs to boot a node: its own
// identity, the known peer used to join (if any), the size of the
// identifier space, and the maintenance intervals. Process bootstrap and
// flag/file parsing live in cmd/chordnode; Config is their output.
type Config struct {
	// Host and Port are this node's own listening address.
	Host string
	Port int
	// ID optionally pins this node's identifier instead of hashing
	// Host:Port. Leave nil to hash.
	ID []byte

	// KnownHost/KnownPort/KnownID describe the peer used to join an
	// existing ring. Leave KnownHost empty to create a new ring instead.
	KnownHost string
	KnownPort int
	KnownID   []byte

	// KeySize is m, the bit-width of the identifier space.
	KeySize int

	// SuccessorListSize is the capacity initially reserved for the
	// fault-tolerance successor list. It does not bound the list: the
	// list is extended and capped at KeySize entries.
	SuccessorListSize int

	// Timeout bounds every outbound RPC.
	Timeout time.Duration

	StabilizeInterval        time.Duration
	FixFingerInterval        time.Duration
	CheckPredecessorInterval time.Duration
	DebugInterval            time.Duration

	Debug bool

	// HashFunc computes an m-bit identifier for an arbitrary key. Defaults
	// to GetPeerID (SHA-1 truncated to KeySize bits).
	HashFunc HashFunc

	// Migrator is invoked once after join, before the maintenance loops
	// start. Defaults to a no-op.
	Migrator DataMigrator

	ServerOpts []grpc.ServerOption
	DialOpts   []grpc.DialOption
}

// DefaultConfig returns a Config with the teacher's defaults: 1s
// stabilize, 3s fix-fingers, 1s check-predecessor, 500ms RPC timeout.
func DefaultConfig() *Config {
	return &Config{
		KeySize:                  160,
		SuccessorListSize:        8,
		Timeout:                  500 * time.Millisecond,
		StabilizeInterval:        time.Second,
		FixFingerInterval:        3 * time.Second,
		CheckPredecessorInterval: time.Second,
		DebugInterval:            10 * time.Second,
		HashFunc:                 GetPeerID,
		Migrator:                 noopMigrator{},
		DialOpts:                 []grpc.DialOption{grpc.WithInsecure(), grpc.WithBlock()},
	}
}
