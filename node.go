// Package chord implements the ring membership and routing subsystem of a
// Chord distributed hash table node: finger-table construction, the
// findSuccessor/findPredecessor/closestPrecedingFinger lookup algorithm,
// the stabilize/notify/fixFingers/checkPredecessor maintenance protocol,
// and the fault-tolerant successor list.
package chord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/sixaxis-labs/chordring/chordpb"
)

// Node implements the Chord gRPC server interface and owns all
// ring-membership state for one participant.
type Node struct {
	*chordpb.Node

	config *Config

	predecessor *chordpb.Node
	predMtx     sync.RWMutex

	fingerTable fingerTable
	ftMtx       sync.RWMutex

	successorTable []*chordpb.Node
	succTableMtx   sync.RWMutex

	sock       *net.TCPListener
	grpcServer *grpc.Server
	grpcOpts   grpcOpts

	connPool    map[string]*clientConn
	connPoolMtx sync.RWMutex

	hopStats *hopStats

	joinOnce  sync.Once
	joined    bool
	joinedMtx sync.RWMutex

	shutdownCh    chan struct{}
	signalChannel chan os.Signal
}

// NULL_NODE as the zero-value chordpb.Node: empty Id, empty Host, zero
// Port. IsNull() tests on Id alone, per the data model.
var nullNode = &chordpb.Node{}

// NewLoneNode creates a node that becomes the sole member of a brand new
// ring: predecessor = self, every finger = self, successorTable = [self].
// This is joinCluster's "no known peer" branch.
func NewLoneNode(config *Config) (*Node, error) {
	n, err := newNode(config)
	if err != nil {
		return nil, err
	}
	if err := n.bootstrap(context.Background(), nil); err != nil {
		n.Shutdown()
		return nil, err
	}
	return n, nil
}

// NewJoiningNode creates a node and joins an existing ring through known,
// a peer assumed to already be part of it. This is joinCluster's "known
// peer provided" branch.
func NewJoiningNode(config *Config, known *chordpb.Node) (*Node, error) {
	n, err := newNode(config)
	if err != nil {
		return nil, err
	}
	if err := n.bootstrap(context.Background(), known); err != nil {
		n.Shutdown()
		return nil, err
	}
	return n, nil
}

// newNode allocates a Node and brings up its listening socket and gRPC
// server, but does not run joinCluster: callers must call bootstrap (via
// NewLoneNode/NewJoiningNode) before the node is usable.
func newNode(config *Config) (*Node, error) {
	if config.Host == "" {
		return nil, errors.New("chord: Host is required")
	}
	if config.HashFunc == nil {
		config.HashFunc = GetPeerID
	}
	if config.Migrator == nil {
		config.Migrator = noopMigrator{}
	}

	log.SetFormatter(&log.TextFormatter{TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true})

	n := &Node{
		Node:           &chordpb.Node{Host: config.Host, Port: uint32(config.Port)},
		config:         config,
		successorTable: make([]*chordpb.Node, 0, config.SuccessorListSize),
		connPool:       make(map[string]*clientConn),
		grpcOpts: grpcOpts{
			serverOpts: config.ServerOpts,
			dialOpts:   config.DialOpts,
			timeout:    config.Timeout,
		},
		hopStats:      newHopStats(128),
		shutdownCh:    make(chan struct{}),
		signalChannel: make(chan os.Signal, 1),
	}

	addr := n.Host + ":" + strconv.Itoa(int(n.Port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("chord: error creating listening socket: %w", err)
	}
	n.sock = lis.(*net.TCPListener)
	// Port may have been 0 (ephemeral); record the address actually bound
	// before the id is derived from it below.
	n.Port = uint32(n.sock.Addr().(*net.TCPAddr).Port)

	if len(config.ID) > 0 {
		n.Id = config.ID
	} else {
		key := n.Host + ":" + strconv.Itoa(int(n.Port))
		n.Id = config.HashFunc(key, config.KeySize)
	}

	n.fingerTable = newFingerTable(n.Node, config.KeySize)

	n.grpcServer = grpc.NewServer(n.grpcOpts.serverOpts...)
	chordpb.RegisterChordServer(n.grpcServer, n)

	go func() {
		if err := n.grpcServer.Serve(lis); err != nil {
			log.Infof("grpc server stopped: %v\n", err)
		}
	}()
	log.Infof("chord: node %x listening on %s\n", n.Id, addr)

	return n, nil
}

// bootstrap is joinCluster: it initializes finger-table/predecessor state,
// either alone or through a known peer, fires the data-migration hook
// exactly once, then schedules the periodic maintenance tasks. It runs at
// most once per node.
func (n *Node) bootstrap(ctx context.Context, known *chordpb.Node) error {
	var joinErr error
	n.joinOnce.Do(func() {
		if known == nil || known.Host == "" {
			n.predMtx.Lock()
			n.predecessor = n.Node
			n.predMtx.Unlock()
		} else {
			knownID := known.Id
			if len(knownID) == 0 {
				key := known.Host + ":" + strconv.Itoa(int(known.Port))
				knownID = n.config.HashFunc(key, n.config.KeySize)
				known = &chordpb.Node{Id: knownID, Host: known.Host, Port: known.Port}
			}

			if bytes.Equal(n.Id, knownID) && (n.Host != known.Host || n.Port != known.Port) {
				log.Fatalf("chord: identifier collision between %s:%d and %s:%d\n",
					n.Host, n.Port, known.Host, known.Port)
			}

			if err := n.initFingerTable(ctx, known); err != nil {
				joinErr = err
				return
			}
			if err := n.updateOthers(ctx); err != nil {
				log.Errorf("chord: updateOthers encountered errors: %v\n", err)
			}
		}

		if err := n.config.Migrator.MigrateKeysAfterJoin(ctx, n.Node, n.getPredecessor()); err != nil {
			log.Errorf("chord: migrateKeysAfterJoin failed (swallowed): %v\n", err)
		}

		n.succTableMtx.Lock()
		n.successorTable = []*chordpb.Node{n.immediateSuccessor()}
		n.succTableMtx.Unlock()

		n.joinedMtx.Lock()
		n.joined = true
		n.joinedMtx.Unlock()

		n.startMaintenanceTasks()
	})
	return joinErr
}

// IsJoined reports whether bootstrap has completed.
func (n *Node) IsJoined() bool {
	n.joinedMtx.RLock()
	defer n.joinedMtx.RUnlock()
	return n.joined
}

func (n *Node) startMaintenanceTasks() {
	go n.runPeriodic(n.config.StabilizeInterval, n.stabilize)
	go n.runPeriodic(n.config.FixFingerInterval, n.fixFingers)
	go n.runPeriodic(n.config.CheckPredecessorInterval, func() { n.checkPredecessor() })
	go n.runPeriodic(n.config.DebugInterval, n.logDebugSnapshot)

	signal.Notify(n.signalChannel, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-n.signalChannel
		n.Shutdown()
		os.Exit(0)
	}()
}

// runPeriodic is the teacher's self-scheduling ticker pattern: each task
// fires at a fixed interval regardless of the previous run's outcome, and
// tolerates overlap with itself and with the other periodic tasks.
func (n *Node) runPeriodic(interval time.Duration, task func()) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			task()
		case <-n.shutdownCh:
			return
		}
	}
}

func (n *Node) logDebugSnapshot() {
	log.Infof("------------\n")
	PrintNode(n.Node, false, "self")
	PrintNode(n.getPredecessor(), false, "predecessor")
	PrintNode(n.immediateSuccessor(), false, "successor")
	n.PrintFingerTable(false)
	if mean, ok := n.hopStats.mean(); ok {
		log.Infof("lookup hop count: mean=%.2f over last %d lookups\n", mean, n.hopStats.count())
	}
	log.Infof("------------\n")
}

// Shutdown gracefully tears a node down: stop the gRPC server, close
// pooled client connections, close the listening socket. There is no
// ring-level shutdown protocol — a node that vanishes without calling this
// is just another partial failure the stabilization loop already
// tolerates — but a real process does this on SIGINT/SIGTERM.
func (n *Node) Shutdown() {
	select {
	case <-n.shutdownCh:
		return // already shut down
	default:
		close(n.shutdownCh)
	}

	if n.grpcServer != nil {
		n.grpcServer.Stop()
	}

	n.connPoolMtx.Lock()
	for addr, cc := range n.connPool {
		log.Infof("chord: closing conn to %s\n", addr)
		cc.conn.Close()
		delete(n.connPool, addr)
	}
	n.connPoolMtx.Unlock()

	if n.sock != nil {
		n.sock.Close()
	}
}

func (n *Node) getPredecessor() *chordpb.Node {
	n.predMtx.RLock()
	defer n.predMtx.RUnlock()
	return n.predecessor
}

func (n *Node) setPredecessorLocal(p *chordpb.Node) {
	n.predMtx.Lock()
	n.predecessor = p
	n.predMtx.Unlock()
}
