package chord

import (
	"context"
	"errors"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/sixaxis-labs/chordring/chordpb"
)

type grpcOpts struct {
	serverOpts []grpc.ServerOption
	dialOpts   []grpc.DialOption
	timeout    time.Duration
}

type clientConn struct {
	client chordpb.ChordClient
	conn   *grpc.ClientConn
}

// getChordClient resolves a peer address to a stub exposing the ring
// RPCs, caching connections by host:port. Cache entries are safe to reuse
// concurrently; a connection that later fails is dropped from the cache by
// the caller so a subsequent call redials.
func (n *Node) getChordClient(other *chordpb.Node) (chordpb.ChordClient, error) {
	target := other.Host + ":" + strconv.Itoa(int(other.Port))

	n.connPoolMtx.RLock()
	cc, ok := n.connPool[target]
	n.connPoolMtx.RUnlock()
	if ok {
		return cc.client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.grpcOpts.timeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, target, n.grpcOpts.dialOpts...)
	if err != nil {
		return nil, err
	}

	client := chordpb.NewChordClient(conn)
	cc = &clientConn{client: client, conn: conn}

	n.connPoolMtx.Lock()
	defer n.connPoolMtx.Unlock()
	if n.connPool == nil {
		return nil, errors.New("chord: connection pool not initialized")
	}
	n.connPool[target] = cc

	return client, nil
}

// dropChordClient evicts a cache entry after a failed call, so the next
// attempt redials instead of reusing a connection that may be dead.
func (n *Node) dropChordClient(other *chordpb.Node) {
	target := other.Host + ":" + strconv.Itoa(int(other.Port))
	n.connPoolMtx.Lock()
	if cc, ok := n.connPool[target]; ok {
		cc.conn.Close()
		delete(n.connPool, target)
	}
	n.connPoolMtx.Unlock()
}

// rpcFail logs a structured failure record and evicts the failed peer's
// cached connection. Every RPC call site routes through this on error.
func (n *Node) rpcFail(localMethod, remoteMethod string, peer *chordpb.Node, cause error) {
	log.Errorf("chord: %s calling %s on peer %s:%d failed: %v\n",
		localMethod, remoteMethod, peer.Host, peer.Port, cause)
	n.dropChordClient(peer)
}

func (n *Node) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, n.grpcOpts.timeout)
}

// --- Client-side RPC wrappers -----------------------------------------
//
// Every wrapper here degrades an RPC failure to NULL_NODE plus the error
// (or just the error, for wrappers with no result), never raises, and
// never retries inline. The periodic maintenance tasks
// are the sole repair mechanism for the inconsistency this produces.

func (n *Node) summaryRPC(ctx context.Context, other *chordpb.Node) (*chordpb.Node, error) {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("summaryRPC", "Summary", other, err)
		return nullNode, err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	resp, err := client.Summary(cctx, &chordpb.Empty{})
	if err != nil {
		n.rpcFail("summaryRPC", "Summary", other, err)
		return nullNode, err
	}
	return resp, nil
}

func (n *Node) findSuccessorRPC(ctx context.Context, other *chordpb.Node, id []byte) (*chordpb.Node, error) {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("findSuccessor", "FindSuccessorRemoteHelper", other, err)
		return nullNode, err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	resp, err := client.FindSuccessorRemoteHelper(cctx, &chordpb.FindSuccessorRequest{Id: id, Node: other})
	if err != nil {
		n.rpcFail("findSuccessor", "FindSuccessorRemoteHelper", other, err)
		return nullNode, err
	}
	return resp, nil
}

func (n *Node) getSuccessorRPC(ctx context.Context, other *chordpb.Node) (*chordpb.Node, error) {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("getSuccessor", "GetSuccessorRemoteHelper", other, err)
		return nullNode, err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	resp, err := client.GetSuccessorRemoteHelper(cctx, other)
	if err != nil {
		n.rpcFail("getSuccessor", "GetSuccessorRemoteHelper", other, err)
		return nullNode, err
	}
	return resp, nil
}

func (n *Node) closestPrecedingFingerRPC(ctx context.Context, other *chordpb.Node, id []byte) (*chordpb.Node, error) {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("closestPrecedingFinger", "ClosestPrecedingFingerRemoteHelper", other, err)
		return nullNode, err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	resp, err := client.ClosestPrecedingFingerRemoteHelper(cctx, &chordpb.FindSuccessorRequest{Id: id, Node: other})
	if err != nil {
		n.rpcFail("closestPrecedingFinger", "ClosestPrecedingFingerRemoteHelper", other, err)
		return nullNode, err
	}
	return resp, nil
}

func (n *Node) getPredecessorRPC(ctx context.Context, other *chordpb.Node) (*chordpb.Node, error) {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("getPredecessor", "GetPredecessor", other, err)
		return nullNode, err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	resp, err := client.GetPredecessor(cctx, &chordpb.Empty{})
	if err != nil {
		n.rpcFail("getPredecessor", "GetPredecessor", other, err)
		return nullNode, err
	}
	return resp, nil
}

func (n *Node) setPredecessorRPC(ctx context.Context, other, self *chordpb.Node) error {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("setPredecessor", "SetPredecessor", other, err)
		return err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	_, err = client.SetPredecessor(cctx, self)
	if err != nil {
		n.rpcFail("setPredecessor", "SetPredecessor", other, err)
	}
	return err
}

func (n *Node) notifyRPC(ctx context.Context, other, self *chordpb.Node) error {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("notify", "Notify", other, err)
		return err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	_, err = client.Notify(cctx, self)
	if err != nil {
		n.rpcFail("notify", "Notify", other, err)
	}
	return err
}

func (n *Node) updateFingerTableRPC(ctx context.Context, other, sNode *chordpb.Node, index int) error {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("updateOthers", "UpdateFingerTable", other, err)
		return err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	_, err = client.UpdateFingerTable(cctx, &chordpb.UpdateFingerTableRequest{Node: sNode, Index: int32(index)})
	if err != nil {
		n.rpcFail("updateOthers", "UpdateFingerTable", other, err)
	}
	return err
}

func (n *Node) checkPredecessorRPC(ctx context.Context, other *chordpb.Node) error {
	client, err := n.getChordClient(other)
	if err != nil {
		n.rpcFail("checkPredecessor", "GetPredecessor", other, err)
		return err
	}
	cctx, cancel := n.withTimeout(ctx)
	defer cancel()
	_, err = client.GetPredecessor(cctx, &chordpb.Empty{})
	if err != nil {
		n.rpcFail("checkPredecessor", "GetPredecessor", other, err)
	}
	return err
}

// --- Server-side RPC surface -------------------------------------------
//
// Each handler is a thin wrapper: unpack the request, call the local
// method, reply. No handler performs additional logic, so a remote call
// produces exactly the answer the local method would.

func (n *Node) Summary(ctx context.Context, _ *chordpb.Empty) (*chordpb.Node, error) {
	return n.Node, nil
}

func (n *Node) FindSuccessorRemoteHelper(ctx context.Context, req *chordpb.FindSuccessorRequest) (*chordpb.Node, error) {
	return n.findSuccessor(req.Id, req.Node)
}

func (n *Node) GetSuccessorRemoteHelper(ctx context.Context, nodeQueried *chordpb.Node) (*chordpb.Node, error) {
	return n.getSuccessor(nodeQueried)
}

func (n *Node) ClosestPrecedingFingerRemoteHelper(ctx context.Context, req *chordpb.FindSuccessorRequest) (*chordpb.Node, error) {
	return n.closestPrecedingFinger(req.Id, req.Node), nil
}

func (n *Node) GetPredecessor(ctx context.Context, _ *chordpb.Empty) (*chordpb.Node, error) {
	pred := n.getPredecessor()
	if pred == nil {
		return nullNode, nil
	}
	return pred, nil
}

func (n *Node) SetPredecessor(ctx context.Context, p *chordpb.Node) (*chordpb.Empty, error) {
	n.setPredecessorLocal(p)
	return &chordpb.Empty{}, nil
}

func (n *Node) Notify(ctx context.Context, nPrime *chordpb.Node) (*chordpb.Empty, error) {
	n.notify(nPrime)
	return &chordpb.Empty{}, nil
}

func (n *Node) UpdateFingerTable(ctx context.Context, req *chordpb.UpdateFingerTableRequest) (*chordpb.Empty, error) {
	if err := n.updateFingerTable(ctx, req.Node, int(req.Index)); err != nil {
		return &chordpb.Empty{}, err
	}
	return &chordpb.Empty{}, nil
}
