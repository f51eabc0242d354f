package chord

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/wal"

	"github.com/sixaxis-labs/chordring/chordpb"
)

// DataMigrator is the storage layer's hook into the join protocol. The
// core calls MigrateKeysAfterJoin exactly once, after the finger table is
// initialized but before the maintenance loops start. The core does not
// prescribe a payload protocol: it only requires that the call terminates.
// An error is logged and swallowed, never propagated into join failure.
type DataMigrator interface {
	MigrateKeysAfterJoin(ctx context.Context, self, predecessor *chordpb.Node) error
}

// noopMigrator is the default DataMigrator: it does nothing, for cores
// that have no storage layer at all.
type noopMigrator struct{}

func (noopMigrator) MigrateKeysAfterJoin(ctx context.Context, self, predecessor *chordpb.Node) error {
	return nil
}

// WALMigrator is an illustrative DataMigrator that journals, to a local
// append-only log, the fact that a node now believes it owns the key range
// up to its own id. It does not implement an actual key-transfer wire
// protocol with the predecessor — the core deliberately leaves that
// undefined (see §4.7/§6) — it only demonstrates that the hook fires with
// the right arguments at the right point in join, and gives a real
// ecosystem library (github.com/tidwall/wal) something durable to write.
type WALMigrator struct {
	log *wal.Log
}

// NewWALMigrator opens (or creates) an append-only log at path.
func NewWALMigrator(path string) (*WALMigrator, error) {
	l, err := wal.Open(path, wal.DefaultOptions)
	if err != nil {
		return nil, err
	}
	return &WALMigrator{log: l}, nil
}

func (m *WALMigrator) MigrateKeysAfterJoin(ctx context.Context, self, predecessor *chordpb.Node) error {
	predDesc := "<null>"
	if !predecessor.IsNull() {
		predDesc = fmt.Sprintf("%x", predecessor.Id)
	}
	record := fmt.Sprintf("join id=%x predecessor=%s", self.Id, predDesc)

	idx, err := m.log.LastIndex()
	if err != nil {
		return err
	}
	if err := m.log.Write(idx+1, []byte(record)); err != nil {
		return err
	}
	log.Infof("WALMigrator: journaled join record at index %d: %s\n", idx+1, record)
	return nil
}

// Close releases the underlying log file.
func (m *WALMigrator) Close() error {
	return m.log.Close()
}
