package chord

import (
	"math/rand"
	"sync"
	"time"
)

// randIntn is a process-wide random source for fixFinger's index
// selection. A single seeded source, guarded by a mutex, avoids each node
// pulling from the unseeded global source (which is fine for convergence
// but makes test runs harder to reason about).
var (
	randMtx sync.Mutex
	randSrc = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func randIntn(n int) int {
	randMtx.Lock()
	defer randMtx.Unlock()
	return randSrc.Intn(n)
}
