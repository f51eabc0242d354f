package chord

import (
	"crypto/sha1"
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/sixaxis-labs/chordring/chordpb"
)

// isInModuloRange is the single source of truth for every arc test on the
// ring. It reports whether value lies on the clockwise arc from low to
// high, with independently configurable endpoint inclusivity. When
// low == high the arc spans the entire ring: true for any value as long as
// at least one endpoint is inclusive, false otherwise (an exclusive-exclusive
// empty arc).
func isInModuloRange(value, low, high []byte, lowInclusive, highInclusive bool) bool {
	v := new(big.Int).SetBytes(value)
	l := new(big.Int).SetBytes(low)
	h := new(big.Int).SetBytes(high)

	cmpLow := v.Cmp(l)
	cmpHigh := v.Cmp(h)

	if l.Cmp(h) == 0 {
		if lowInclusive || highInclusive {
			return true
		}
		return false
	}

	if l.Cmp(h) < 0 {
		// standard interval, no wrap
		lowOK := cmpLow > 0 || (lowInclusive && cmpLow == 0)
		highOK := cmpHigh < 0 || (highInclusive && cmpHigh == 0)
		return lowOK && highOK
	}

	// l > h: the arc wraps through 0
	lowOK := cmpLow > 0 || (lowInclusive && cmpLow == 0)
	highOK := cmpHigh < 0 || (highInclusive && cmpHigh == 0)
	return lowOK || highOK
}

// Between reports whether id lies on the open arc (low, high).
func Between(id, low, high []byte) bool {
	return isInModuloRange(id, low, high, false, false)
}

// BetweenRightIncl reports whether id lies on the arc (low, high].
func BetweenRightIncl(id, low, high []byte) bool {
	return isInModuloRange(id, low, high, false, true)
}

// BetweenLeftIncl reports whether id lies on the arc [low, high).
func BetweenLeftIncl(id, low, high []byte) bool {
	return isInModuloRange(id, low, high, true, false)
}

// BetweenBothIncl reports whether id lies on the arc [low, high].
func BetweenBothIncl(id, low, high []byte) bool {
	return isInModuloRange(id, low, high, true, true)
}

// HashFunc computes an m-bit identifier for a key. It is injectable via
// Config.HashFunc; GetPeerID is the default.
type HashFunc func(key string, m int) []byte

// GetPeerID hashes key with SHA-1 and truncates the digest to m bits,
// matching the teacher's identifier service.
func GetPeerID(key string, m int) []byte {
	h := sha1.Sum([]byte(key))
	id := new(big.Int).SetBytes(h[:])

	mod := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(m)), nil)
	id.Mod(id, mod)
	return id.Bytes()
}

// fingerMath computes (n + 2^i) mod 2^m, the fixed start of finger i.
func fingerMath(n []byte, i int, m int) []byte {
	x := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(i)), nil)
	y := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(m)), nil)

	res := new(big.Int).SetBytes(n)
	res.Add(res, x).Mod(res, y)
	return res.Bytes()
}

// PrintNode logs a single node's identity at debug/info level.
func PrintNode(n *chordpb.Node, hex bool, label string) {
	if n == nil || n.IsNull() {
		log.Infof("%s: <null>\n", label)
		return
	}
	if hex {
		log.Infof("%s: {id: %x, host: %s, port: %d}\n", label, n.Id, n.Host, n.Port)
	} else {
		log.Infof("%s: {id: %d, host: %s, port: %d}\n", label, n.Id, n.Host, n.Port)
	}
}
