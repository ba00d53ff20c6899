package merkle

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/solcrypto/solcrypto-go/pkg/crypto"
)

// tagMask selects the most significant bit of a 256-bit hash value. That
// bit is reserved: node hashes stored in the tree always have it cleared,
// and proof elements use it to record which side the sibling sat on during
// construction. Ordering lives inside the hash domain at the cost of one
// bit of output.
const tagMask = 0x80

// nodeHash is the tree-domain hash: keccak256 over 32-byte big-endian
// words, with the tag bit cleared.
func nodeHash(words ...common.Hash) common.Hash {
	return ClearTag(crypto.HashWords(words...))
}

// leafHash maps a raw item into the tree domain.
func leafHash(item *big.Int) common.Hash {
	return ClearTag(crypto.HashBig(item))
}

// SetTag returns h with the tag bit set, marking a proof sibling that was
// the right-hand operand of its pair hash.
func SetTag(h common.Hash) common.Hash {
	h[0] |= tagMask
	return h
}

// ClearTag returns h with the tag bit cleared.
func ClearTag(h common.Hash) common.Hash {
	h[0] &^= tagMask
	return h
}

// HasTag reports whether the tag bit of h is set.
func HasTag(h common.Hash) bool {
	return h[0]&tagMask != 0
}
