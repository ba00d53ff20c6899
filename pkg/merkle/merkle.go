// Package merkle builds binary merkle trees over ordered item sequences
// and derives compact inclusion proofs that verify against the root hash
// alone.
//
// The tree hashes with keccak256 for Solidity compatibility. A tree over
// five leaves L1..L5 has three internal nodes and a root:
//
//	        r
//	       / \
//	      n3  L5
//	     /  \
//	   n1    n2
//	  / \   / \
//	 L1 L2 L3 L4
//
// The proof for L1 is [L2, n2, L5]: folding H(H(H(L1, L2), n2), L5)
// reproduces r. The highest bit of each proof element records whether it
// is the left or the right argument of its pair hash.
package merkle

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Build constructs the merkle tree over items. Item order is significant:
// the same items in a different order produce a different root.
func Build(items []*big.Int) (*Tree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	leaves := make([]common.Hash, len(items))
	for i, item := range items {
		leaves[i] = leafHash(item)
	}

	// A single item is its own root.
	if len(leaves) == 1 {
		return &Tree{
			Leaves: leaves,
			Root:   leaves[0],
			levels: [][]common.Hash{leaves},
		}, nil
	}

	var levels [][]common.Hash
	var keep []common.Hash
	level := leaves
	for {
		// A node carried up from the level below joins this level
		// before the odd/even check, so it can either pair up here
		// or be carried again.
		if len(keep) > 0 {
			merged := make([]common.Hash, 0, len(level)+len(keep))
			merged = append(merged, level...)
			merged = append(merged, keep...)
			level = merged
			keep = nil
		}

		// Unbalanced level: push the last node up a level.
		if len(level)%2 == 1 {
			keep = append(keep, level[len(level)-1])
			level = level[:len(level)-1]
		}

		levels = append(levels, level)

		// Fold pairwise, left to right.
		next := make([]common.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, nodeHash(level[i], level[i+1]))
		}
		level = next

		// Reduced to a single node with nothing left to merge.
		if len(level) == 1 && len(keep) == 0 {
			levels = append(levels, level)
			break
		}
	}

	return &Tree{
		Leaves: leaves,
		Root:   level[0],
		levels: levels,
	}, nil
}

// Derive produces the inclusion proof for item. Read left to right, the
// proof lists the sibling of the running hash at each level on the way to
// the root.
//
// Returns ErrItemNotFound if the item's leaf hash appears nowhere in the
// tree, and ErrMalformedTree if the tree's structure contradicts its
// recorded root.
func (t *Tree) Derive(item *big.Int) (Proof, error) {
	h := leafHash(item)

	var proof Proof
	for _, level := range t.levels {
		idx := indexOf(level, h)
		if idx < 0 {
			// Once folded into a parent, h lives one level up; a
			// carried leaf also first appears above level 0.
			continue
		}

		if len(level) == 1 {
			if level[0] != t.Root {
				return nil, ErrMalformedTree
			}
			return proof, nil
		}

		if idx%2 == 0 {
			if idx+1 >= len(level) {
				return nil, ErrMalformedTree
			}
			sibling := level[idx+1]
			proof = append(proof, SetTag(sibling))
			h = nodeHash(h, sibling)
		} else {
			sibling := level[idx-1]
			proof = append(proof, sibling)
			h = nodeHash(sibling, h)
		}
	}

	return nil, ErrItemNotFound
}

// Verify reports whether proof connects item to root. A mismatch is an
// ordinary false result, not an error: tampering with the item, any proof
// element, or the root changes the recomputed value.
func Verify(item *big.Int, proof Proof, root common.Hash) bool {
	node := leafHash(item)
	for _, elem := range proof {
		if HasTag(elem) {
			// Sibling was the right-hand operand.
			node = nodeHash(node, ClearTag(elem))
		} else {
			node = nodeHash(elem, node)
		}
	}
	return node == root
}

func indexOf(level []common.Hash, h common.Hash) int {
	for i, v := range level {
		if v == h {
			return i
		}
	}
	return -1
}
