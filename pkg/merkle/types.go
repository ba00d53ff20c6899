package merkle

import "github.com/ethereum/go-ethereum/common"

// Tree is a balanced binary merkle tree over an ordered item sequence.
// "Balanced" here means every internal node has exactly two children: the
// unpaired last node of an odd-length level is carried up and merged into
// the level above rather than duplicated.
//
// A Tree is never mutated after Build, so concurrent readers need no
// locking.
type Tree struct {
	// Leaves contains the hash of every input item, in input order
	Leaves []common.Hash

	// Root is the merkle root hash, the commitment to the whole item set
	Root common.Hash

	// levels stores the folded levels used for proof derivation.
	// levels[0] holds the leaves that were paired at the bottom (a
	// carried leaf first appears in a higher level), levels[len-1]
	// holds only the root.
	levels [][]common.Hash
}

// Proof is the ordered sequence of sibling hashes connecting one leaf to
// the root. The most significant bit of each element records which side
// the sibling sat on during construction; see Verify. A Proof is
// self-contained and carries no reference back to the tree it came from.
type Proof []common.Hash
