package merkle

import "errors"

var (
	// ErrEmptyInput is returned by Build when called with zero items.
	ErrEmptyInput = errors.New("cannot build merkle tree from empty item list")

	// ErrItemNotFound is returned by Derive when the item's leaf hash does
	// not appear anywhere in the tree.
	ErrItemNotFound = errors.New("item not found in merkle tree")

	// ErrMalformedTree is returned when a tree's internal structure is
	// inconsistent with its recorded root. It indicates a corrupted Tree
	// value, not bad caller input.
	ErrMalformedTree = errors.New("malformed merkle tree")
)
