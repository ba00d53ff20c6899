package util

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncodeUint256 returns the canonical 32-byte big-endian ABI encoding of v,
// the external wire form of a hash value.
func EncodeUint256(v *big.Int) ([]byte, error) {
	// Define the ABI for a single uint256 parameter
	uintType, _ := abi.NewType("uint256", "", nil)
	arguments := abi.Arguments{{Type: uintType}}

	// Encode the value
	encoded, err := arguments.Pack(v)
	if err != nil {
		return nil, err
	}

	return encoded, nil
}

// HexHash renders a hash as a 0x-prefixed hex string.
func HexHash(h common.Hash) string {
	return hexutil.Encode(h[:])
}

// HexHashes renders a hash sequence as 0x-prefixed hex strings.
func HexHashes(hashes []common.Hash) []string {
	out := make([]string, len(hashes))
	for i, h := range hashes {
		out[i] = HexHash(h)
	}
	return out
}
