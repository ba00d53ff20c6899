package crypto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// HashWords computes the Solidity-style hash of one or more 256-bit words:
// keccak256 over the concatenation of their 32-byte big-endian encodings.
// Equivalent to keccak256(abi.encodePacked(uint256...)) in Solidity.
func HashWords(words ...common.Hash) common.Hash {
	data := make([]byte, 0, len(words)*common.HashLength)
	for _, w := range words {
		data = append(data, w[:]...)
	}
	return ethcrypto.Keccak256Hash(data)
}

// HashBig hashes arbitrary-precision values by first encoding each one as a
// 32-byte big-endian word. Values are expected to fit in 256 bits; larger
// values are truncated by the word encoding.
func HashBig(vals ...*big.Int) common.Hash {
	words := make([]common.Hash, len(vals))
	for i, v := range vals {
		words[i] = common.BigToHash(v)
	}
	return HashWords(words...)
}
