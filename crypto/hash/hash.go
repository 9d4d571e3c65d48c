// Package hash includes the canonical hash function used for shuffling seeds
// and committee derivation.
package hash

import "crypto/sha256"

// Hash defines a function that returns the sha256 checksum of the data passed
// in. This is the hash function referenced throughout the consensus spec
// pseudocode as hash().
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}
