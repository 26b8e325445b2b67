// Package hash provides the xxHash64 helpers used for snapshot payload
// checksums and surface fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 digest of the given bytes.
//
// It is used to fingerprint sampled coordinate payloads: the hash is
// deterministic, so identical grids always produce identical checksums.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string, for naming sampled surfaces
// with fixed-size identifiers.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
