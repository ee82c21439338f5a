package common

import "hash/fnv"

// Hash32 returns the 32-bit FNV-1a hash of data. Series IDs are derived from
// it, so it must remain stable across versions.
func Hash32(data []byte) uint32 {
	h := fnv.New32a()

	h.Write(data)

	return h.Sum32()
}
