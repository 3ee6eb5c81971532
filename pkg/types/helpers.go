package types

import "hash/fnv"

// fnvHash computes an FNV-1a hash of data, salted with the type tag so that
// equal bytes under different tags do not collide trivially.
func fnvHash(t Type, data []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte{byte(t)})
	_, _ = h.Write(data)
	return h.Sum32()
}
