package core

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"
)

// Digest is a fingerprint of the executable contents of a core.
type Digest [32]byte

// Digest hashes opcode and operands of every cell in address order.
// Owner tags are display-only and do not contribute.
func (cr *Core) Digest() (digest Digest) {
	h := blake3.New()

	var buf [12]byte
	for _, cell := range cr.cell {
		binary.LittleEndian.PutUint32(buf[0:], uint32(cell.Opcode))
		binary.LittleEndian.PutUint32(buf[4:], uint32(cell.A))
		binary.LittleEndian.PutUint32(buf[8:], uint32(cell.B))
		h.Write(buf[:])
	}

	copy(digest[:], h.Sum(nil))
	return
}

// String returns the base58 form of the digest.
func (digest Digest) String() string {
	return base58.Encode(digest[:])
}
